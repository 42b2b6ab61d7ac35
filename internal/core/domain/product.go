package domain

import "github.com/shopspring/decimal"

// Product is a sellable good or service. ServiceFeePercent is the default
// surcharge applied when the sale is paid through a digital payment service;
// the sale form may override it per sale.
type Product struct {
	ProductID         string          `json:"productID"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	IsService         bool            `json:"isService"`
	ServiceFeePercent decimal.Decimal `json:"serviceFeePercent"`
	AuditFields
}

// PaymentMethod is how a sale was settled.
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentDigital PaymentMethod = "digital"
)

// PaymentService identifies the digital payment provider used for a sale.
type PaymentService string

const (
	ServiceMonCash      PaymentService = "moncash"
	ServiceNatCash      PaymentService = "natcash"
	ServiceZelle        PaymentService = "zelle"
	ServiceWesternUnion PaymentService = "western_union"
	ServiceMoneyGram    PaymentService = "moneygram"
	ServiceCamTransfert PaymentService = "cam_transfert"
	ServiceOther        PaymentService = "other"
)
