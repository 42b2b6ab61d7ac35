package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest is the sale form payload. UnitPrice overrides the product
// price when set; ServiceFeePercent overrides the product's default digital
// payment fee when set.
type RecordSaleRequest struct {
	ProductID         string           `json:"productID" binding:"required"`
	Quantity          decimal.Decimal  `json:"quantity" binding:"required,gt=0"`
	UnitPrice         decimal.Decimal  `json:"unitPrice" binding:"omitempty,gt=0"`
	Date              string           `json:"date" binding:"required,datetime=2006-01-02"`
	Description       string           `json:"description"`
	IsCredit          bool             `json:"isCredit"`
	ClientName        string           `json:"clientName"`
	PaidAmount        decimal.Decimal  `json:"paidAmount" binding:"omitempty,gte=0"`
	PaymentMethod     string           `json:"paymentMethod" binding:"required,oneof=cash digital"`
	PaymentService    string           `json:"paymentService" binding:"omitempty,oneof=moncash natcash zelle western_union moneygram cam_transfert other"`
	ServiceFeePercent *decimal.Decimal `json:"serviceFeePercent" binding:"omitempty"`
}
