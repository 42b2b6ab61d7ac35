package domain

import "github.com/shopspring/decimal"

// TaxConfig is one configurable sales tax. Only active configs participate in
// sale entry computation.
type TaxConfig struct {
	TaxConfigID string          `json:"taxConfigID"`
	Name        string          `json:"name"`
	Percentage  decimal.Decimal `json:"percentage"` // 0-100
	IsActive    bool            `json:"isActive"`
	AuditFields
}
