package dto

import (
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaxConfigRequest defines a new sales tax.
type CreateTaxConfigRequest struct {
	Name       string          `json:"name" binding:"required"`
	Percentage decimal.Decimal `json:"percentage" binding:"required,gt=0,lte=100"`
	IsActive   *bool           `json:"isActive"` // defaults to true when omitted
}

// UpdateTaxConfigRequest updates an existing tax. Pointer fields distinguish
// "not provided" from zero values.
type UpdateTaxConfigRequest struct {
	Name       *string          `json:"name"`
	Percentage *decimal.Decimal `json:"percentage" binding:"omitempty,gt=0,lte=100"`
	IsActive   *bool            `json:"isActive"`
}

// TaxConfigResponse is one tax config as returned by the API.
type TaxConfigResponse struct {
	TaxConfigID string          `json:"taxConfigID"`
	Name        string          `json:"name"`
	Percentage  decimal.Decimal `json:"percentage"`
	IsActive    bool            `json:"isActive"`
}

// ToTaxConfigResponse converts a domain.TaxConfig to its API shape.
func ToTaxConfigResponse(t *domain.TaxConfig) TaxConfigResponse {
	return TaxConfigResponse{
		TaxConfigID: t.TaxConfigID,
		Name:        t.Name,
		Percentage:  t.Percentage,
		IsActive:    t.IsActive,
	}
}

// ToListTaxConfigResponse converts a slice of tax configs.
func ToListTaxConfigResponse(taxes []domain.TaxConfig) []TaxConfigResponse {
	res := make([]TaxConfigResponse, len(taxes))
	for i := range taxes {
		res[i] = ToTaxConfigResponse(&taxes[i])
	}
	return res
}
