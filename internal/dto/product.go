package dto

import (
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines a new sellable product or service.
type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required"`
	UnitPrice         decimal.Decimal `json:"unitPrice" binding:"required,gt=0"`
	CostPrice         decimal.Decimal `json:"costPrice" binding:"omitempty,gte=0"`
	IsService         bool            `json:"isService"`
	ServiceFeePercent decimal.Decimal `json:"serviceFeePercent" binding:"omitempty,gte=0,lte=100"`
}

// ProductResponse is one product as returned by the API.
type ProductResponse struct {
	ProductID         string          `json:"productID"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	IsService         bool            `json:"isService"`
	ServiceFeePercent decimal.Decimal `json:"serviceFeePercent"`
}

// ToProductResponse converts a domain.Product to its API shape.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:         p.ProductID,
		Name:              p.Name,
		UnitPrice:         p.UnitPrice,
		CostPrice:         p.CostPrice,
		IsService:         p.IsService,
		ServiceFeePercent: p.ServiceFeePercent,
	}
}

// ToListProductResponse converts a slice of products.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
