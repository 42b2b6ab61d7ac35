package dto

import (
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code string `json:"code" binding:"required,accountcode"`
	Name string `json:"name" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to its API shape.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:          acc.Code,
		Name:          acc.Name,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListParams defines the shared limit/offset query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,gte=1,lte=500"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}
