package dto

import (
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListThirdPartiesParams filters the third-party listing by role.
type ListThirdPartiesParams struct {
	Role   string `form:"role" binding:"omitempty,oneof=supplier client"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,gte=1,lte=500"`
	Offset int    `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ThirdPartyResponse is one supplier/client with its running balance.
type ThirdPartyResponse struct {
	ThirdPartyID string          `json:"thirdPartyID"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
}

// ToThirdPartyResponse converts a domain.ThirdParty to its API shape.
func ToThirdPartyResponse(tp *domain.ThirdParty) ThirdPartyResponse {
	return ThirdPartyResponse{
		ThirdPartyID: tp.ThirdPartyID,
		Name:         tp.Name,
		Role:         string(tp.Role),
		Balance:      tp.Balance,
	}
}

// ToListThirdPartyResponse converts a slice of third parties.
func ToListThirdPartyResponse(parties []domain.ThirdParty) []ThirdPartyResponse {
	res := make([]ThirdPartyResponse, len(parties))
	for i := range parties {
		res[i] = ToThirdPartyResponse(&parties[i])
	}
	return res
}
