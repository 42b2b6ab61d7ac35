package dto

import "github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"

// UpdateSettingsRequest updates the business display settings.
type UpdateSettingsRequest struct {
	CompanyName    *string `json:"companyName"`
	CurrencySymbol *string `json:"currencySymbol"`
}

// SettingsResponse is the singleton settings payload.
type SettingsResponse struct {
	CompanyName    string `json:"companyName"`
	CurrencySymbol string `json:"currencySymbol"`
}

// ToSettingsResponse converts domain.Settings to its API shape.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:    s.CompanyName,
		CurrencySymbol: s.CurrencySymbol,
	}
}
