package domain

// Settings is the singleton display configuration for the business.
// It never participates in entry generation.
type Settings struct {
	CompanyName    string `json:"companyName"`
	CurrencySymbol string `json:"currencySymbol"`
	AuditFields
}
