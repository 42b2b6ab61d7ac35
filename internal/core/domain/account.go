package domain

// Account represents one chart-of-accounts entry. The code is the business
// identifier used on journal entries ("5311", "401", ...).
type Account struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Well-known chart-of-accounts codes used by the posting rules. The booking
// package refers to these instead of repeating string literals.
const (
	AccountCash     = "5311"
	AccountCashName = "Caisse Centrale"

	AccountDigital     = "517"
	AccountDigitalName = "Argent Numérique"

	AccountBank     = "5120"
	AccountBankName = "Banque"

	// Supplier payables. The generic transaction flow books against 4010,
	// the expense flow against 401; both feed the same supplier balances.
	AccountSupplier        = "4010"
	AccountSupplierName    = "Fournisseurs"
	AccountExpensePayable  = "401"
	AccountExpensePayName  = "Fournisseurs"

	AccountReceivable     = "4110"
	AccountReceivableName = "Clients"

	AccountDefaultExpense     = "601"
	AccountDefaultExpenseName = "Achats et charges"

	AccountSalesGoods        = "701"
	AccountSalesGoodsName    = "Ventes de marchandises"
	AccountSalesServices     = "706"
	AccountSalesServicesName = "Prestations de services"

	// Digital payment fee line shares the 706 code with a distinct label.
	AccountFees     = "706"
	AccountFeesName = "Honoraires / Commissions"

	AccountRevenue     = "707"
	AccountRevenueName = "Produits des activités"

	AccountTaxPayable     = "4457"
	AccountTaxPayableName = "Taxes sur ventes à payer"
)
