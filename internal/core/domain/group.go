package domain

// TransactionGroup classifies a generic transaction form submission.
type TransactionGroup string

const (
	GroupExpense TransactionGroup = "A" // operating expense
	GroupAsset   TransactionGroup = "B" // asset purchase
	GroupRevenue TransactionGroup = "C" // revenue
	GroupCapital TransactionGroup = "D" // capital contribution
)

// GroupConfig holds the behaviour parameters for one transaction group: the
// accounts to hit and which third-party role a credit posting affects. New
// groups are added as table rows, not new code paths.
type GroupConfig struct {
	DebitAccount   string
	DebitName      string
	CreditAccount  string // empty for A/B, where the credit side is cash or supplier
	CreditName     string
	ThirdPartyRole ThirdPartyRole
}

// GroupConfigs is the static classification table for groups A-D.
var GroupConfigs = map[TransactionGroup]GroupConfig{
	GroupExpense: {
		DebitAccount:   AccountDefaultExpense,
		DebitName:      "Dépenses d'exploitation",
		ThirdPartyRole: RoleSupplier,
	},
	GroupAsset: {
		DebitAccount:   "218",
		DebitName:      "Immobilisations",
		ThirdPartyRole: RoleSupplier,
	},
	GroupRevenue: {
		DebitAccount:   AccountCash,
		DebitName:      AccountCashName,
		CreditAccount:  AccountRevenue,
		CreditName:     AccountRevenueName,
		ThirdPartyRole: RoleClient,
	},
	GroupCapital: {
		DebitAccount:   AccountCash,
		DebitName:      AccountCashName,
		CreditAccount:  "101",
		CreditName:     "Capital",
		ThirdPartyRole: RoleClient,
	},
}

// IsCreditGroup reports whether the group books its credit side against a
// configured revenue/capital account (groups C and D).
func (g TransactionGroup) IsCreditGroup() bool {
	cfg, ok := GroupConfigs[g]
	return ok && cfg.CreditAccount != ""
}
