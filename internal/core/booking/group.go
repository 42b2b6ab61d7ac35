package booking

import (
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GroupInput describes a generic transaction form submission (groups A-D).
type GroupInput struct {
	Group          domain.TransactionGroup
	Date           time.Time
	Description    string
	Amount         decimal.Decimal
	IsCredit       bool
	CreditAmount   decimal.Decimal // falls back to Amount when zero
	ThirdPartyName string          // required when IsCredit
}

// BuildGroupEntries classifies a generic transaction into its debit/credit
// pair using the static group table.
//
// Groups A and B always debit the group's default account; the credit side is
// cash (5311) or, on credit terms, the supplier payable (4010) with a matching
// supplier balance delta. Groups C and D debit cash against their configured
// revenue/capital account, or on credit terms debit the receivable (4110)
// against the revenue account with a client balance delta.
func BuildGroupEntries(in GroupInput) ([]domain.JournalEntry, *domain.ThirdPartyDelta, error) {
	cfg, ok := domain.GroupConfigs[in.Group]
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown transaction group %q", apperrors.ErrValidation, in.Group)
	}

	amount := Round2(in.Amount)
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if in.IsCredit && in.ThirdPartyName == "" {
		return nil, nil, fmt.Errorf("%w: a third party name is required for credit transactions", apperrors.ErrMissingParty)
	}

	var entries []domain.JournalEntry
	var delta *domain.ThirdPartyDelta

	if cfg.CreditAccount == "" {
		// Groups A/B: expense or asset purchase.
		entries = append(entries, debitEntry(in.Date, domain.SourceTransaction, cfg.DebitAccount, cfg.DebitName, amount, in.Description))
		if in.IsCredit {
			entries = append(entries, creditEntry(in.Date, domain.SourceTransaction, domain.AccountSupplier, domain.AccountSupplierName, amount, in.Description))
			delta = &domain.ThirdPartyDelta{Name: in.ThirdPartyName, Role: domain.RoleSupplier, Amount: amount}
		} else {
			entries = append(entries, creditEntry(in.Date, domain.SourceTransaction, domain.AccountCash, domain.AccountCashName, amount, in.Description))
		}
		return entries, delta, nil
	}

	// Groups C/D: revenue or capital contribution.
	if !in.IsCredit {
		entries = append(entries,
			debitEntry(in.Date, domain.SourceTransaction, cfg.DebitAccount, cfg.DebitName, amount, in.Description),
			creditEntry(in.Date, domain.SourceTransaction, cfg.CreditAccount, cfg.CreditName, amount, in.Description),
		)
		return entries, nil, nil
	}

	creditAmount := Round2(in.CreditAmount)
	if creditAmount.IsZero() {
		creditAmount = amount
	}
	if !creditAmount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: credit amount must be greater than zero", apperrors.ErrValidation)
	}

	creditAccount, creditName := cfg.CreditAccount, cfg.CreditName
	if in.Group == domain.GroupRevenue {
		creditAccount, creditName = domain.AccountRevenue, domain.AccountRevenueName
	}

	entries = append(entries,
		debitEntry(in.Date, domain.SourceTransaction, domain.AccountReceivable, domain.AccountReceivableName, creditAmount, in.Description),
		creditEntry(in.Date, domain.SourceTransaction, creditAccount, creditName, creditAmount, in.Description),
	)
	delta = &domain.ThirdPartyDelta{Name: in.ThirdPartyName, Role: domain.RoleClient, Amount: creditAmount}
	return entries, delta, nil
}
