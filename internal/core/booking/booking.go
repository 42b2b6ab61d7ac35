// Package booking holds the double-entry posting rules: pure functions that
// turn a form submission into an ordered, balanced list of journal entries
// plus an optional third-party balance delta. Nothing in this package touches
// storage; persistence belongs to the ledger service.
package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrUnbalanced = errors.New("journal entries do not balance")
	ErrMinEntries = errors.New("a posting must produce at least two entries")
)

// Round2 rounds a monetary amount to two decimals, half away from zero.
// Every intermediate amount in this package goes through it; rounding order
// affects final sums when taxes and fees compound, so the rules round at each
// step rather than once at the end.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf computes amount * percent / 100, rounded to the cent.
func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(percent).Div(decimal.NewFromInt(100)))
}

func debitEntry(date time.Time, source domain.EntrySource, code, name string, amount decimal.Decimal, description string) domain.JournalEntry {
	return domain.JournalEntry{
		Date:        date,
		Source:      source,
		AccountCode: code,
		AccountName: name,
		Debit:       amount,
		Credit:      decimal.Zero,
		Description: description,
	}
}

func creditEntry(date time.Time, source domain.EntrySource, code, name string, amount decimal.Decimal, description string) domain.JournalEntry {
	return domain.JournalEntry{
		Date:        date,
		Source:      source,
		AccountCode: code,
		AccountName: name,
		Debit:       decimal.Zero,
		Credit:      amount,
		Description: description,
	}
}

// ValidateBalanced checks the double-entry invariants for one posting:
// at least two entries, every entry strictly one-sided and non-negative,
// and total debits equal to total credits to the cent.
func ValidateBalanced(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return ErrMinEntries
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, e := range entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("entry on account %s has a negative amount", e.AccountCode)
		}
		if e.Debit.IsPositive() == e.Credit.IsPositive() {
			return fmt.Errorf("entry on account %s must be either a debit or a credit", e.AccountCode)
		}
		debits = debits.Add(e.Debit)
		credits = credits.Add(e.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s", ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}
