package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource tags a journal entry with the flow that produced it.
type EntrySource string

const (
	SourceExpense     EntrySource = "expense"
	SourceTransaction EntrySource = "transaction"
	SourceSale        EntrySource = "sale"
)

// JournalEntry represents a single debit or credit line in the ledger.
// Exactly one of Debit/Credit is non-zero; all entries sharing a
// TransactionID form one balanced double-entry posting.
type JournalEntry struct {
	EntryID       string          `json:"entryID"`       // Primary Key (UUID)
	TransactionID string          `json:"transactionID"` // Correlates the entries of one logical posting
	Date          time.Time       `json:"date"`          // Calendar date of the event, no time component
	Source        EntrySource     `json:"source"`        // expense | transaction | sale
	AccountCode   string          `json:"accountCode"`   // Chart-of-accounts code, e.g. "5311"
	AccountName   string          `json:"accountName"`   // Human-readable account label
	Debit         decimal.Decimal `json:"debit"`         // >= 0
	Credit        decimal.Decimal `json:"credit"`        // >= 0
	Description   string          `json:"description"`
	AuditFields
}

// IsDebit reports whether the entry carries its amount on the debit side.
func (e JournalEntry) IsDebit() bool {
	return e.Debit.IsPositive()
}

// Amount returns the non-zero side of the entry.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.IsDebit() {
		return e.Debit
	}
	return e.Credit
}

// ThirdPartyUpdateStatus reports what happened to the third-party balance
// upsert that follows a ledger write. The two calls share no transaction
// boundary, so a posting can land with the ledger committed and the balance
// update failed; callers see that state instead of a swallowed error.
type ThirdPartyUpdateStatus string

const (
	ThirdPartyApplied ThirdPartyUpdateStatus = "applied"
	ThirdPartySkipped ThirdPartyUpdateStatus = "skipped" // no third party involved
	ThirdPartyFailed  ThirdPartyUpdateStatus = "failed"
)

// PostingResult is the outcome of posting one logical transaction.
type PostingResult struct {
	TransactionID    string
	Entries          []JournalEntry
	ThirdPartyUpdate ThirdPartyUpdateStatus
	ThirdPartyErr    error // set only when ThirdPartyUpdate == ThirdPartyFailed
}

// SourceSummary aggregates debit/credit totals for one entry source over a
// reporting period.
type SourceSummary struct {
	Source      EntrySource     `json:"source"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	EntryCount  int             `json:"entryCount"`
}
