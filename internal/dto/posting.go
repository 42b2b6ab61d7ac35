package dto

import (
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates on posting requests.
const DateLayout = "2006-01-02"

// JournalEntryResponse is one ledger line as returned by the API.
type JournalEntryResponse struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"`
	Source        string          `json:"source"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PostingResponse reports the outcome of recording one transaction, expense
// or sale. ThirdPartyUpdate surfaces the saga state: "failed" means the
// ledger committed but the third-party balance is stale.
type PostingResponse struct {
	TransactionID    string                 `json:"transactionID"`
	Entries          []JournalEntryResponse `json:"entries"`
	ThirdPartyUpdate string                 `json:"thirdPartyUpdate"`
	Warning          string                 `json:"warning,omitempty"`
}

// ToJournalEntryResponse converts a domain entry to its API shape.
func ToJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:       e.EntryID,
		TransactionID: e.TransactionID,
		Date:          e.Date.Format(DateLayout),
		Source:        string(e.Source),
		AccountCode:   e.AccountCode,
		AccountName:   e.AccountName,
		Debit:         e.Debit,
		Credit:        e.Credit,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}

// ToListJournalEntryResponse converts a slice of domain entries.
func ToListJournalEntryResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToJournalEntryResponse(e)
	}
	return res
}

// ToPostingResponse converts a posting result, including the warning text for
// a failed third-party update.
func ToPostingResponse(r *domain.PostingResult) PostingResponse {
	resp := PostingResponse{
		TransactionID:    r.TransactionID,
		Entries:          ToListJournalEntryResponse(r.Entries),
		ThirdPartyUpdate: string(r.ThirdPartyUpdate),
	}
	if r.ThirdPartyUpdate == domain.ThirdPartyFailed && r.ThirdPartyErr != nil {
		resp.Warning = "entries were recorded but the third party balance could not be updated: " + r.ThirdPartyErr.Error()
	}
	return resp
}
