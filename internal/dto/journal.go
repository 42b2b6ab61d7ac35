package dto

import (
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/utils"
	"github.com/shopspring/decimal"
)

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Source string `form:"source" binding:"omitempty,oneof=expense transaction sale"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,gte=1,lte=500"`
	Offset int    `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// SummaryParams defines the reporting period for the dashboard summary.
type SummaryParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// SourceSummaryResponse aggregates one entry source over the period. The
// display fields carry the amounts formatted with the business currency
// symbol for direct rendering.
type SourceSummaryResponse struct {
	Source             string          `json:"source"`
	TotalDebit         decimal.Decimal `json:"totalDebit"`
	TotalCredit        decimal.Decimal `json:"totalCredit"`
	TotalDebitDisplay  string          `json:"totalDebitDisplay"`
	TotalCreditDisplay string          `json:"totalCreditDisplay"`
	EntryCount         int             `json:"entryCount"`
}

// SummaryResponse is the dashboard payload.
type SummaryResponse struct {
	Sources []SourceSummaryResponse `json:"sources"`
}

// ToSummaryResponse converts domain summaries to the API shape, formatting
// amounts with the given currency symbol.
func ToSummaryResponse(summaries []domain.SourceSummary, currencySymbol string) SummaryResponse {
	res := SummaryResponse{Sources: make([]SourceSummaryResponse, len(summaries))}
	for i, s := range summaries {
		res.Sources[i] = SourceSummaryResponse{
			Source:             string(s.Source),
			TotalDebit:         s.TotalDebit,
			TotalCredit:        s.TotalCredit,
			TotalDebitDisplay:  utils.FormatAmount(s.TotalDebit, currencySymbol),
			TotalCreditDisplay: utils.FormatAmount(s.TotalCredit, currencySymbol),
			EntryCount:         s.EntryCount,
		}
	}
	return res
}

// ListEntriesResponse wraps the listed entries.
type ListEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}
