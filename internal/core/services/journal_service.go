package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
)

const defaultListLimit = 50

// journalService is the read side of the ledger.
type journalService struct {
	entryRepo portsrepo.EntryRepository
}

// NewJournalService creates a new JournalService.
func NewJournalService(entryRepo portsrepo.EntryRepository) portssvc.JournalSvcFacade {
	return &journalService{entryRepo: entryRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	filter := portsrepo.ListEntriesFilter{
		Source: domain.EntrySource(params.Source),
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	var err error
	if params.From != "" {
		if filter.From, err = time.Parse(dto.DateLayout, params.From); err != nil {
			return nil, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, params.From)
		}
	}
	if params.To != "" {
		if filter.To, err = time.Parse(dto.DateLayout, params.To); err != nil {
			return nil, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, params.To)
		}
	}

	return s.entryRepo.ListEntries(ctx, filter)
}

func (s *journalService) GetTransaction(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	entries, err := s.entryRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return entries, nil
}

func (s *journalService) Summarize(ctx context.Context, from, to time.Time) ([]domain.SourceSummary, error) {
	return s.entryRepo.SummarizeBySource(ctx, from, to)
}
