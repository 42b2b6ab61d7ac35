package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/booking"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/middleware"
)

// ledgerService persists balanced entry lists and applies third-party deltas.
//
// The entry write and the balance upsert are two independent calls with no
// shared transaction. When the upsert fails after the entries committed, the
// result carries ThirdPartyFailed and the error instead of rolling anything
// back; the caller decides how to surface the stale balance.
type ledgerService struct {
	entryRepo      portsrepo.EntryRepository
	thirdPartyRepo portsrepo.ThirdPartyRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(entryRepo portsrepo.EntryRepository, thirdPartyRepo portsrepo.ThirdPartyRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		entryRepo:      entryRepo,
		thirdPartyRepo: thirdPartyRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostJournal validates the double-entry invariants, stamps ids and audit
// fields, writes all entries atomically and then applies the third-party
// delta, reporting its outcome separately.
func (s *ledgerService) PostJournal(ctx context.Context, entries []domain.JournalEntry, delta *domain.ThirdPartyDelta, postedBy string) (*domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := booking.ValidateBalanced(entries); err != nil {
		return nil, fmt.Errorf("invalid posting: %w", err)
	}

	now := time.Now().UTC()

	// Sales arrive with their correlation id already set; other flows get a
	// fresh one shared by all entries of the posting.
	transactionID := ""
	for _, e := range entries {
		if e.TransactionID != "" {
			transactionID = e.TransactionID
			break
		}
	}
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	for i := range entries {
		entries[i].EntryID = uuid.NewString()
		if entries[i].TransactionID == "" {
			entries[i].TransactionID = transactionID
		}
		entries[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     postedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: postedBy,
		}
	}

	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		logger.Error("Failed to persist journal entries", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist journal entries: %w", err)
	}

	result := &domain.PostingResult{
		TransactionID:    transactionID,
		Entries:          entries,
		ThirdPartyUpdate: domain.ThirdPartySkipped,
	}

	if delta != nil {
		if err := s.thirdPartyRepo.UpsertBalance(ctx, delta.Name, delta.Role, delta.Amount, postedBy); err != nil {
			logger.Error("Third party balance update failed after ledger write",
				slog.String("transaction_id", transactionID),
				slog.String("third_party", delta.Name),
				slog.String("error", err.Error()),
			)
			result.ThirdPartyUpdate = domain.ThirdPartyFailed
			result.ThirdPartyErr = fmt.Errorf("%w: %s", apperrors.ErrThirdPartyUpdateFailed, err.Error())
		} else {
			result.ThirdPartyUpdate = domain.ThirdPartyApplied
		}
	}

	logger.Info("Journal posted",
		slog.String("transaction_id", transactionID),
		slog.Int("entry_count", len(entries)),
		slog.String("third_party_update", string(result.ThirdPartyUpdate)),
	)
	return result, nil
}
