package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/booking"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
)

// transactionService records generic group A-D transactions.
type transactionService struct {
	ledger portssvc.LedgerSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(ledger portssvc.LedgerSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{ledger: ledger}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, recordedBy string) (*domain.PostingResult, error) {
	// Sender and receiver are a form-level business requirement; they never
	// reach the ledger beyond the description line.
	if req.SenderName == "" || req.ReceiverName == "" {
		return nil, fmt.Errorf("%w: sender and receiver names are required", apperrors.ErrMissingParty)
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	in := booking.GroupInput{
		Group:          domain.TransactionGroup(req.Group),
		Date:           date,
		Description:    fmt.Sprintf("%s (%s / %s)", req.Description, req.SenderName, req.ReceiverName),
		Amount:         req.Amount,
		IsCredit:       req.IsCredit,
		CreditAmount:   req.CreditAmount,
		ThirdPartyName: req.ThirdPartyName,
	}

	entries, delta, err := booking.BuildGroupEntries(in)
	if err != nil {
		return nil, err
	}
	return s.ledger.PostJournal(ctx, entries, delta, recordedBy)
}
