package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/booking"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
)

// expenseService records expenses. The account repository is consulted only
// to label custom-selected accounts; posting never depends on it succeeding.
type expenseService struct {
	accountRepo portsrepo.AccountRepository
	ledger      portssvc.LedgerSvcFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(accountRepo portsrepo.AccountRepository, ledger portssvc.LedgerSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{accountRepo: accountRepo, ledger: ledger}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, recordedBy string) (*domain.PostingResult, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	in := booking.ExpenseInput{
		Date:               date,
		Description:        req.Description,
		Amount:             req.Amount,
		IsCredit:           req.IsCredit,
		DownPayment:        req.DownPayment,
		ExpenseAccount:     req.ExpenseAccount,
		ExpenseAccountName: s.accountName(ctx, req.ExpenseAccount),
		PaymentAccount:     req.PaymentAccount,
		PaymentAccountName: s.accountName(ctx, req.PaymentAccount),
		ThirdPartyName:     req.ThirdPartyName,
	}

	entries, delta, err := booking.BuildExpenseEntries(in)
	if err != nil {
		return nil, err
	}
	return s.ledger.PostJournal(ctx, entries, delta, recordedBy)
}

// accountName resolves the display name for a custom account code. An unknown
// code is not an error; the booking layer falls back to the code itself.
func (s *expenseService) accountName(ctx context.Context, code string) string {
	if code == "" {
		return ""
	}
	acc, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil || acc == nil {
		return ""
	}
	return acc.Name
}
