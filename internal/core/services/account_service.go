package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/middleware"
)

// accountService manages the chart of accounts used by the selection UIs.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	account := domain.Account{
		Code:     req.Code,
		Name:     req.Name,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Warn("Failed to save account", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, err
	}
	return &account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *accountService) DeactivateAccount(ctx context.Context, code string, updaterID string) error {
	// Verify existence first so the caller gets ErrNotFound rather than a
	// silent no-op update.
	if _, err := s.accountRepo.FindAccountByCode(ctx, code); err != nil {
		return err
	}
	return s.accountRepo.DeactivateAccount(ctx, code, updaterID, time.Now().UTC())
}
