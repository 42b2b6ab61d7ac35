package services

import (
	"context"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
)

// thirdPartyService exposes supplier/client balances to the UI. Balances are
// created and mutated only by the posting flows.
type thirdPartyService struct {
	thirdPartyRepo portsrepo.ThirdPartyRepository
}

// NewThirdPartyService creates a new ThirdPartyService.
func NewThirdPartyService(thirdPartyRepo portsrepo.ThirdPartyRepository) portssvc.ThirdPartySvcFacade {
	return &thirdPartyService{thirdPartyRepo: thirdPartyRepo}
}

var _ portssvc.ThirdPartySvcFacade = (*thirdPartyService)(nil)

func (s *thirdPartyService) ListThirdParties(ctx context.Context, role domain.ThirdPartyRole, limit, offset int) ([]domain.ThirdParty, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.thirdPartyRepo.ListThirdParties(ctx, role, limit, offset)
}

func (s *thirdPartyService) GetThirdPartyByID(ctx context.Context, thirdPartyID string) (*domain.ThirdParty, error) {
	return s.thirdPartyRepo.FindThirdPartyByID(ctx, thirdPartyID)
}
