package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
)

// taxConfigService manages the sales tax configuration consumed by the sale
// entry computation.
type taxConfigService struct {
	taxRepo portsrepo.TaxConfigRepository
}

// NewTaxConfigService creates a new TaxConfigService.
func NewTaxConfigService(taxRepo portsrepo.TaxConfigRepository) portssvc.TaxConfigSvcFacade {
	return &taxConfigService{taxRepo: taxRepo}
}

var _ portssvc.TaxConfigSvcFacade = (*taxConfigService)(nil)

func (s *taxConfigService) CreateTaxConfig(ctx context.Context, req dto.CreateTaxConfigRequest, creatorID string) (*domain.TaxConfig, error) {
	now := time.Now().UTC()
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	tax := domain.TaxConfig{
		TaxConfigID: uuid.NewString(),
		Name:        req.Name,
		Percentage:  req.Percentage,
		IsActive:    isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.taxRepo.SaveTaxConfig(ctx, tax); err != nil {
		return nil, err
	}
	return &tax, nil
}

func (s *taxConfigService) ListTaxConfigs(ctx context.Context, onlyActive bool) ([]domain.TaxConfig, error) {
	return s.taxRepo.ListTaxConfigs(ctx, onlyActive)
}

func (s *taxConfigService) UpdateTaxConfig(ctx context.Context, taxConfigID string, req dto.UpdateTaxConfigRequest, updaterID string) (*domain.TaxConfig, error) {
	tax, err := s.taxRepo.FindTaxConfigByID(ctx, taxConfigID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tax.Name = *req.Name
	}
	if req.Percentage != nil {
		tax.Percentage = *req.Percentage
	}
	if req.IsActive != nil {
		tax.IsActive = *req.IsActive
	}
	tax.LastUpdatedAt = time.Now().UTC()
	tax.LastUpdatedBy = updaterID

	if err := s.taxRepo.UpdateTaxConfig(ctx, *tax); err != nil {
		return nil, err
	}
	return tax, nil
}

func (s *taxConfigService) DeleteTaxConfig(ctx context.Context, taxConfigID string) error {
	if _, err := s.taxRepo.FindTaxConfigByID(ctx, taxConfigID); err != nil {
		return err
	}
	return s.taxRepo.DeleteTaxConfig(ctx, taxConfigID)
}
