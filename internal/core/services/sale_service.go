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
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/middleware"
)

// saleService records sales: it loads the product and the active tax
// configuration, computes the entry list and posts it.
type saleService struct {
	productRepo portsrepo.ProductRepository
	taxRepo     portsrepo.TaxConfigRepository
	ledger      portssvc.LedgerSvcFacade
}

// NewSaleService creates a new SaleService.
func NewSaleService(productRepo portsrepo.ProductRepository, taxRepo portsrepo.TaxConfigRepository, ledger portssvc.LedgerSvcFacade) portssvc.SaleSvcFacade {
	return &saleService{productRepo: productRepo, taxRepo: taxRepo, ledger: ledger}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest, recordedBy string) (*domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", req.ProductID, err)
	}

	taxes, err := s.taxRepo.ListTaxConfigs(ctx, true)
	if err != nil {
		logger.Error("Failed to load active tax configs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load tax configuration: %w", err)
	}

	description := req.Description
	if description == "" {
		description = "Vente " + product.Name
	}

	in := booking.SaleInput{
		SaleID:            uuid.NewString(),
		Product:           *product,
		Quantity:          req.Quantity,
		UnitPrice:         req.UnitPrice,
		Date:              date,
		Description:       description,
		IsCredit:          req.IsCredit,
		ClientName:        req.ClientName,
		PaidAmount:        req.PaidAmount,
		PaymentMethod:     domain.PaymentMethod(req.PaymentMethod),
		PaymentService:    domain.PaymentService(req.PaymentService),
		ServiceFeePercent: req.ServiceFeePercent,
		Taxes:             taxes,
	}

	entries, delta, err := booking.BuildSaleEntries(in)
	if err != nil {
		return nil, err
	}
	return s.ledger.PostJournal(ctx, entries, delta, recordedBy)
}
