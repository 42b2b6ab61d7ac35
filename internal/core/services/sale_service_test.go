package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Mock TaxConfigRepository ---
type MockTaxConfigRepository struct {
	mock.Mock
}

var _ portsrepo.TaxConfigRepository = (*MockTaxConfigRepository)(nil)

func (m *MockTaxConfigRepository) SaveTaxConfig(ctx context.Context, tax domain.TaxConfig) error {
	args := m.Called(ctx, tax)
	return args.Error(0)
}

func (m *MockTaxConfigRepository) FindTaxConfigByID(ctx context.Context, taxConfigID string) (*domain.TaxConfig, error) {
	args := m.Called(ctx, taxConfigID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxConfig), args.Error(1)
}

func (m *MockTaxConfigRepository) ListTaxConfigs(ctx context.Context, onlyActive bool) ([]domain.TaxConfig, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxConfig), args.Error(1)
}

func (m *MockTaxConfigRepository) UpdateTaxConfig(ctx context.Context, tax domain.TaxConfig) error {
	args := m.Called(ctx, tax)
	return args.Error(0)
}

func (m *MockTaxConfigRepository) DeleteTaxConfig(ctx context.Context, taxConfigID string) error {
	args := m.Called(ctx, taxConfigID)
	return args.Error(0)
}

func testProduct() *domain.Product {
	return &domain.Product{
		ProductID: "prod-1",
		Name:      "Sac de riz",
		UnitPrice: decimal.NewFromInt(100),
	}
}

func validSaleRequest() dto.RecordSaleRequest {
	return dto.RecordSaleRequest{
		ProductID:     "prod-1",
		Quantity:      decimal.NewFromInt(1),
		Date:          "2025-03-15",
		PaymentMethod: "cash",
	}
}

func newSaleServiceWithMocks() (*MockProductRepository, *MockTaxConfigRepository, *MockLedgerService, func(context.Context, dto.RecordSaleRequest, string) (*domain.PostingResult, error)) {
	mockProducts := new(MockProductRepository)
	mockTaxes := new(MockTaxConfigRepository)
	mockLedger := new(MockLedgerService)
	svc := services.NewSaleService(mockProducts, mockTaxes, mockLedger)
	return mockProducts, mockTaxes, mockLedger, svc.RecordSale
}

func TestRecordSale_CashWithActiveTax(t *testing.T) {
	mockProducts, mockTaxes, mockLedger, recordSale := newSaleServiceWithMocks()

	mockProducts.On("FindProductByID", mock.Anything, "prod-1").Return(testProduct(), nil).Once()
	mockTaxes.On("ListTaxConfigs", mock.Anything, true).
		Return([]domain.TaxConfig{{Name: "TCA", Percentage: decimal.NewFromInt(10), IsActive: true}}, nil).Once()
	mockLedger.On("PostJournal", mock.Anything, mock.AnythingOfType("[]domain.JournalEntry"), (*domain.ThirdPartyDelta)(nil), "operator").
		Run(func(args mock.Arguments) {
			entries := args.Get(1).([]domain.JournalEntry)
			require.Len(t, entries, 3)
			assert.True(t, entries[0].Debit.Equal(decimal.NewFromInt(110)))
			// All lines of the sale share one correlation id.
			for _, e := range entries {
				assert.Equal(t, entries[0].TransactionID, e.TransactionID)
				assert.NotEmpty(t, e.TransactionID)
			}
		}).
		Return(&domain.PostingResult{TransactionID: "sale-1"}, nil).Once()

	_, err := recordSale(context.Background(), validSaleRequest(), "operator")

	require.NoError(t, err)
	mockProducts.AssertExpectations(t)
	mockTaxes.AssertExpectations(t)
	mockLedger.AssertExpectations(t)
}

func TestRecordSale_DefaultDescription(t *testing.T) {
	mockProducts, mockTaxes, mockLedger, recordSale := newSaleServiceWithMocks()

	mockProducts.On("FindProductByID", mock.Anything, "prod-1").Return(testProduct(), nil).Once()
	mockTaxes.On("ListTaxConfigs", mock.Anything, true).Return([]domain.TaxConfig{}, nil).Once()
	mockLedger.On("PostJournal", mock.Anything, mock.AnythingOfType("[]domain.JournalEntry"), (*domain.ThirdPartyDelta)(nil), "operator").
		Run(func(args mock.Arguments) {
			entries := args.Get(1).([]domain.JournalEntry)
			assert.Equal(t, "Vente Sac de riz", entries[0].Description)
		}).
		Return(&domain.PostingResult{TransactionID: "sale-2"}, nil).Once()

	_, err := recordSale(context.Background(), validSaleRequest(), "operator")

	require.NoError(t, err)
	mockLedger.AssertExpectations(t)
}

func TestRecordSale_ProductNotFound(t *testing.T) {
	mockProducts, _, mockLedger, recordSale := newSaleServiceWithMocks()

	mockProducts.On("FindProductByID", mock.Anything, "prod-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := recordSale(context.Background(), validSaleRequest(), "operator")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockLedger.AssertNotCalled(t, "PostJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSale_CreditWithoutClient(t *testing.T) {
	mockProducts, mockTaxes, mockLedger, recordSale := newSaleServiceWithMocks()

	mockProducts.On("FindProductByID", mock.Anything, "prod-1").Return(testProduct(), nil).Once()
	mockTaxes.On("ListTaxConfigs", mock.Anything, true).Return([]domain.TaxConfig{}, nil).Once()

	req := validSaleRequest()
	req.IsCredit = true

	_, err := recordSale(context.Background(), req, "operator")

	assert.ErrorIs(t, err, apperrors.ErrMissingParty)
	mockLedger.AssertNotCalled(t, "PostJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSale_BadDate(t *testing.T) {
	mockProducts, _, mockLedger, recordSale := newSaleServiceWithMocks()

	req := validSaleRequest()
	req.Date = "03-15-2025"

	_, err := recordSale(context.Background(), req, "operator")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockProducts.AssertNotCalled(t, "FindProductByID", mock.Anything, mock.Anything)
	mockLedger.AssertNotCalled(t, "PostJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
