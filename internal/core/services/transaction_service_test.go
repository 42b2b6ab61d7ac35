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
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) PostJournal(ctx context.Context, entries []domain.JournalEntry, delta *domain.ThirdPartyDelta, postedBy string) (*domain.PostingResult, error) {
	args := m.Called(ctx, entries, delta, postedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func validTransactionRequest() dto.RecordTransactionRequest {
	return dto.RecordTransactionRequest{
		Group:        "A",
		Date:         "2025-03-15",
		Description:  "Achat fournitures",
		Amount:       decimal.NewFromInt(1500),
		SenderName:   "Scarlette",
		ReceiverName: "Maison Toussaint",
	}
}

func TestRecordTransaction_CashGroupA(t *testing.T) {
	mockLedger := new(MockLedgerService)
	svc := services.NewTransactionService(mockLedger)

	expected := &domain.PostingResult{TransactionID: "txn-1", ThirdPartyUpdate: domain.ThirdPartySkipped}
	mockLedger.On("PostJournal", mock.Anything, mock.AnythingOfType("[]domain.JournalEntry"), (*domain.ThirdPartyDelta)(nil), "operator").
		Run(func(args mock.Arguments) {
			entries := args.Get(1).([]domain.JournalEntry)
			require.Len(t, entries, 2)
			assert.Equal(t, domain.AccountDefaultExpense, entries[0].AccountCode)
			assert.Equal(t, domain.AccountCash, entries[1].AccountCode)
			assert.Contains(t, entries[0].Description, "Scarlette")
			assert.Contains(t, entries[0].Description, "Maison Toussaint")
		}).
		Return(expected, nil).Once()

	result, err := svc.RecordTransaction(context.Background(), validTransactionRequest(), "operator")

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	mockLedger.AssertExpectations(t)
}

func TestRecordTransaction_CreditPassesDelta(t *testing.T) {
	mockLedger := new(MockLedgerService)
	svc := services.NewTransactionService(mockLedger)

	req := validTransactionRequest()
	req.IsCredit = true
	req.ThirdPartyName = "Maison Toussaint"

	mockLedger.On("PostJournal", mock.Anything, mock.AnythingOfType("[]domain.JournalEntry"), mock.AnythingOfType("*domain.ThirdPartyDelta"), "operator").
		Run(func(args mock.Arguments) {
			delta := args.Get(2).(*domain.ThirdPartyDelta)
			require.NotNil(t, delta)
			assert.Equal(t, "Maison Toussaint", delta.Name)
			assert.Equal(t, domain.RoleSupplier, delta.Role)
		}).
		Return(&domain.PostingResult{TransactionID: "txn-2"}, nil).Once()

	_, err := svc.RecordTransaction(context.Background(), req, "operator")

	require.NoError(t, err)
	mockLedger.AssertExpectations(t)
}

func TestRecordTransaction_MissingParties(t *testing.T) {
	mockLedger := new(MockLedgerService)
	svc := services.NewTransactionService(mockLedger)

	tests := []struct {
		name   string
		mutate func(*dto.RecordTransactionRequest)
	}{
		{"no sender", func(r *dto.RecordTransactionRequest) { r.SenderName = "" }},
		{"no receiver", func(r *dto.RecordTransactionRequest) { r.ReceiverName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTransactionRequest()
			tt.mutate(&req)

			_, err := svc.RecordTransaction(context.Background(), req, "operator")

			assert.ErrorIs(t, err, apperrors.ErrMissingParty)
		})
	}
	mockLedger.AssertNotCalled(t, "PostJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordTransaction_BadDate(t *testing.T) {
	mockLedger := new(MockLedgerService)
	svc := services.NewTransactionService(mockLedger)

	req := validTransactionRequest()
	req.Date = "15/03/2025"

	_, err := svc.RecordTransaction(context.Background(), req, "operator")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockLedger.AssertNotCalled(t, "PostJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
