package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/booking"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/services"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepository = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, filter portsrepo.ListEntriesFilter) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepository) SummarizeBySource(ctx context.Context, from, to time.Time) ([]domain.SourceSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SourceSummary), args.Error(1)
}

// --- Mock ThirdPartyRepository ---
type MockThirdPartyRepository struct {
	mock.Mock
}

var _ portsrepo.ThirdPartyRepository = (*MockThirdPartyRepository)(nil)

func (m *MockThirdPartyRepository) UpsertBalance(ctx context.Context, name string, role domain.ThirdPartyRole, delta decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, name, role, delta, updatedBy)
	return args.Error(0)
}

func (m *MockThirdPartyRepository) ListThirdParties(ctx context.Context, role domain.ThirdPartyRole, limit, offset int) ([]domain.ThirdParty, error) {
	args := m.Called(ctx, role, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ThirdParty), args.Error(1)
}

func (m *MockThirdPartyRepository) FindThirdPartyByID(ctx context.Context, thirdPartyID string) (*domain.ThirdParty, error) {
	args := m.Called(ctx, thirdPartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThirdParty), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockEntryRepo      *MockEntryRepository
	mockThirdPartyRepo *MockThirdPartyRepository
	service            portssvc.LedgerSvcFacade
	ctx                context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockEntryRepo = new(MockEntryRepository)
	s.mockThirdPartyRepo = new(MockThirdPartyRepository)
	s.service = services.NewLedgerService(s.mockEntryRepo, s.mockThirdPartyRepo)
	s.ctx = context.Background()
}

func balancedEntries() []domain.JournalEntry {
	return []domain.JournalEntry{
		{
			Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Source:      domain.SourceExpense,
			AccountCode: domain.AccountDefaultExpense,
			AccountName: domain.AccountDefaultExpenseName,
			Debit:       decimal.NewFromInt(1500),
			Credit:      decimal.Zero,
		},
		{
			Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Source:      domain.SourceExpense,
			AccountCode: domain.AccountCash,
			AccountName: domain.AccountCashName,
			Debit:       decimal.Zero,
			Credit:      decimal.NewFromInt(1500),
		},
	}
}

func (s *LedgerServiceTestSuite) TestPostJournal_NoDelta_Skipped() {
	s.mockEntryRepo.On("SaveEntries", s.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()

	result, err := s.service.PostJournal(s.ctx, balancedEntries(), nil, "operator")

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(domain.ThirdPartySkipped, result.ThirdPartyUpdate)
	s.NotEmpty(result.TransactionID)
	for _, e := range result.Entries {
		s.NotEmpty(e.EntryID)
		s.Equal(result.TransactionID, e.TransactionID)
		s.Equal("operator", e.CreatedBy)
	}
	s.mockEntryRepo.AssertExpectations(s.T())
	s.mockThirdPartyRepo.AssertNotCalled(s.T(), "UpsertBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestPostJournal_WithDelta_Applied() {
	delta := &domain.ThirdPartyDelta{Name: "Depot Jumelle", Role: domain.RoleSupplier, Amount: decimal.NewFromInt(1100)}

	s.mockEntryRepo.On("SaveEntries", s.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()
	s.mockThirdPartyRepo.On("UpsertBalance", s.ctx, "Depot Jumelle", domain.RoleSupplier, delta.Amount, "operator").Return(nil).Once()

	result, err := s.service.PostJournal(s.ctx, balancedEntries(), delta, "operator")

	s.Require().NoError(err)
	s.Equal(domain.ThirdPartyApplied, result.ThirdPartyUpdate)
	s.Nil(result.ThirdPartyErr)
	s.mockEntryRepo.AssertExpectations(s.T())
	s.mockThirdPartyRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestPostJournal_UpsertFails_ResultCarriesFailure() {
	delta := &domain.ThirdPartyDelta{Name: "Depot Jumelle", Role: domain.RoleSupplier, Amount: decimal.NewFromInt(1100)}

	s.mockEntryRepo.On("SaveEntries", s.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()
	s.mockThirdPartyRepo.On("UpsertBalance", s.ctx, "Depot Jumelle", domain.RoleSupplier, delta.Amount, "operator").Return(errors.New("connection reset")).Once()

	result, err := s.service.PostJournal(s.ctx, balancedEntries(), delta, "operator")

	// Entries are committed; the failed balance update is reported on the
	// result, not as an error.
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(domain.ThirdPartyFailed, result.ThirdPartyUpdate)
	s.Require().Error(result.ThirdPartyErr)
	s.mockEntryRepo.AssertExpectations(s.T())
	s.mockThirdPartyRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestPostJournal_Unbalanced_NothingSaved() {
	entries := balancedEntries()
	entries[1].Credit = decimal.NewFromInt(1400)

	result, err := s.service.PostJournal(s.ctx, entries, nil, "operator")

	s.Require().Error(err)
	s.ErrorIs(err, booking.ErrUnbalanced)
	s.Nil(result)
	s.mockEntryRepo.AssertNotCalled(s.T(), "SaveEntries", mock.Anything, mock.Anything)
	s.mockThirdPartyRepo.AssertNotCalled(s.T(), "UpsertBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestPostJournal_SaveFails_ReturnsError() {
	s.mockEntryRepo.On("SaveEntries", s.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(errors.New("db down")).Once()

	result, err := s.service.PostJournal(s.ctx, balancedEntries(), nil, "operator")

	s.Require().Error(err)
	s.Nil(result)
	s.mockEntryRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestPostJournal_KeepsPresetTransactionID() {
	entries := balancedEntries()
	entries[0].TransactionID = "sale-42"
	entries[1].TransactionID = "sale-42"

	s.mockEntryRepo.On("SaveEntries", s.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()

	result, err := s.service.PostJournal(s.ctx, entries, nil, "operator")

	s.Require().NoError(err)
	s.Equal("sale-42", result.TransactionID)
	for _, e := range result.Entries {
		s.Equal("sale-42", e.TransactionID)
	}
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
