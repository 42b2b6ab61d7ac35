package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
)

func TestListEntries_DefaultLimit(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	svc := services.NewJournalService(mockRepo)

	mockRepo.On("ListEntries", mock.Anything, mock.MatchedBy(func(f portsrepo.ListEntriesFilter) bool {
		return f.Limit == 50 && f.Source == domain.SourceExpense
	})).Return([]domain.JournalEntry{}, nil).Once()

	_, err := svc.ListEntries(context.Background(), dto.ListEntriesParams{Source: "expense"})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestListEntries_DateRange(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	svc := services.NewJournalService(mockRepo)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	mockRepo.On("ListEntries", mock.Anything, mock.MatchedBy(func(f portsrepo.ListEntriesFilter) bool {
		return f.From.Equal(from) && f.To.Equal(to)
	})).Return([]domain.JournalEntry{}, nil).Once()

	_, err := svc.ListEntries(context.Background(), dto.ListEntriesParams{From: "2025-03-01", To: "2025-03-31"})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestListEntries_BadFromDate(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	svc := services.NewJournalService(mockRepo)

	_, err := svc.ListEntries(context.Background(), dto.ListEntriesParams{From: "March 1st"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "ListEntries", mock.Anything, mock.Anything)
}

func TestGetTransaction_Found(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	svc := services.NewJournalService(mockRepo)

	entries := []domain.JournalEntry{{EntryID: "e1", TransactionID: "txn-1"}, {EntryID: "e2", TransactionID: "txn-1"}}
	mockRepo.On("FindEntriesByTransactionID", mock.Anything, "txn-1").Return(entries, nil).Once()

	got, err := svc.GetTransaction(context.Background(), "txn-1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetTransaction_Empty_NotFound(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	svc := services.NewJournalService(mockRepo)

	mockRepo.On("FindEntriesByTransactionID", mock.Anything, "missing").Return([]domain.JournalEntry{}, nil).Once()

	_, err := svc.GetTransaction(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSummarize_DelegatesToRepository(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	svc := services.NewJournalService(mockRepo)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	summaries := []domain.SourceSummary{{Source: domain.SourceSale, EntryCount: 4}}
	mockRepo.On("SummarizeBySource", mock.Anything, from, to).Return(summaries, nil).Once()

	got, err := svc.Summarize(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
	mockRepo.AssertExpectations(t)
}
