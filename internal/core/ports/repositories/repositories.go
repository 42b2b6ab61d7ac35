// Package repositories defines the persistence interfaces the core services
// depend on. Implementations live under internal/repositories.
package repositories

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListEntriesFilter narrows a journal listing. Zero values mean "no filter";
// Limit defaults are applied by the service layer.
type ListEntriesFilter struct {
	Source domain.EntrySource
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// EntryRepository persists and reads journal entries.
type EntryRepository interface {
	// SaveEntries writes all entries of one posting atomically.
	SaveEntries(ctx context.Context, entries []domain.JournalEntry) error
	ListEntries(ctx context.Context, filter ListEntriesFilter) ([]domain.JournalEntry, error)
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)
	SummarizeBySource(ctx context.Context, from, to time.Time) ([]domain.SourceSummary, error)
}

// ThirdPartyRepository maintains supplier/client running balances.
type ThirdPartyRepository interface {
	// UpsertBalance creates the third party with the given balance if absent,
	// otherwise adds delta to the existing balance.
	UpsertBalance(ctx context.Context, name string, role domain.ThirdPartyRole, delta decimal.Decimal, updatedBy string) error
	ListThirdParties(ctx context.Context, role domain.ThirdPartyRole, limit, offset int) ([]domain.ThirdParty, error)
	FindThirdPartyByID(ctx context.Context, thirdPartyID string) (*domain.ThirdParty, error)
}

// AccountRepository manages the chart of accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, code string, updatedBy string, at time.Time) error
}

// TaxConfigRepository manages sales tax configuration rows.
type TaxConfigRepository interface {
	SaveTaxConfig(ctx context.Context, tax domain.TaxConfig) error
	FindTaxConfigByID(ctx context.Context, taxConfigID string) (*domain.TaxConfig, error)
	ListTaxConfigs(ctx context.Context, onlyActive bool) ([]domain.TaxConfig, error)
	UpdateTaxConfig(ctx context.Context, tax domain.TaxConfig) error
	DeleteTaxConfig(ctx context.Context, taxConfigID string) error
}

// ProductRepository manages sellable products and services.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
}

// SettingsRepository reads and writes the singleton business settings row.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings domain.Settings) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EntryRepo      EntryRepository
	ThirdPartyRepo ThirdPartyRepository
	AccountRepo    AccountRepository
	TaxConfigRepo  TaxConfigRepository
	ProductRepo    ProductRepository
	SettingsRepo   SettingsRepository
}
