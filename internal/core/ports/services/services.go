// Package services defines the facade interfaces the HTTP layer consumes.
// Implementations live in internal/core/services.
package services

import (
	"context"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
)

// AuthSvcFacade verifies the operator credential and issues session tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
}

// LedgerSvcFacade posts a validated entry list and applies any third-party
// balance delta. The two writes share no transaction boundary; the result
// reports the third-party outcome separately instead of collapsing it into
// the error return.
type LedgerSvcFacade interface {
	PostJournal(ctx context.Context, entries []domain.JournalEntry, delta *domain.ThirdPartyDelta, postedBy string) (*domain.PostingResult, error)
}

// TransactionSvcFacade records generic group A-D transactions.
type TransactionSvcFacade interface {
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, recordedBy string) (*domain.PostingResult, error)
}

// ExpenseSvcFacade records expenses, cash or on credit terms.
type ExpenseSvcFacade interface {
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, recordedBy string) (*domain.PostingResult, error)
}

// SaleSvcFacade records sales with taxes and digital payment fees.
type SaleSvcFacade interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest, recordedBy string) (*domain.PostingResult, error)
}

// JournalSvcFacade is the read side of the ledger.
type JournalSvcFacade interface {
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error)
	GetTransaction(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)
	Summarize(ctx context.Context, from, to time.Time) ([]domain.SourceSummary, error)
}

// AccountSvcFacade manages the chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, code string, updaterID string) error
}

// TaxConfigSvcFacade manages sales tax configuration.
type TaxConfigSvcFacade interface {
	CreateTaxConfig(ctx context.Context, req dto.CreateTaxConfigRequest, creatorID string) (*domain.TaxConfig, error)
	ListTaxConfigs(ctx context.Context, onlyActive bool) ([]domain.TaxConfig, error)
	UpdateTaxConfig(ctx context.Context, taxConfigID string, req dto.UpdateTaxConfigRequest, updaterID string) (*domain.TaxConfig, error)
	DeleteTaxConfig(ctx context.Context, taxConfigID string) error
}

// ProductSvcFacade manages sellable products and services.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
}

// ThirdPartySvcFacade exposes supplier/client balances. Balances are only
// mutated through posting flows, so there are no write operations here.
type ThirdPartySvcFacade interface {
	ListThirdParties(ctx context.Context, role domain.ThirdPartyRole, limit, offset int) ([]domain.ThirdParty, error)
	GetThirdPartyByID(ctx context.Context, thirdPartyID string) (*domain.ThirdParty, error)
}

// SettingsSvcFacade reads and updates the singleton business settings.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterID string) (*domain.Settings, error)
}

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	Ledger      LedgerSvcFacade
	Transaction TransactionSvcFacade
	Expense     ExpenseSvcFacade
	Sale        SaleSvcFacade
	Journal     JournalSvcFacade
	Account     AccountSvcFacade
	TaxConfig   TaxConfigSvcFacade
	Product     ProductSvcFacade
	ThirdParty  ThirdPartySvcFacade
	Settings    SettingsSvcFacade
}
