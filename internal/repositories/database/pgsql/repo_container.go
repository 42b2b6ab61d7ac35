package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		EntryRepo:      newPgxEntryRepository(dbPool),
		ThirdPartyRepo: newPgxThirdPartyRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		TaxConfigRepo:  newPgxTaxConfigRepository(dbPool),
		ProductRepo:    newPgxProductRepository(dbPool),
		SettingsRepo:   newPgxSettingsRepository(dbPool),
	}
}
