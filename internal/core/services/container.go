package services

import (
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/pkg/config"
)

// NewServiceContainer wires every service with its repositories. The ledger
// service is shared by all three posting flows.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.EntryRepo, repos.ThirdPartyRepo)

	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(cfg),
		Ledger:      ledger,
		Transaction: NewTransactionService(ledger),
		Expense:     NewExpenseService(repos.AccountRepo, ledger),
		Sale:        NewSaleService(repos.ProductRepo, repos.TaxConfigRepo, ledger),
		Journal:     NewJournalService(repos.EntryRepo),
		Account:     NewAccountService(repos.AccountRepo),
		TaxConfig:   NewTaxConfigService(repos.TaxConfigRepo),
		Product:     NewProductService(repos.ProductRepo),
		ThirdParty:  NewThirdPartyService(repos.ThirdPartyRepo),
		Settings:    NewSettingsService(repos.SettingsRepo),
	}
}
