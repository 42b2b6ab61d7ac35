// Package models holds the database representations of the domain entities.
// Repositories convert between these and the domain types.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}

// JournalEntry is one row of the journal_entries table.
type JournalEntry struct {
	EntryID       string
	TransactionID string
	EntryDate     time.Time
	Source        string
	AccountCode   string
	AccountName   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Description   string
	AuditFields
}

// Account is one row of the accounts table.
type Account struct {
	Code     string
	Name     string
	IsActive bool
	AuditFields
}

// ThirdParty is one row of the third_parties table.
type ThirdParty struct {
	ThirdPartyID string
	Name         string
	Role         string
	Balance      decimal.Decimal
	AuditFields
}

// TaxConfig is one row of the tax_configs table.
type TaxConfig struct {
	TaxConfigID string
	Name        string
	Percentage  decimal.Decimal
	IsActive    bool
	AuditFields
}

// Product is one row of the products table.
type Product struct {
	ProductID         string
	Name              string
	UnitPrice         decimal.Decimal
	CostPrice         decimal.Decimal
	IsService         bool
	ServiceFeePercent decimal.Decimal
	AuditFields
}

// Settings is the singleton row of the settings table.
type Settings struct {
	ID             int
	CompanyName    string
	CurrencySymbol string
	AuditFields
}
