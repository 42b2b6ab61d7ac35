package domain

import "github.com/shopspring/decimal"

// ThirdPartyRole distinguishes suppliers (we owe them) from clients (they owe us).
type ThirdPartyRole string

const (
	RoleSupplier ThirdPartyRole = "supplier"
	RoleClient   ThirdPartyRole = "client"
)

// ThirdParty tracks a running owed/receivable balance for a supplier or client.
// Balances are only ever mutated through the posting flows, via upsert.
type ThirdParty struct {
	ThirdPartyID string          `json:"thirdPartyID"`
	Name         string          `json:"name"`
	Role         ThirdPartyRole  `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	AuditFields
}

// ThirdPartyDelta describes a pending balance change produced alongside a set
// of journal entries. A nil delta means the posting touches no third party.
type ThirdPartyDelta struct {
	Name   string
	Role   ThirdPartyRole
	Amount decimal.Decimal
}
