package dto

import "github.com/shopspring/decimal"

// RecordTransactionRequest is the generic transaction form payload (groups A-D).
// Sender and receiver are a business requirement of the form, not part of the
// ledger model; they are validated here and folded into the entry description.
type RecordTransactionRequest struct {
	Group          string          `json:"group" binding:"required,oneof=A B C D"`
	Date           string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required,gt=0"`
	IsCredit       bool            `json:"isCredit"`
	CreditAmount   decimal.Decimal `json:"creditAmount" binding:"omitempty,gte=0"`
	ThirdPartyName string          `json:"thirdPartyName"`
	SenderName     string          `json:"senderName" binding:"required"`
	ReceiverName   string          `json:"receiverName" binding:"required"`
}
