package dto

import "github.com/shopspring/decimal"

// RecordExpenseRequest is the expense form payload. Account codes are
// optional; they default to the standard expense (601) and cash (5311)
// accounts when omitted.
type RecordExpenseRequest struct {
	Date           string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required,gt=0"`
	IsCredit       bool            `json:"isCredit"`
	DownPayment    decimal.Decimal `json:"downPayment" binding:"omitempty,gte=0"`
	ExpenseAccount string          `json:"expenseAccount" binding:"omitempty,accountcode"`
	PaymentAccount string          `json:"paymentAccount" binding:"omitempty,accountcode"`
	ThirdPartyName string          `json:"thirdPartyName"`
}
