package booking

import (
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseInput describes an expense form submission. Account codes default to
// 601 (expense) and 5311 (cash) when left empty.
type ExpenseInput struct {
	Date               time.Time
	Description        string
	Amount             decimal.Decimal
	IsCredit           bool
	DownPayment        decimal.Decimal // cash portion of a credit expense, 0 <= DownPayment <= Amount
	ExpenseAccount     string
	ExpenseAccountName string
	PaymentAccount     string
	PaymentAccountName string
	ThirdPartyName     string // required when IsCredit
}

// BuildExpenseEntries produces the entries for an expense.
//
// Cash: debit the expense account, credit the payment account, both for the
// full amount. Credit terms: the expense account is debited for the full
// amount, any down payment is credited against the payment account, and the
// remainder goes to the supplier payable (401) with a matching supplier
// balance delta. A down payment equal to the amount degenerates to the cash
// shape; no zero-amount payable line is emitted.
func BuildExpenseEntries(in ExpenseInput) ([]domain.JournalEntry, *domain.ThirdPartyDelta, error) {
	amount := Round2(in.Amount)
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	expenseCode, expenseName := in.ExpenseAccount, in.ExpenseAccountName
	if expenseCode == "" {
		expenseCode, expenseName = domain.AccountDefaultExpense, domain.AccountDefaultExpenseName
	} else if expenseName == "" {
		expenseName = expenseCode
	}
	paymentCode, paymentName := in.PaymentAccount, in.PaymentAccountName
	if paymentCode == "" {
		paymentCode, paymentName = domain.AccountCash, domain.AccountCashName
	} else if paymentName == "" {
		paymentName = paymentCode
	}

	if !in.IsCredit {
		entries := []domain.JournalEntry{
			debitEntry(in.Date, domain.SourceExpense, expenseCode, expenseName, amount, in.Description),
			creditEntry(in.Date, domain.SourceExpense, paymentCode, paymentName, amount, in.Description),
		}
		return entries, nil, nil
	}

	if in.ThirdPartyName == "" {
		return nil, nil, fmt.Errorf("%w: a supplier name is required for credit expenses", apperrors.ErrMissingParty)
	}

	downPayment := Round2(in.DownPayment)
	if downPayment.IsNegative() || downPayment.GreaterThan(amount) {
		return nil, nil, fmt.Errorf("%w: down payment %s is outside [0, %s]", apperrors.ErrInvalidInstalment, downPayment.String(), amount.String())
	}
	creditAmount := amount.Sub(downPayment)

	entries := []domain.JournalEntry{
		debitEntry(in.Date, domain.SourceExpense, expenseCode, expenseName, amount, in.Description),
	}
	if downPayment.IsPositive() {
		entries = append(entries, creditEntry(in.Date, domain.SourceExpense, paymentCode, paymentName, downPayment, in.Description))
	}

	var delta *domain.ThirdPartyDelta
	if creditAmount.IsPositive() {
		entries = append(entries, creditEntry(in.Date, domain.SourceExpense, domain.AccountExpensePayable, domain.AccountExpensePayName, creditAmount, in.Description))
		delta = &domain.ThirdPartyDelta{Name: in.ThirdPartyName, Role: domain.RoleSupplier, Amount: creditAmount}
	}
	return entries, delta, nil
}
