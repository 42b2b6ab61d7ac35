package booking

import (
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleInput describes one sale to be posted. Every entry produced carries
// SaleID as its TransactionID so the lines of a sale stay correlated.
type SaleInput struct {
	SaleID            string
	Product           domain.Product
	Quantity          decimal.Decimal
	UnitPrice         decimal.Decimal // falls back to Product.UnitPrice when zero
	Date              time.Time
	Description       string
	IsCredit          bool
	ClientName        string // required when IsCredit
	PaidAmount        decimal.Decimal
	PaymentMethod     domain.PaymentMethod
	PaymentService    domain.PaymentService
	ServiceFeePercent *decimal.Decimal // overrides Product.ServiceFeePercent when set
	Taxes             []domain.TaxConfig
}

// resolvePaymentAccount maps a payment method and digital service to the
// account that receives the money.
func resolvePaymentAccount(method domain.PaymentMethod, service domain.PaymentService) (string, string) {
	if method != domain.PaymentDigital {
		return domain.AccountCash, domain.AccountCashName
	}
	switch service {
	case domain.ServiceMonCash, domain.ServiceNatCash:
		return domain.AccountDigital, domain.AccountDigitalName
	case domain.ServiceZelle, domain.ServiceWesternUnion, domain.ServiceMoneyGram, domain.ServiceCamTransfert:
		return domain.AccountBank, domain.AccountBankName
	default:
		return domain.AccountCash, domain.AccountCashName
	}
}

// BuildSaleEntries computes the balanced entry list for a sale.
//
// base = unitPrice * quantity, each active tax adds base * pct / 100, a
// digital payment adds a service fee of (base + taxes) * feePct / 100, and
// the grand total lands on the payment account (cash sale) or is split
// between the payment account and the client receivable (credit sale).
// Every intermediate amount is rounded to the cent as it is computed.
func BuildSaleEntries(in SaleInput) ([]domain.JournalEntry, *domain.ThirdPartyDelta, error) {
	unitPrice := in.UnitPrice
	if unitPrice.IsZero() {
		unitPrice = in.Product.UnitPrice
	}
	if !unitPrice.IsPositive() {
		return nil, nil, fmt.Errorf("%w: unit price must be greater than zero", apperrors.ErrValidation)
	}
	if !in.Quantity.IsPositive() {
		return nil, nil, fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}
	if in.IsCredit && in.ClientName == "" {
		return nil, nil, fmt.Errorf("%w: a client name is required for credit sales", apperrors.ErrMissingParty)
	}

	base := Round2(unitPrice.Mul(in.Quantity))

	taxTotal := decimal.Zero
	for _, tax := range in.Taxes {
		if !tax.IsActive {
			continue
		}
		taxTotal = taxTotal.Add(percentOf(base, tax.Percentage))
	}
	subtotal := base.Add(taxTotal)

	feePercent := in.Product.ServiceFeePercent
	if in.ServiceFeePercent != nil {
		feePercent = *in.ServiceFeePercent
	}
	fee := decimal.Zero
	if in.PaymentMethod == domain.PaymentDigital && feePercent.IsPositive() {
		fee = percentOf(subtotal, feePercent)
	}
	total := subtotal.Add(fee)

	paymentCode, paymentName := resolvePaymentAccount(in.PaymentMethod, in.PaymentService)
	salesCode, salesName := domain.AccountSalesGoods, domain.AccountSalesGoodsName
	if in.Product.IsService {
		salesCode, salesName = domain.AccountSalesServices, domain.AccountSalesServicesName
	}

	var entries []domain.JournalEntry
	var delta *domain.ThirdPartyDelta

	if !in.IsCredit {
		entries = append(entries, saleEntry(in, debitEntry(in.Date, domain.SourceSale, paymentCode, paymentName, total, in.Description)))
	} else {
		paid := Round2(in.PaidAmount)
		if paid.IsNegative() || paid.GreaterThan(total) {
			return nil, nil, fmt.Errorf("%w: paid amount %s is outside [0, %s]", apperrors.ErrValidation, paid.String(), total.String())
		}
		unpaid := Round2(total.Sub(paid))
		if paid.IsPositive() {
			entries = append(entries, saleEntry(in, debitEntry(in.Date, domain.SourceSale, paymentCode, paymentName, paid, in.Description)))
		}
		if unpaid.IsPositive() {
			entries = append(entries, saleEntry(in, debitEntry(in.Date, domain.SourceSale, domain.AccountReceivable, domain.AccountReceivableName, unpaid, in.Description)))
			delta = &domain.ThirdPartyDelta{Name: in.ClientName, Role: domain.RoleClient, Amount: unpaid}
		}
	}

	entries = append(entries, saleEntry(in, creditEntry(in.Date, domain.SourceSale, salesCode, salesName, base, in.Description)))
	if taxTotal.IsPositive() {
		entries = append(entries, saleEntry(in, creditEntry(in.Date, domain.SourceSale, domain.AccountTaxPayable, domain.AccountTaxPayableName, taxTotal, in.Description)))
	}
	if fee.IsPositive() {
		entries = append(entries, saleEntry(in, creditEntry(in.Date, domain.SourceSale, domain.AccountFees, domain.AccountFeesName, fee, in.Description)))
	}

	return entries, delta, nil
}

// saleEntry stamps the shared sale correlation id onto an entry.
func saleEntry(in SaleInput, e domain.JournalEntry) domain.JournalEntry {
	e.TransactionID = in.SaleID
	return e
}
