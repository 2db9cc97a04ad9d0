package common

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var extraChargeUnit = decimal.NewFromInt(700)

// ExtraCharge is the fixed ancillary charge shown on the generated document:
// one 700 unit per started group of 4 adults. It is added to the displayed
// total only, never to the persisted TotalAmount.
func ExtraCharge(adults int) decimal.Decimal {
	if adults <= 0 {
		return decimal.Zero
	}
	units := int64((adults + 3) / 4)
	return extraChargeUnit.Mul(decimal.NewFromInt(units))
}

// PackagePricing carries the document-facing derived amounts.
type PackagePricing struct {
	ExtraCharge     decimal.Decimal
	TotalWithCharge decimal.Decimal
	FinalAmount     decimal.Decimal
	PerPersonAmount decimal.Decimal
	BalanceAmount   decimal.Decimal
}

// ComputePricing derives the client-facing amounts from the persisted fields.
// The displayed total includes the extra charge while the stored TotalAmount
// does not; the asymmetry is intentional and must not change.
func ComputePricing(total, discount, advance decimal.Decimal, adults, children int) PackagePricing {
	charge := ExtraCharge(adults)
	totalWithCharge := total.Add(charge)
	final := totalWithCharge.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}
	perPerson := final
	if heads := adults + children; heads > 0 {
		perPerson = final.Div(decimal.NewFromInt(int64(heads)))
	}
	balance := final.Sub(advance)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	return PackagePricing{
		ExtraCharge:     charge,
		TotalWithCharge: totalWithCharge,
		FinalAmount:     final,
		PerPersonAmount: perPerson,
		BalanceAmount:   balance,
	}
}

// PersistedBalance is the stored-side invariant, recomputed on every
// amount-affecting write: max(0, TotalAmount - Discount) - AdvanceAmount.
func PersistedBalance(total, discount, advance decimal.Decimal) decimal.Decimal {
	net := total.Sub(discount)
	if net.IsNegative() {
		net = decimal.Zero
	}
	return net.Sub(advance)
}

var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount renders an amount for the document: en-IN digit grouping,
// zero decimal places.
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Round(0).Float64()
	return inPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(0)))
}
