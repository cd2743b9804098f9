package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/apperrors"
)

// LineInput is one quantity/price/tax-rate triple submitted for a document.
type LineInput struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
}

// ComputedLine holds the derived money values for a single line.
type ComputedLine struct {
	Subtotal  decimal.Decimal // quantity * unitPrice
	Tax       decimal.Decimal // subtotal * taxRate / 100
	LineTotal decimal.Decimal // subtotal + tax
}

// Totals aggregates the computed lines of a document.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	Lines     []ComputedLine
}

var oneHundred = decimal.NewFromInt(100)

// ValidateLine checks the numeric constraints on a single line input:
// quantity > 0, unitPrice >= 0, 0 <= taxRate <= 100.
func ValidateLine(line LineInput) error {
	if line.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: line quantity must be positive, got %s", apperrors.ErrValidation, line.Quantity.String())
	}
	if line.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: line unit price must not be negative, got %s", apperrors.ErrValidation, line.UnitPrice.String())
	}
	if line.TaxRate.IsNegative() || line.TaxRate.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: line tax rate must be between 0 and 100, got %s", apperrors.ErrValidation, line.TaxRate.String())
	}
	return nil
}

// ComputeTotals validates every line and derives per-line and aggregate
// money values. It is pure: full decimal precision is kept throughout, and
// rounding happens only at presentation boundaries (see RoundMoney).
func ComputeTotals(lines []LineInput) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, fmt.Errorf("%w: a document requires at least one line item", apperrors.ErrValidation)
	}

	totals := Totals{
		Subtotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
		Total:     decimal.Zero,
		Lines:     make([]ComputedLine, len(lines)),
	}

	for i, line := range lines {
		if err := ValidateLine(line); err != nil {
			return Totals{}, err
		}

		lineSubtotal := line.Quantity.Mul(line.UnitPrice)
		lineTax := lineSubtotal.Mul(line.TaxRate).Div(oneHundred)

		totals.Lines[i] = ComputedLine{
			Subtotal:  lineSubtotal,
			Tax:       lineTax,
			LineTotal: lineSubtotal.Add(lineTax),
		}
		totals.Subtotal = totals.Subtotal.Add(lineSubtotal)
		totals.TaxAmount = totals.TaxAmount.Add(lineTax)
	}

	totals.Total = totals.Subtotal.Add(totals.TaxAmount)
	return totals, nil
}

// RoundMoney rounds a monetary amount to 2 decimal places, half away from
// zero (half-up for the non-negative amounts this domain produces). Intended
// for presentation boundaries only; stored values keep full precision.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
