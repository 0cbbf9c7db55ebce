// Package gst computes the statutory CGST/SGST/IGST split for a supply.
// Intra-state supplies split the nominal rate evenly between central and
// state components; inter-state supplies carry the full rate as IGST;
// imports and untaxed supplies carry no GST here (customs duty is handled
// elsewhere).
package gst

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SupplyType classifies a supply for GST purposes.
type SupplyType string

const (
	SupplyIntraState SupplyType = "intra_state"
	SupplyInterState SupplyType = "inter_state"
	SupplyImport     SupplyType = "import"
	SupplyNone       SupplyType = "none"
)

// AmountMode declares what the caller supplied as the amount. The split is
// invertible only if the caller states which side it is passing; the
// calculator never guesses.
type AmountMode string

const (
	// AmountExclusive means the amount is the taxable base, tax added on top.
	AmountExclusive AmountMode = "exclusive"
	// AmountInclusive means the amount is the gross, tax carved out of it.
	AmountInclusive AmountMode = "inclusive"
)

var hundred = decimal.NewFromInt(100)

// Split is the computed GST breakup for a supply.
type Split struct {
	BaseAmount decimal.Decimal
	CGSTRate   decimal.Decimal
	CGSTAmount decimal.Decimal
	SGSTRate   decimal.Decimal
	SGSTAmount decimal.Decimal
	IGSTRate   decimal.Decimal
	IGSTAmount decimal.Decimal
	TotalGST   decimal.Decimal
}

// Calculate computes the GST split for an amount at the nominal rate.
// amount is interpreted per mode; rate is the nominal percentage (e.g. 18).
func Calculate(amount, rate decimal.Decimal, supply SupplyType, mode AmountMode) (Split, error) {
	if amount.IsNegative() {
		return Split{}, fmt.Errorf("gst: amount must not be negative, got %s", amount)
	}
	if rate.IsNegative() {
		return Split{}, fmt.Errorf("gst: rate must not be negative, got %s", rate)
	}

	base := amount
	if mode == AmountInclusive {
		switch supply {
		case SupplyIntraState, SupplyInterState:
			// base = gross * 100 / (100 + rate)
			base = amount.Mul(hundred).Div(hundred.Add(rate))
		case SupplyImport, SupplyNone:
			// No GST carved out; gross is the base.
		default:
			return Split{}, fmt.Errorf("gst: unknown supply type %q", supply)
		}
	}

	split := Split{
		BaseAmount: base,
		CGSTRate:   decimal.Zero,
		CGSTAmount: decimal.Zero,
		SGSTRate:   decimal.Zero,
		SGSTAmount: decimal.Zero,
		IGSTRate:   decimal.Zero,
		IGSTAmount: decimal.Zero,
		TotalGST:   decimal.Zero,
	}

	switch supply {
	case SupplyIntraState:
		half := rate.Div(decimal.NewFromInt(2))
		split.CGSTRate = half
		split.SGSTRate = half
		split.CGSTAmount = base.Mul(half).Div(hundred)
		split.SGSTAmount = base.Mul(half).Div(hundred)
		split.TotalGST = split.CGSTAmount.Add(split.SGSTAmount)
	case SupplyInterState:
		split.IGSTRate = rate
		split.IGSTAmount = base.Mul(rate).Div(hundred)
		split.TotalGST = split.IGSTAmount
	case SupplyImport, SupplyNone:
		// All components stay zero.
	default:
		return Split{}, fmt.Errorf("gst: unknown supply type %q", supply)
	}

	return split, nil
}

// Gross returns the tax-inclusive total for the split.
func (s Split) Gross() decimal.Decimal {
	return s.BaseAmount.Add(s.TotalGST)
}
