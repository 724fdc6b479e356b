package service

import (
	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

var (
	one            = decimal.NewFromInt(1)
	hundred        = decimal.NewFromInt(100)
	daysPerYear    = decimal.NewFromInt(365)
	percentPerYear = decimal.NewFromInt(36500)
)

// SimpleInterest computes period-proportional interest:
//
//	amount * (rate/100) * (days/365)
//
// The divisor is always 365 regardless of leap years; leap-year effects
// enter through the day count, not the divisor. Non-positive amounts or
// rates yield zero.
func SimpleInterest(dctx valueobject.DecimalContext, amount, annualRatePercent decimal.Decimal, days int) decimal.Decimal {
	if !amount.IsPositive() || !annualRatePercent.IsPositive() || days <= 0 {
		return decimal.Zero
	}

	numerator := amount.Mul(annualRatePercent).Mul(decimal.NewFromInt(int64(days)))
	return dctx.Div(numerator, percentPerYear)
}

// CompoundInterest computes pro-rata compound interest over a fractional
// year:
//
//	amount * (1 + rate/100)^(days/365) - amount
//
// The exponent is a real (possibly fractional) power of a decimal base,
// evaluated at the context precision. Non-positive amounts or rates yield
// zero.
func CompoundInterest(dctx valueobject.DecimalContext, amount, annualRatePercent decimal.Decimal, days int) (decimal.Decimal, error) {
	if !amount.IsPositive() || !annualRatePercent.IsPositive() || days <= 0 {
		return decimal.Zero, nil
	}

	base := one.Add(dctx.Div(annualRatePercent, hundred))
	exponent := dctx.Div(decimal.NewFromInt(int64(days)), daysPerYear)

	growth, err := dctx.Pow(base, exponent)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return amount.Mul(growth).Sub(amount), nil
}
