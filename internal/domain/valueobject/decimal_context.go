package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal digits carried through
// divisions and fractional exponentiation when no explicit context is
// configured.
const DefaultPrecision = 50

// DecimalContext carries the arithmetic precision used by the calculation
// engine. It is threaded explicitly into every entry point instead of
// relying on package-global decimal configuration, so concurrent callers
// with different precision requirements never interfere.
type DecimalContext struct {
	precision int32
}

// NewDecimalContext creates a DecimalContext with the given precision in
// decimal digits. Precision must be positive.
func NewDecimalContext(precision int32) (DecimalContext, error) {
	if precision <= 0 {
		return DecimalContext{}, fmt.Errorf("precision must be positive, got %d", precision)
	}
	return DecimalContext{precision: precision}, nil
}

// DefaultDecimalContext returns a context with DefaultPrecision digits,
// rounding half away from zero.
func DefaultDecimalContext() DecimalContext {
	return DecimalContext{precision: DefaultPrecision}
}

// Precision returns the number of decimal digits the context carries.
func (c DecimalContext) Precision() int32 {
	return c.precision
}

// Div divides a by b, rounding half away from zero at the context precision.
func (c DecimalContext) Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, c.precision)
}

// Pow raises base to a possibly fractional exponent at the context
// precision. The base must be positive for fractional exponents.
func (c DecimalContext) Pow(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	result, err := base.PowWithPrecision(exponent, c.precision)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("pow %s^%s: %w", base, exponent, err)
	}
	return result, nil
}
