package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

// CalculationParameters is the validated input to one calculation run:
// principal, date range, tier set, interest formula and capitalization
// cadence. Construction fails fast with the sentinel errors above so the
// engine itself never sees a degenerate request.
type CalculationParameters struct {
	principal decimal.Decimal
	startDate time.Time
	endDate   time.Time
	tiers     []valueobject.InterestTier
	interest  valueobject.InterestType
	cadence   valueobject.ApplyCadence
}

// NewCalculationParameters validates and assembles a parameter set.
// Dates are normalized to midnight UTC; the time-of-day component of the
// inputs is ignored.
func NewCalculationParameters(
	principal decimal.Decimal,
	startDate, endDate time.Time,
	tiers []valueobject.InterestTier,
	interestType valueobject.InterestType,
	cadence valueobject.ApplyCadence,
) (CalculationParameters, error) {
	if !principal.IsPositive() {
		return CalculationParameters{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, principal)
	}

	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	if !end.After(start) {
		return CalculationParameters{}, fmt.Errorf("%w: start %s, end %s",
			ErrInvalidRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	if err := valueobject.ValidateTierSet(tiers); err != nil {
		return CalculationParameters{}, fmt.Errorf("%w: %v", ErrInvalidTier, err)
	}

	copied := make([]valueobject.InterestTier, len(tiers))
	copy(copied, tiers)

	return CalculationParameters{
		principal: principal,
		startDate: start,
		endDate:   end,
		tiers:     copied,
		interest:  interestType,
		cadence:   cadence,
	}, nil
}

// Principal returns the deposit principal.
func (p CalculationParameters) Principal() decimal.Decimal { return p.principal }

// StartDate returns the inclusive start of the accrual range (midnight UTC).
func (p CalculationParameters) StartDate() time.Time { return p.startDate }

// EndDate returns the inclusive end of the accrual range (midnight UTC).
func (p CalculationParameters) EndDate() time.Time { return p.endDate }

// Tiers returns a defensive copy of the tier set.
func (p CalculationParameters) Tiers() []valueobject.InterestTier {
	c := make([]valueobject.InterestTier, len(p.tiers))
	copy(c, p.tiers)
	return c
}

// InterestType returns the selected interest formula.
func (p CalculationParameters) InterestType() valueobject.InterestType { return p.interest }

// ApplyCadence returns the selected capitalization cadence.
func (p CalculationParameters) ApplyCadence() valueobject.ApplyCadence { return p.cadence }

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
