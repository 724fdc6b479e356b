package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

// MonthlyLedgerEntry is one row of the authoritative period-by-period
// record: a calendar-month segment of the accrual range with the interest
// it earned and whether capitalization occurred at its end. Entries are
// appended in chronological order and are immutable once created.
type MonthlyLedgerEntry struct {
	label              string
	periodStart        time.Time
	periodEnd          time.Time
	dayCount           int
	balance            decimal.Decimal
	interest           decimal.Decimal
	cumulativeInterest decimal.Decimal
	accruedInterest    decimal.Decimal
	applied            bool
}

// NewMonthlyLedgerEntry creates one ledger row.
func NewMonthlyLedgerEntry(
	label string,
	periodStart, periodEnd time.Time,
	dayCount int,
	balance, interest, cumulativeInterest, accruedInterest decimal.Decimal,
	applied bool,
) MonthlyLedgerEntry {
	return MonthlyLedgerEntry{
		label:              label,
		periodStart:        periodStart,
		periodEnd:          periodEnd,
		dayCount:           dayCount,
		balance:            balance,
		interest:           interest,
		cumulativeInterest: cumulativeInterest,
		accruedInterest:    accruedInterest,
		applied:            applied,
	}
}

// Label returns the human-readable period label, e.g. "January 2024".
func (e MonthlyLedgerEntry) Label() string { return e.label }

// PeriodStart returns the first day of the segment.
func (e MonthlyLedgerEntry) PeriodStart() time.Time { return e.periodStart }

// PeriodEnd returns the last day of the segment.
func (e MonthlyLedgerEntry) PeriodEnd() time.Time { return e.periodEnd }

// DayCount returns the inclusive number of days in the segment.
func (e MonthlyLedgerEntry) DayCount() int { return e.dayCount }

// Balance returns the running balance after this entry.
func (e MonthlyLedgerEntry) Balance() decimal.Decimal { return e.balance }

// Interest returns the interest earned in this segment.
func (e MonthlyLedgerEntry) Interest() decimal.Decimal { return e.interest }

// CumulativeInterest returns all interest earned up to and including this
// segment, applied or not.
func (e MonthlyLedgerEntry) CumulativeInterest() decimal.Decimal { return e.cumulativeInterest }

// AccruedInterest returns the interest earned but not yet capitalized as
// of the end of this segment.
func (e MonthlyLedgerEntry) AccruedInterest() decimal.Decimal { return e.accruedInterest }

// Applied reports whether capitalization occurred at the end of this segment.
func (e MonthlyLedgerEntry) Applied() bool { return e.applied }

// TierResult pairs a tier allocation of the original principal with the
// interest it would earn over the entire period. It is an informational
// view independent of the monthly capitalization ledger.
type TierResult struct {
	allocation valueobject.TierAllocation
	interest   decimal.Decimal
}

// NewTierResult creates a tier-level total.
func NewTierResult(allocation valueobject.TierAllocation, interest decimal.Decimal) TierResult {
	return TierResult{allocation: allocation, interest: interest}
}

// Allocation returns the underlying principal allocation.
func (r TierResult) Allocation() valueobject.TierAllocation { return r.allocation }

// Interest returns the full-period interest for this tier allocation.
func (r TierResult) Interest() decimal.Decimal { return r.interest }

// DailyLedgerEntry is one row of the day-by-day expansion derived from the
// monthly ledger. It is a presentation aid, not an independent computation.
type DailyLedgerEntry struct {
	date               time.Time
	interest           decimal.Decimal
	cumulativeInterest decimal.Decimal
}

// Date returns the calendar day of the entry.
func (e DailyLedgerEntry) Date() time.Time { return e.date }

// Interest returns the interest attributed to this day.
func (e DailyLedgerEntry) Interest() decimal.Decimal { return e.interest }

// CumulativeInterest returns all interest earned through this day.
func (e DailyLedgerEntry) CumulativeInterest() decimal.Decimal { return e.cumulativeInterest }

// CalculationResult is the aggregate outcome of one calculation run. It is
// constructed once, returned to the caller, and never mutated afterward.
type CalculationResult struct {
	totalInterest   decimal.Decimal
	finalAmount     decimal.Decimal
	accruedInterest decimal.Decimal
	totalDays       int
	breakdown       []MonthlyLedgerEntry
	tierResults     []TierResult
}

// NewCalculationResult assembles the aggregate result.
func NewCalculationResult(
	totalInterest, finalAmount, accruedInterest decimal.Decimal,
	totalDays int,
	breakdown []MonthlyLedgerEntry,
	tierResults []TierResult,
) CalculationResult {
	b := make([]MonthlyLedgerEntry, len(breakdown))
	copy(b, breakdown)
	t := make([]TierResult, len(tierResults))
	copy(t, tierResults)

	return CalculationResult{
		totalInterest:   totalInterest,
		finalAmount:     finalAmount,
		accruedInterest: accruedInterest,
		totalDays:       totalDays,
		breakdown:       b,
		tierResults:     t,
	}
}

// TotalInterest returns applied plus still-accrued interest as of the
// period end.
func (r CalculationResult) TotalInterest() decimal.Decimal { return r.totalInterest }

// FinalAmount returns principal plus total interest.
func (r CalculationResult) FinalAmount() decimal.Decimal { return r.finalAmount }

// AccruedInterest returns interest not yet capitalized at the period end.
func (r CalculationResult) AccruedInterest() decimal.Decimal { return r.accruedInterest }

// TotalDays returns the inclusive day count of the whole range.
func (r CalculationResult) TotalDays() int { return r.totalDays }

// Breakdown returns the monthly ledger in chronological order.
func (r CalculationResult) Breakdown() []MonthlyLedgerEntry {
	c := make([]MonthlyLedgerEntry, len(r.breakdown))
	copy(c, r.breakdown)
	return c
}

// TierResults returns the tier-level totals ordered by ascending tier
// lower bound.
func (r CalculationResult) TierResults() []TierResult {
	c := make([]TierResult, len(r.tierResults))
	copy(c, r.tierResults)
	return c
}

// DailyBreakdown expands the monthly ledger into per-day rows by
// distributing each segment's interest evenly across its days. The last
// day of each segment absorbs the rounding residual so that daily rows sum
// exactly to the segment interest. There is deliberately no second
// interest computation here; the monthly ledger stays the single source
// of truth.
func (r CalculationResult) DailyBreakdown(dctx valueobject.DecimalContext) []DailyLedgerEntry {
	var entries []DailyLedgerEntry
	cumulative := decimal.Zero

	for _, segment := range r.breakdown {
		days := segment.DayCount()
		if days <= 0 {
			continue
		}

		perDay := dctx.Div(segment.Interest(), decimal.NewFromInt(int64(days)))
		distributed := decimal.Zero

		for i := 0; i < days; i++ {
			dayInterest := perDay
			if i == days-1 {
				dayInterest = segment.Interest().Sub(distributed)
			}
			distributed = distributed.Add(dayInterest)
			cumulative = cumulative.Add(dayInterest)

			entries = append(entries, DailyLedgerEntry{
				date:               segment.PeriodStart().AddDate(0, 0, i),
				interest:           dayInterest,
				cumulativeInterest: cumulative,
			})
		}
	}

	return entries
}
