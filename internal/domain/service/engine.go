package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

// CalculationEngine is the domain service that walks a date range month by
// month, splits the running balance across tiers, accrues interest per
// segment, and capitalizes it according to the application cadence.
//
// The engine is pure: no I/O, no shared state, and identical inputs always
// produce an identical result. It is safe for concurrent use.
type CalculationEngine struct {
	dctx valueobject.DecimalContext
}

// NewCalculationEngine creates an engine with the given decimal context.
func NewCalculationEngine(dctx valueobject.DecimalContext) *CalculationEngine {
	return &CalculationEngine{dctx: dctx}
}

// DecimalContext returns the context the engine computes with.
func (e *CalculationEngine) DecimalContext() valueobject.DecimalContext {
	return e.dctx
}

// Calculate runs the full accrual over the parameter's date range and
// returns the structured ledger plus tier-level and aggregate totals.
// Parameters are validated at construction, so the only error path left
// is decimal exponentiation, which cannot occur for non-negative rates.
func (e *CalculationEngine) Calculate(params model.CalculationParameters) (model.CalculationResult, error) {
	var (
		entries           []model.MonthlyLedgerEntry
		runningBalance    = params.Principal()
		cumulativeApplied = decimal.Zero
		accrued           = decimal.Zero
		totalDays         int
	)

	tiers := params.Tiers()

	segStart := params.StartDate()
	for !segStart.After(params.EndDate()) {
		segEnd := lastDayOfMonth(segStart)
		if segEnd.After(params.EndDate()) {
			segEnd = params.EndDate()
		}

		days := InclusiveDayCount(segStart, segEnd)
		totalDays += days

		allocations := SplitAcrossTiers(runningBalance, tiers)
		periodInterest, err := e.periodInterest(allocations, params.InterestType(), days)
		if err != nil {
			return model.CalculationResult{}, err
		}

		applied := capitalizes(params.ApplyCadence(), segEnd)

		var entry model.MonthlyLedgerEntry
		if applied {
			folded := accrued.Add(periodInterest)
			cumulativeApplied = cumulativeApplied.Add(folded)
			runningBalance = runningBalance.Add(folded)
			accrued = decimal.Zero

			entry = model.NewMonthlyLedgerEntry(
				segStart.Format("January 2006"), segStart, segEnd, days,
				runningBalance, periodInterest, cumulativeApplied, decimal.Zero, true,
			)
		} else {
			accrued = accrued.Add(periodInterest)

			entry = model.NewMonthlyLedgerEntry(
				segStart.Format("January 2006"), segStart, segEnd, days,
				runningBalance, periodInterest, cumulativeApplied.Add(accrued), accrued, false,
			)
		}
		entries = append(entries, entry)

		segStart = segEnd.AddDate(0, 0, 1)
	}

	// Tier-level totals over the whole period against the original
	// principal. This is an informational, non-compounding view separate
	// from the monthly ledger.
	var tierResults []model.TierResult
	for _, allocation := range SplitAcrossTiers(params.Principal(), tiers) {
		interest, err := e.allocationInterest(allocation, params.InterestType(), totalDays)
		if err != nil {
			return model.CalculationResult{}, err
		}
		tierResults = append(tierResults, model.NewTierResult(allocation, interest))
	}

	return model.NewCalculationResult(
		cumulativeApplied.Add(accrued),
		runningBalance.Add(accrued),
		accrued,
		totalDays,
		entries,
		tierResults,
	), nil
}

// periodInterest sums each allocation's interest for the segment.
func (e *CalculationEngine) periodInterest(
	allocations []valueobject.TierAllocation,
	interestType valueobject.InterestType,
	days int,
) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, allocation := range allocations {
		interest, err := e.allocationInterest(allocation, interestType, days)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(interest)
	}
	return total, nil
}

func (e *CalculationEngine) allocationInterest(
	allocation valueobject.TierAllocation,
	interestType valueobject.InterestType,
	days int,
) (decimal.Decimal, error) {
	if interestType == valueobject.InterestCompound {
		return CompoundInterest(e.dctx, allocation.Amount(), allocation.Tier().Rate(), days)
	}
	return SimpleInterest(e.dctx, allocation.Amount(), allocation.Tier().Rate(), days), nil
}

// capitalizes decides whether a segment ending on segEnd folds its accrued
// interest into the balance.
//
// daily applies at every segment: the ledger operates at month
// granularity, so "daily" capitalization rolls up to one application per
// month segment. monthly applies whenever the segment runs to the end of
// its calendar month; a final partial month carries its interest as
// accrued instead. biannual and annual cadences apply in June/December
// and December respectively.
func capitalizes(cadence valueobject.ApplyCadence, segEnd time.Time) bool {
	switch cadence {
	case valueobject.ApplyDaily:
		return true
	case valueobject.ApplyMonthly:
		return segEnd.Equal(lastDayOfMonth(segEnd))
	case valueobject.ApplyBiannually:
		return segEnd.Month() == time.June || segEnd.Month() == time.December
	case valueobject.ApplyAnnually:
		return segEnd.Month() == time.December
	default:
		return false
	}
}
