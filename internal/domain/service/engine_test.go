package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/service"
	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

func params(
	t *testing.T,
	principal string,
	start, end time.Time,
	tiers []valueobject.InterestTier,
	interestType valueobject.InterestType,
	cadence valueobject.ApplyCadence,
) model.CalculationParameters {
	t.Helper()
	p, err := model.NewCalculationParameters(dec(principal), start, end, tiers, interestType, cadence)
	require.NoError(t, err)
	return p
}

func twoTierSet(t *testing.T) []valueobject.InterestTier {
	t.Helper()
	return []valueobject.InterestTier{
		tier(t, "1.00", "1000000.00", "2.00"),
		tier(t, "1000000.01", "", "0.50"),
	}
}

func TestCalculate_LeapYearSimpleAnnually(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())

	p := params(t, "1000000.00",
		date(2024, time.January, 1), date(2024, time.December, 31),
		twoTierSet(t), valueobject.InterestSimple, valueobject.ApplyAnnually)

	result, err := engine.Calculate(p)
	require.NoError(t, err)

	breakdown := result.Breakdown()
	require.Len(t, breakdown, 12)

	// Segment day counts must sum to the 366 inclusive days of 2024.
	sumDays := 0
	for _, entry := range breakdown {
		sumDays += entry.DayCount()
	}
	assert.Equal(t, 366, sumDays)
	assert.Equal(t, 366, result.TotalDays())

	// Annual cadence: only the December segment capitalizes.
	for i, entry := range breakdown {
		if i == 11 {
			assert.True(t, entry.Applied(), "december must be applied")
		} else {
			assert.False(t, entry.Applied(), "month %d must not be applied", i)
		}
	}

	// The principal fits the first tier exactly at its boundary, so the
	// second tier receives nothing and does not appear.
	tierResults := result.TierResults()
	require.Len(t, tierResults, 1)
	assert.True(t, tierResults[0].Allocation().Amount().Equal(dec("1000000.00")))
	assert.True(t, tierResults[0].Allocation().Tier().Rate().Equal(dec("2.00")))

	// Total interest ≈ 1,000,000 * 0.02 * 366/365.
	dctx := valueobject.DefaultDecimalContext()
	expected := dctx.Div(dec("1000000.00").Mul(dec("2.00")).Mul(dec("366")), dec("36500"))
	assertDecimalEqual(t, expected, result.TotalInterest())
	assertDecimalEqual(t, expected, tierResults[0].Interest())

	// Everything capitalized in December: nothing left accrued.
	assert.True(t, result.AccruedInterest().IsZero())
	assert.True(t, result.FinalAmount().Sub(dec("1000000.00")).Equal(result.TotalInterest()))
}

func TestCalculate_MonthlyCadenceFullFinalMonthApplies(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())

	p := params(t, "50000",
		date(2024, time.January, 15), date(2024, time.March, 31),
		twoTierSet(t), valueobject.InterestSimple, valueobject.ApplyMonthly)

	result, err := engine.Calculate(p)
	require.NoError(t, err)

	breakdown := result.Breakdown()
	require.Len(t, breakdown, 3)

	assert.Equal(t, 17, breakdown[0].DayCount()) // Jan 15–31
	assert.Equal(t, 29, breakdown[1].DayCount()) // leap February
	assert.Equal(t, 31, breakdown[2].DayCount()) // March

	// Every segment runs to its month end, including the last one.
	for i, entry := range breakdown {
		assert.True(t, entry.Applied(), "segment %d", i)
	}
	assert.True(t, result.AccruedInterest().IsZero())
}

func TestCalculate_MonthlyCadencePartialFinalMonthAccrues(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())

	p := params(t, "50000",
		date(2024, time.January, 1), date(2024, time.March, 15),
		twoTierSet(t), valueobject.InterestSimple, valueobject.ApplyMonthly)

	result, err := engine.Calculate(p)
	require.NoError(t, err)

	breakdown := result.Breakdown()
	require.Len(t, breakdown, 3)

	assert.True(t, breakdown[0].Applied())
	assert.True(t, breakdown[1].Applied())
	assert.False(t, breakdown[2].Applied(), "partial March must carry interest as accrued")

	last := breakdown[2]
	assert.Equal(t, 15, last.DayCount())
	assert.True(t, result.AccruedInterest().Equal(last.Interest()))
	assert.True(t, result.AccruedInterest().IsPositive())

	// Total includes the not-yet-applied tail; final amount too.
	assert.True(t, result.FinalAmount().Equal(last.Balance().Add(result.AccruedInterest())))
	assert.True(t, result.TotalInterest().Equal(last.CumulativeInterest()))
}

func TestCalculate_BiannualAppliesJuneAndDecember(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())

	p := params(t, "75000",
		date(2023, time.January, 1), date(2023, time.December, 31),
		twoTierSet(t), valueobject.InterestSimple, valueobject.ApplyBiannually)

	result, err := engine.Calculate(p)
	require.NoError(t, err)

	breakdown := result.Breakdown()
	require.Len(t, breakdown, 12)

	for i, entry := range breakdown {
		applied := i == 5 || i == 11 // June, December
		assert.Equal(t, applied, entry.Applied(), "month index %d", i)
	}
}

func TestCalculate_DailyCadenceAppliesEverySegment(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())

	p := params(t, "75000",
		date(2023, time.March, 10), date(2023, time.July, 20),
		twoTierSet(t), valueobject.InterestSimple, valueobject.ApplyDaily)

	result, err := engine.Calculate(p)
	require.NoError(t, err)

	for i, entry := range result.Breakdown() {
		assert.True(t, entry.Applied(), "segment %d", i)
		assert.True(t, entry.AccruedInterest().IsZero(), "segment %d", i)
	}
	assert.True(t, result.AccruedInterest().IsZero())
}

func TestCalculate_CapitalizationCompoundsTheBalance(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())
	tiers := twoTierSet(t)
	start := date(2023, time.January, 1)
	end := date(2023, time.December, 31)

	monthly, err := engine.Calculate(params(t, "500000", start, end, tiers,
		valueobject.InterestSimple, valueobject.ApplyMonthly))
	require.NoError(t, err)

	annually, err := engine.Calculate(params(t, "500000", start, end, tiers,
		valueobject.InterestSimple, valueobject.ApplyAnnually))
	require.NoError(t, err)

	// Monthly capitalization grows the balance that later months accrue
	// against, so it must strictly beat annual capitalization.
	assert.True(t, monthly.TotalInterest().GreaterThan(annually.TotalInterest()),
		"monthly %s, annually %s", monthly.TotalInterest(), annually.TotalInterest())
}

func TestCalculate_CompoundStaysBelowSimpleOnMonthSegments(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())
	tiers := twoTierSet(t)
	start := date(2022, time.January, 1)
	end := date(2023, time.December, 31)

	simple, err := engine.Calculate(params(t, "200000", start, end, tiers,
		valueobject.InterestSimple, valueobject.ApplyAnnually))
	require.NoError(t, err)

	compound, err := engine.Calculate(params(t, "200000", start, end, tiers,
		valueobject.InterestCompound, valueobject.ApplyAnnually))
	require.NoError(t, err)

	// The engine accrues per month segment, and for d < 365 days
	// (1+r)^(d/365) - 1 < r*d/365: the growth curve is concave below one
	// full year. Summed over sub-year segments the compound total
	// therefore lands strictly below the simple total, even across a
	// multi-year range. Compound only overtakes simple when a single
	// uninterrupted period exceeds 365 days, which is a property of the
	// interest functions, not of the month-segmented ledger.
	assert.True(t, compound.TotalInterest().LessThan(simple.TotalInterest()),
		"compound %s, simple %s", compound.TotalInterest(), simple.TotalInterest())
}

func TestCalculate_RunningBalanceSplitUsesCapitalizedFunds(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())

	// Principal sits exactly at the first tier's upper bound. Once interest
	// capitalizes, the overflow must earn at the second tier's lower rate.
	p := params(t, "1000000.00",
		date(2023, time.January, 1), date(2023, time.December, 31),
		twoTierSet(t), valueobject.InterestSimple, valueobject.ApplyMonthly)

	result, err := engine.Calculate(p)
	require.NoError(t, err)

	breakdown := result.Breakdown()
	require.Len(t, breakdown, 12)

	// After January's capitalization the balance exceeds the first tier, so
	// February's interest must be less than a full 2% month on the balance.
	dctx := valueobject.DefaultDecimalContext()
	febBalance := breakdown[0].Balance()
	fullRateFeb := service.SimpleInterest(dctx, febBalance, dec("2.00"), breakdown[1].DayCount())
	assert.True(t, breakdown[1].Interest().LessThan(fullRateFeb))

	// But more than the first-tier capacity alone would earn.
	firstTierOnly := service.SimpleInterest(dctx, dec("1000000.00"), dec("2.00"), breakdown[1].DayCount())
	assert.True(t, breakdown[1].Interest().GreaterThan(firstTierOnly))
}

func TestCalculate_Deterministic(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())

	p := params(t, "123456.78",
		date(2024, time.February, 10), date(2025, time.July, 4),
		twoTierSet(t), valueobject.InterestCompound, valueobject.ApplyMonthly)

	first, err := engine.Calculate(p)
	require.NoError(t, err)
	second, err := engine.Calculate(p)
	require.NoError(t, err)

	assert.True(t, first.TotalInterest().Equal(second.TotalInterest()))
	assert.True(t, first.FinalAmount().Equal(second.FinalAmount()))
	assert.True(t, first.AccruedInterest().Equal(second.AccruedInterest()))
	require.Equal(t, len(first.Breakdown()), len(second.Breakdown()))

	for i := range first.Breakdown() {
		a, b := first.Breakdown()[i], second.Breakdown()[i]
		assert.True(t, a.Interest().Equal(b.Interest()), "segment %d", i)
		assert.True(t, a.Balance().Equal(b.Balance()), "segment %d", i)
		assert.Equal(t, a.Applied(), b.Applied(), "segment %d", i)
	}
}

func TestCalculate_LedgerChronologyAndLabels(t *testing.T) {
	engine := service.NewCalculationEngine(valueobject.DefaultDecimalContext())

	p := params(t, "10000",
		date(2024, time.November, 20), date(2025, time.January, 10),
		twoTierSet(t), valueobject.InterestSimple, valueobject.ApplyMonthly)

	result, err := engine.Calculate(p)
	require.NoError(t, err)

	breakdown := result.Breakdown()
	require.Len(t, breakdown, 3)

	assert.Equal(t, "November 2024", breakdown[0].Label())
	assert.Equal(t, "December 2024", breakdown[1].Label())
	assert.Equal(t, "January 2025", breakdown[2].Label())

	assert.Equal(t, date(2024, time.November, 20), breakdown[0].PeriodStart())
	assert.Equal(t, date(2024, time.November, 30), breakdown[0].PeriodEnd())
	assert.Equal(t, date(2025, time.January, 1), breakdown[2].PeriodStart())
	assert.Equal(t, date(2025, time.January, 10), breakdown[2].PeriodEnd())
}

func TestDailyBreakdown_DerivedFromMonthlyLedger(t *testing.T) {
	dctx := valueobject.DefaultDecimalContext()
	engine := service.NewCalculationEngine(dctx)

	p := params(t, "1000000.00",
		date(2024, time.January, 1), date(2024, time.December, 31),
		twoTierSet(t), valueobject.InterestSimple, valueobject.ApplyAnnually)

	result, err := engine.Calculate(p)
	require.NoError(t, err)

	daily := result.DailyBreakdown(dctx)
	require.Len(t, daily, 366)

	assert.Equal(t, date(2024, time.January, 1), daily[0].Date())
	assert.Equal(t, date(2024, time.December, 31), daily[365].Date())

	// Daily rows must sum exactly to the ledger total; the expansion
	// distributes, it never recomputes.
	sum := decimal.Zero
	for _, entry := range daily {
		sum = sum.Add(entry.Interest())
	}
	assert.True(t, sum.Equal(result.TotalInterest()), "daily sum %s, total %s", sum, result.TotalInterest())
	assert.True(t, daily[365].CumulativeInterest().Equal(result.TotalInterest()))
}

func TestNewCalculationParameters_Validation(t *testing.T) {
	tiers := twoTierSet(t)
	start := date(2024, time.January, 1)
	end := date(2024, time.December, 31)

	t.Run("rejects non-positive principal", func(t *testing.T) {
		_, err := model.NewCalculationParameters(decimal.Zero, start, end, tiers,
			valueobject.InterestSimple, valueobject.ApplyMonthly)
		assert.ErrorIs(t, err, model.ErrInvalidAmount)

		_, err = model.NewCalculationParameters(dec("-100"), start, end, tiers,
			valueobject.InterestSimple, valueobject.ApplyMonthly)
		assert.ErrorIs(t, err, model.ErrInvalidAmount)
	})

	t.Run("rejects reversed range", func(t *testing.T) {
		_, err := model.NewCalculationParameters(dec("1000"), end, start, tiers,
			valueobject.InterestSimple, valueobject.ApplyMonthly)
		assert.ErrorIs(t, err, model.ErrInvalidRange)
	})

	t.Run("rejects equal dates", func(t *testing.T) {
		_, err := model.NewCalculationParameters(dec("1000"), start, start, tiers,
			valueobject.InterestSimple, valueobject.ApplyMonthly)
		assert.ErrorIs(t, err, model.ErrInvalidRange)
	})

	t.Run("rejects empty tier set", func(t *testing.T) {
		_, err := model.NewCalculationParameters(dec("1000"), start, end, nil,
			valueobject.InterestSimple, valueobject.ApplyMonthly)
		assert.ErrorIs(t, err, model.ErrInvalidTier)
	})

	t.Run("rejects overlapping tiers", func(t *testing.T) {
		overlapping := []valueobject.InterestTier{
			tier(t, "0", "50000", "2.00"),
			tier(t, "50000", "", "1.00"),
		}
		_, err := model.NewCalculationParameters(dec("1000"), start, end, overlapping,
			valueobject.InterestSimple, valueobject.ApplyMonthly)
		assert.ErrorIs(t, err, model.ErrInvalidTier)
	})
}
