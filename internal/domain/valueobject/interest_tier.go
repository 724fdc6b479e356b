package valueobject

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// InterestTier is an immutable value object representing a contiguous
// deposit amount band with its own annual interest rate. Rates are
// expressed as annual percentages: a rate of 2.5 means 2.50% per year.
//
// A nil upper bound marks the tier as open-ended; only the last tier of a
// valid set may be unbounded. The absence of an upper bound is a tagged
// state, never a sentinel amount.
type InterestTier struct {
	min  decimal.Decimal
	max  *decimal.Decimal
	rate decimal.Decimal
}

// NewInterestTier creates a validated InterestTier. It enforces min >= 0,
// rate >= 0 and, when an upper bound is present, max > min.
func NewInterestTier(min decimal.Decimal, max *decimal.Decimal, ratePercent decimal.Decimal) (InterestTier, error) {
	if min.IsNegative() {
		return InterestTier{}, fmt.Errorf("minimum amount must not be negative")
	}
	if max != nil && max.LessThanOrEqual(min) {
		return InterestTier{}, fmt.Errorf("maximum amount must be greater than minimum amount")
	}
	if ratePercent.IsNegative() {
		return InterestTier{}, fmt.Errorf("annual rate must not be negative")
	}

	tier := InterestTier{min: min, rate: ratePercent}
	if max != nil {
		bound := *max
		tier.max = &bound
	}
	return tier, nil
}

// Min returns the lower bound of the tier (inclusive).
func (t InterestTier) Min() decimal.Decimal {
	return t.min
}

// Max returns the upper bound of the tier (inclusive) and false when the
// tier is open-ended.
func (t InterestTier) Max() (decimal.Decimal, bool) {
	if t.max == nil {
		return decimal.Decimal{}, false
	}
	return *t.max, true
}

// Unbounded reports whether the tier has no upper bound.
func (t InterestTier) Unbounded() bool {
	return t.max == nil
}

// Rate returns the annual interest rate as a percentage.
func (t InterestTier) Rate() decimal.Decimal {
	return t.rate
}

// ValidateTierSet checks that a tier set is usable by the calculation
// engine: it must be non-empty, tiers must not overlap when sorted by
// ascending lower bound, and only the last tier may be unbounded.
func ValidateTierSet(tiers []InterestTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("at least one interest tier is required")
	}

	sorted := make([]InterestTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Min().LessThan(sorted[j].Min())
	})

	for i := 1; i < len(sorted); i++ {
		prevMax, bounded := sorted[i-1].Max()
		if !bounded {
			return fmt.Errorf("only the last tier may be open-ended, tier starting at %s follows an unbounded tier", sorted[i].Min())
		}
		if sorted[i].Min().LessThanOrEqual(prevMax) {
			return fmt.Errorf("interest tiers overlap: tier ending at %s overlaps with tier starting at %s",
				prevMax, sorted[i].Min())
		}
	}
	return nil
}

// TierAllocation is the portion of a principal that falls within one tier.
// Allocations are produced fresh on every split and never persisted.
type TierAllocation struct {
	tier   InterestTier
	amount decimal.Decimal
}

// NewTierAllocation pairs a tier with the amount allocated to it.
func NewTierAllocation(tier InterestTier, amount decimal.Decimal) TierAllocation {
	return TierAllocation{tier: tier, amount: amount}
}

// Tier returns the tier this allocation belongs to.
func (a TierAllocation) Tier() InterestTier {
	return a.tier
}

// Amount returns the portion of the principal allocated to the tier.
func (a TierAllocation) Amount() decimal.Decimal {
	return a.amount
}
