package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

// SplitAcrossTiers partitions a principal across a tier set and returns
// the allocations ordered by ascending tier lower bound. Only tiers that
// receive a non-zero amount appear in the result. Tiers need not arrive
// pre-sorted. A zero or negative principal yields no allocations.
//
// Each tier's capacity is measured against the running allocated total,
// not against the tier width: for contiguous tier sets starting at or
// near zero the two are equivalent, and the boundary amount that exactly
// fills a tier never spills into the next one.
func SplitAcrossTiers(principal decimal.Decimal, tiers []valueobject.InterestTier) []valueobject.TierAllocation {
	if !principal.IsPositive() || len(tiers) == 0 {
		return nil
	}

	sorted := make([]valueobject.InterestTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Min().LessThan(sorted[j].Min())
	})

	var allocations []valueobject.TierAllocation
	allocated := decimal.Zero

	for _, tier := range sorted {
		if allocated.GreaterThanOrEqual(principal) {
			break
		}
		// The principal does not reach this tier. Keep scanning: with a
		// malformed, out-of-order set a later tier could still apply.
		if principal.LessThan(tier.Min()) {
			continue
		}

		remaining := principal.Sub(allocated)
		amount := remaining
		if max, bounded := tier.Max(); bounded {
			capacity := max.Sub(allocated)
			if capacity.LessThan(amount) {
				amount = capacity
			}
		}

		if amount.IsPositive() {
			allocations = append(allocations, valueobject.NewTierAllocation(tier, amount))
			allocated = allocated.Add(amount)
		}
	}

	return allocations
}
