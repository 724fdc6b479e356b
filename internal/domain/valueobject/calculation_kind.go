package valueobject

import "fmt"

// InterestType selects the per-period interest formula.
type InterestType string

const (
	InterestSimple   InterestType = "simple"
	InterestCompound InterestType = "compound"
)

// ParseInterestType converts a string into an InterestType.
func ParseInterestType(s string) (InterestType, error) {
	switch InterestType(s) {
	case InterestSimple, InterestCompound:
		return InterestType(s), nil
	default:
		return "", fmt.Errorf("unknown interest type %q", s)
	}
}

// ApplyCadence selects how often accrued interest is capitalized into the
// running balance.
type ApplyCadence string

const (
	ApplyDaily      ApplyCadence = "daily"
	ApplyMonthly    ApplyCadence = "monthly"
	ApplyBiannually ApplyCadence = "biannually"
	ApplyAnnually   ApplyCadence = "annually"
)

// ParseApplyCadence converts a string into an ApplyCadence.
func ParseApplyCadence(s string) (ApplyCadence, error) {
	switch ApplyCadence(s) {
	case ApplyDaily, ApplyMonthly, ApplyBiannually, ApplyAnnually:
		return ApplyCadence(s), nil
	default:
		return "", fmt.Errorf("unknown application cadence %q", s)
	}
}
