package dto

import "time"

// --- Calculation DTOs ---

// TierInput is one interest tier as supplied by the caller. All amounts
// are decimal-formatted strings; an empty Max marks the tier open-ended.
type TierInput struct {
	Min  string
	Max  string
	Rate string
}

// CalculateRequest is the input DTO for running a calculation.
// Dates use the ISO format YYYY-MM-DD. IncludeDailyBreakdown additionally
// returns the day-by-day expansion of the monthly ledger.
type CalculateRequest struct {
	Principal             string
	StartDate             string
	EndDate               string
	Tiers                 []TierInput
	InterestType          string
	ApplyCadence          string
	IncludeDailyBreakdown bool
}

// DailyEntryResponse is one row of the derived day-by-day view.
type DailyEntryResponse struct {
	Date               string
	Interest           string
	CumulativeInterest string
}

// LedgerEntryResponse is one row of the monthly breakdown.
type LedgerEntryResponse struct {
	Period             string
	PeriodStart        string
	PeriodEnd          string
	DayCount           int
	Balance            string
	Interest           string
	CumulativeInterest string
	AccruedInterest    string
	Applied            bool
}

// TierResultResponse is one tier-level total over the whole period.
// Max is empty for the open-ended tier.
type TierResultResponse struct {
	Min      string
	Max      string
	Rate     string
	Amount   string
	Interest string
}

// CalculationResponse is the output DTO for a completed calculation.
type CalculationResponse struct {
	ID              string
	Principal       string
	StartDate       string
	EndDate         string
	InterestType    string
	ApplyCadence    string
	TotalInterest   string
	FinalAmount     string
	AccruedInterest string
	TotalDays       int
	Breakdown       []LedgerEntryResponse
	TierResults     []TierResultResponse
	DailyBreakdown  []DailyEntryResponse
	CreatedAt       time.Time
}

// --- History DTOs ---

// HistorySummary is one row of the history listing: headline figures
// without the full breakdown.
type HistorySummary struct {
	ID            string
	Principal     string
	StartDate     string
	EndDate       string
	InterestType  string
	ApplyCadence  string
	TotalInterest string
	FinalAmount   string
	TotalDays     int
	CreatedAt     time.Time
}

// ListHistoryRequest pages through stored calculations.
type ListHistoryRequest struct {
	Limit  int
	Offset int
}

// --- Preset DTOs ---

// SavePresetRequest stores a named parameter set.
type SavePresetRequest struct {
	Name       string
	Parameters CalculateRequest
}

// PresetResponse is one stored preset.
type PresetResponse struct {
	Name       string
	Parameters CalculateRequest
	CreatedAt  time.Time
}
