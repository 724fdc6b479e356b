package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

// ErrInvalidRequest marks request-shape failures that are not covered by
// the domain's amount/range/tier sentinels (unknown enum values, bad IDs).
var ErrInvalidRequest = errors.New("invalid request")

// parseParameters converts the string-typed boundary request into
// validated domain parameters. All validation failures surface here,
// before any ledger computation begins.
func parseParameters(req dto.CalculateRequest) (model.CalculationParameters, error) {
	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return model.CalculationParameters{}, fmt.Errorf("%w: principal %q", model.ErrInvalidAmount, req.Principal)
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return model.CalculationParameters{}, fmt.Errorf("%w: start date %q", model.ErrInvalidRange, req.StartDate)
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return model.CalculationParameters{}, fmt.Errorf("%w: end date %q", model.ErrInvalidRange, req.EndDate)
	}

	tiers, err := parseTiers(req.Tiers)
	if err != nil {
		return model.CalculationParameters{}, err
	}

	interestType, err := valueobject.ParseInterestType(req.InterestType)
	if err != nil {
		return model.CalculationParameters{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	cadence, err := valueobject.ParseApplyCadence(req.ApplyCadence)
	if err != nil {
		return model.CalculationParameters{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return model.NewCalculationParameters(principal, startDate, endDate, tiers, interestType, cadence)
}

// parseTiers converts tier inputs, rejecting malformed entries outright.
// A tier with a missing or unparsable min or rate is a validation error,
// never silently dropped.
func parseTiers(inputs []dto.TierInput) ([]valueobject.InterestTier, error) {
	tiers := make([]valueobject.InterestTier, 0, len(inputs))
	for i, input := range inputs {
		min, err := decimal.NewFromString(input.Min)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %d min %q", model.ErrInvalidTier, i, input.Min)
		}
		rate, err := decimal.NewFromString(input.Rate)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %d rate %q", model.ErrInvalidTier, i, input.Rate)
		}

		var max *decimal.Decimal
		if input.Max != "" {
			parsed, err := decimal.NewFromString(input.Max)
			if err != nil {
				return nil, fmt.Errorf("%w: tier %d max %q", model.ErrInvalidTier, i, input.Max)
			}
			max = &parsed
		}

		tier, err := valueobject.NewInterestTier(min, max, rate)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %d: %v", model.ErrInvalidTier, i, err)
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// parametersToRequest renders domain parameters back into the boundary
// representation, used when returning stored presets and history records.
func parametersToRequest(params model.CalculationParameters) dto.CalculateRequest {
	tiers := make([]dto.TierInput, 0, len(params.Tiers()))
	for _, tier := range params.Tiers() {
		input := dto.TierInput{
			Min:  tier.Min().String(),
			Rate: tier.Rate().String(),
		}
		if max, bounded := tier.Max(); bounded {
			input.Max = max.String()
		}
		tiers = append(tiers, input)
	}

	return dto.CalculateRequest{
		Principal:    params.Principal().String(),
		StartDate:    params.StartDate().Format(time.DateOnly),
		EndDate:      params.EndDate().Format(time.DateOnly),
		Tiers:        tiers,
		InterestType: string(params.InterestType()),
		ApplyCadence: string(params.ApplyCadence()),
	}
}

// recordToResponse renders a full calculation record for the caller.
func recordToResponse(record model.CalculationRecord) dto.CalculationResponse {
	params := record.Parameters()
	result := record.Result()

	breakdown := make([]dto.LedgerEntryResponse, 0, len(result.Breakdown()))
	for _, entry := range result.Breakdown() {
		breakdown = append(breakdown, dto.LedgerEntryResponse{
			Period:             entry.Label(),
			PeriodStart:        entry.PeriodStart().Format(time.DateOnly),
			PeriodEnd:          entry.PeriodEnd().Format(time.DateOnly),
			DayCount:           entry.DayCount(),
			Balance:            entry.Balance().String(),
			Interest:           entry.Interest().String(),
			CumulativeInterest: entry.CumulativeInterest().String(),
			AccruedInterest:    entry.AccruedInterest().String(),
			Applied:            entry.Applied(),
		})
	}

	tierResults := make([]dto.TierResultResponse, 0, len(result.TierResults()))
	for _, tr := range result.TierResults() {
		resp := dto.TierResultResponse{
			Min:      tr.Allocation().Tier().Min().String(),
			Rate:     tr.Allocation().Tier().Rate().String(),
			Amount:   tr.Allocation().Amount().String(),
			Interest: tr.Interest().String(),
		}
		if max, bounded := tr.Allocation().Tier().Max(); bounded {
			resp.Max = max.String()
		}
		tierResults = append(tierResults, resp)
	}

	return dto.CalculationResponse{
		ID:              record.ID().String(),
		Principal:       params.Principal().String(),
		StartDate:       params.StartDate().Format(time.DateOnly),
		EndDate:         params.EndDate().Format(time.DateOnly),
		InterestType:    string(params.InterestType()),
		ApplyCadence:    string(params.ApplyCadence()),
		TotalInterest:   result.TotalInterest().String(),
		FinalAmount:     result.FinalAmount().String(),
		AccruedInterest: result.AccruedInterest().String(),
		TotalDays:       result.TotalDays(),
		Breakdown:       breakdown,
		TierResults:     tierResults,
		CreatedAt:       record.CreatedAt(),
	}
}

// dailyBreakdownToDTO renders the derived day-by-day view of a record.
func dailyBreakdownToDTO(record model.CalculationRecord, dctx valueobject.DecimalContext) []dto.DailyEntryResponse {
	daily := record.Result().DailyBreakdown(dctx)
	entries := make([]dto.DailyEntryResponse, 0, len(daily))
	for _, entry := range daily {
		entries = append(entries, dto.DailyEntryResponse{
			Date:               entry.Date().Format(time.DateOnly),
			Interest:           entry.Interest().String(),
			CumulativeInterest: entry.CumulativeInterest().String(),
		})
	}
	return entries
}

// recordToSummary renders the headline figures of a record.
func recordToSummary(record model.CalculationRecord) dto.HistorySummary {
	params := record.Parameters()
	result := record.Result()

	return dto.HistorySummary{
		ID:            record.ID().String(),
		Principal:     params.Principal().String(),
		StartDate:     params.StartDate().Format(time.DateOnly),
		EndDate:       params.EndDate().Format(time.DateOnly),
		InterestType:  string(params.InterestType()),
		ApplyCadence:  string(params.ApplyCadence()),
		TotalInterest: result.TotalInterest().String(),
		FinalAmount:   result.FinalAmount().String(),
		TotalDays:     result.TotalDays(),
		CreatedAt:     record.CreatedAt(),
	}
}

// presetToResponse renders a stored preset.
func presetToResponse(preset model.Preset) dto.PresetResponse {
	return dto.PresetResponse{
		Name:       preset.Name(),
		Parameters: parametersToRequest(preset.Parameters()),
		CreatedAt:  preset.CreatedAt(),
	}
}
