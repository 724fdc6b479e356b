// Package postgres implements the calculation history repository on
// PostgreSQL via pgx.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

// HistoryRepository stores completed calculation records. Parameters and
// results are serialized as JSONB; headline columns are duplicated for
// listing without unmarshalling the full breakdown.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

var _ port.CalculationHistoryRepository = (*HistoryRepository)(nil)

type tierJSON struct {
	Min  string `json:"min"`
	Max  string `json:"max,omitempty"`
	Rate string `json:"rate"`
}

type ledgerEntryJSON struct {
	Label              string `json:"label"`
	PeriodStart        string `json:"period_start"`
	PeriodEnd          string `json:"period_end"`
	DayCount           int    `json:"day_count"`
	Balance            string `json:"balance"`
	Interest           string `json:"interest"`
	CumulativeInterest string `json:"cumulative_interest"`
	AccruedInterest    string `json:"accrued_interest"`
	Applied            bool   `json:"applied"`
}

type tierResultJSON struct {
	Tier     tierJSON `json:"tier"`
	Amount   string   `json:"amount"`
	Interest string   `json:"interest"`
}

type resultJSON struct {
	TotalInterest   string            `json:"total_interest"`
	FinalAmount     string            `json:"final_amount"`
	AccruedInterest string            `json:"accrued_interest"`
	TotalDays       int               `json:"total_days"`
	Breakdown       []ledgerEntryJSON `json:"breakdown"`
	TierResults     []tierResultJSON  `json:"tier_results"`
}

// Save persists a calculation record.
func (r *HistoryRepository) Save(ctx context.Context, record model.CalculationRecord) error {
	params := record.Parameters()

	tiers, err := json.Marshal(tiersToJSON(params.Tiers()))
	if err != nil {
		return fmt.Errorf("marshal tiers: %w", err)
	}
	result, err := json.Marshal(resultToJSON(record.Result()))
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	query := `
		INSERT INTO calculations (
			id, principal, start_date, end_date,
			interest_type, apply_cadence, tiers, result, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.pool.Exec(ctx, query,
		record.ID(),
		params.Principal().String(),
		params.StartDate(),
		params.EndDate(),
		string(params.InterestType()),
		string(params.ApplyCadence()),
		tiers,
		result,
		record.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// FindByID retrieves one record, including its full breakdown.
func (r *HistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (model.CalculationRecord, error) {
	query := `
		SELECT id, principal, start_date, end_date,
		       interest_type, apply_cadence, tiers, result, created_at
		FROM calculations
		WHERE id = $1`

	record, err := r.scanRecord(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CalculationRecord{}, port.ErrNotFound
		}
		return model.CalculationRecord{}, fmt.Errorf("find calculation %s: %w", id, err)
	}
	return record, nil
}

// List returns records in reverse chronological order.
func (r *HistoryRepository) List(ctx context.Context, limit, offset int) ([]model.CalculationRecord, error) {
	query := `
		SELECT id, principal, start_date, end_date,
		       interest_type, apply_cadence, tiers, result, created_at
		FROM calculations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	var records []model.CalculationRecord
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list calculations: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return records, nil
}

func (r *HistoryRepository) scanRecord(row pgx.Row) (model.CalculationRecord, error) {
	var (
		id                 uuid.UUID
		principal          string
		startDate, endDate time.Time
		interestType       string
		applyCadence       string
		tiersRaw           []byte
		resultRaw          []byte
		createdAt          time.Time
	)

	if err := row.Scan(&id, &principal, &startDate, &endDate,
		&interestType, &applyCadence, &tiersRaw, &resultRaw, &createdAt); err != nil {
		return model.CalculationRecord{}, err
	}

	params, err := rebuildParameters(principal, startDate, endDate, interestType, applyCadence, tiersRaw)
	if err != nil {
		return model.CalculationRecord{}, err
	}
	result, err := rebuildResult(resultRaw)
	if err != nil {
		return model.CalculationRecord{}, err
	}

	return model.ReconstructCalculationRecord(id, params, result, createdAt), nil
}

func tiersToJSON(tiers []valueobject.InterestTier) []tierJSON {
	out := make([]tierJSON, 0, len(tiers))
	for _, tier := range tiers {
		tj := tierJSON{Min: tier.Min().String(), Rate: tier.Rate().String()}
		if max, bounded := tier.Max(); bounded {
			tj.Max = max.String()
		}
		out = append(out, tj)
	}
	return out
}

func resultToJSON(result model.CalculationResult) resultJSON {
	breakdown := make([]ledgerEntryJSON, 0, len(result.Breakdown()))
	for _, entry := range result.Breakdown() {
		breakdown = append(breakdown, ledgerEntryJSON{
			Label:              entry.Label(),
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

	tierResults := make([]tierResultJSON, 0, len(result.TierResults()))
	for _, tr := range result.TierResults() {
		tj := tierJSON{
			Min:  tr.Allocation().Tier().Min().String(),
			Rate: tr.Allocation().Tier().Rate().String(),
		}
		if max, bounded := tr.Allocation().Tier().Max(); bounded {
			tj.Max = max.String()
		}
		tierResults = append(tierResults, tierResultJSON{
			Tier:     tj,
			Amount:   tr.Allocation().Amount().String(),
			Interest: tr.Interest().String(),
		})
	}

	return resultJSON{
		TotalInterest:   result.TotalInterest().String(),
		FinalAmount:     result.FinalAmount().String(),
		AccruedInterest: result.AccruedInterest().String(),
		TotalDays:       result.TotalDays(),
		Breakdown:       breakdown,
		TierResults:     tierResults,
	}
}

func rebuildParameters(
	principal string,
	startDate, endDate time.Time,
	interestType, applyCadence string,
	tiersRaw []byte,
) (model.CalculationParameters, error) {
	principalDec, err := decimal.NewFromString(principal)
	if err != nil {
		return model.CalculationParameters{}, fmt.Errorf("parse stored principal: %w", err)
	}

	var tiersJSON []tierJSON
	if err := json.Unmarshal(tiersRaw, &tiersJSON); err != nil {
		return model.CalculationParameters{}, fmt.Errorf("unmarshal stored tiers: %w", err)
	}
	tiers := make([]valueobject.InterestTier, 0, len(tiersJSON))
	for _, tj := range tiersJSON {
		tier, err := rebuildTier(tj)
		if err != nil {
			return model.CalculationParameters{}, err
		}
		tiers = append(tiers, tier)
	}

	it, err := valueobject.ParseInterestType(interestType)
	if err != nil {
		return model.CalculationParameters{}, fmt.Errorf("parse stored interest type: %w", err)
	}
	cadence, err := valueobject.ParseApplyCadence(applyCadence)
	if err != nil {
		return model.CalculationParameters{}, fmt.Errorf("parse stored cadence: %w", err)
	}

	return model.NewCalculationParameters(principalDec, startDate, endDate, tiers, it, cadence)
}

func rebuildTier(tj tierJSON) (valueobject.InterestTier, error) {
	min, err := decimal.NewFromString(tj.Min)
	if err != nil {
		return valueobject.InterestTier{}, fmt.Errorf("parse stored tier min: %w", err)
	}
	rate, err := decimal.NewFromString(tj.Rate)
	if err != nil {
		return valueobject.InterestTier{}, fmt.Errorf("parse stored tier rate: %w", err)
	}
	var max *decimal.Decimal
	if tj.Max != "" {
		parsed, err := decimal.NewFromString(tj.Max)
		if err != nil {
			return valueobject.InterestTier{}, fmt.Errorf("parse stored tier max: %w", err)
		}
		max = &parsed
	}
	return valueobject.NewInterestTier(min, max, rate)
}

func rebuildResult(raw []byte) (model.CalculationResult, error) {
	var rj resultJSON
	if err := json.Unmarshal(raw, &rj); err != nil {
		return model.CalculationResult{}, fmt.Errorf("unmarshal stored result: %w", err)
	}

	entries := make([]model.MonthlyLedgerEntry, 0, len(rj.Breakdown))
	for _, ej := range rj.Breakdown {
		periodStart, err := time.Parse(time.DateOnly, ej.PeriodStart)
		if err != nil {
			return model.CalculationResult{}, fmt.Errorf("parse stored period start: %w", err)
		}
		periodEnd, err := time.Parse(time.DateOnly, ej.PeriodEnd)
		if err != nil {
			return model.CalculationResult{}, fmt.Errorf("parse stored period end: %w", err)
		}
		balance, interest, cumulative, accrued, err := parseEntryAmounts(ej)
		if err != nil {
			return model.CalculationResult{}, err
		}
		entries = append(entries, model.NewMonthlyLedgerEntry(
			ej.Label, periodStart, periodEnd, ej.DayCount,
			balance, interest, cumulative, accrued, ej.Applied,
		))
	}

	tierResults := make([]model.TierResult, 0, len(rj.TierResults))
	for _, trj := range rj.TierResults {
		tier, err := rebuildTier(trj.Tier)
		if err != nil {
			return model.CalculationResult{}, err
		}
		amount, err := decimal.NewFromString(trj.Amount)
		if err != nil {
			return model.CalculationResult{}, fmt.Errorf("parse stored tier amount: %w", err)
		}
		interest, err := decimal.NewFromString(trj.Interest)
		if err != nil {
			return model.CalculationResult{}, fmt.Errorf("parse stored tier interest: %w", err)
		}
		tierResults = append(tierResults, model.NewTierResult(
			valueobject.NewTierAllocation(tier, amount), interest,
		))
	}

	totalInterest, err := decimal.NewFromString(rj.TotalInterest)
	if err != nil {
		return model.CalculationResult{}, fmt.Errorf("parse stored total interest: %w", err)
	}
	finalAmount, err := decimal.NewFromString(rj.FinalAmount)
	if err != nil {
		return model.CalculationResult{}, fmt.Errorf("parse stored final amount: %w", err)
	}
	accruedInterest, err := decimal.NewFromString(rj.AccruedInterest)
	if err != nil {
		return model.CalculationResult{}, fmt.Errorf("parse stored accrued interest: %w", err)
	}

	return model.NewCalculationResult(
		totalInterest, finalAmount, accruedInterest,
		rj.TotalDays, entries, tierResults,
	), nil
}

func parseEntryAmounts(ej ledgerEntryJSON) (balance, interest, cumulative, accrued decimal.Decimal, err error) {
	if balance, err = decimal.NewFromString(ej.Balance); err != nil {
		return balance, interest, cumulative, accrued, fmt.Errorf("parse stored balance: %w", err)
	}
	if interest, err = decimal.NewFromString(ej.Interest); err != nil {
		return balance, interest, cumulative, accrued, fmt.Errorf("parse stored interest: %w", err)
	}
	if cumulative, err = decimal.NewFromString(ej.CumulativeInterest); err != nil {
		return balance, interest, cumulative, accrued, fmt.Errorf("parse stored cumulative interest: %w", err)
	}
	if accrued, err = decimal.NewFromString(ej.AccruedInterest); err != nil {
		return balance, interest, cumulative, accrued, fmt.Errorf("parse stored accrued interest: %w", err)
	}
	return balance, interest, cumulative, accrued, nil
}
