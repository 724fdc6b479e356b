// Package redis implements the preset repository on Redis. Presets are
// small, hot, and replaceable, which suits a key-value store better than
// the relational history table.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

const (
	presetKeyPrefix = "depositcalc:preset:"
	presetIndexKey  = "depositcalc:presets"
)

// PresetRepository stores named parameter presets as JSON values under
// per-name keys, with a set maintaining the name index.
type PresetRepository struct {
	client *redis.Client
}

func NewPresetRepository(client *redis.Client) *PresetRepository {
	return &PresetRepository{client: client}
}

var _ port.PresetRepository = (*PresetRepository)(nil)

type presetTierJSON struct {
	Min  string `json:"min"`
	Max  string `json:"max,omitempty"`
	Rate string `json:"rate"`
}

type presetJSON struct {
	Name         string           `json:"name"`
	Principal    string           `json:"principal"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	Tiers        []presetTierJSON `json:"tiers"`
	InterestType string           `json:"interest_type"`
	ApplyCadence string           `json:"apply_cadence"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Save stores a preset, replacing any existing preset with the same name.
func (r *PresetRepository) Save(ctx context.Context, preset model.Preset) error {
	payload, err := json.Marshal(toJSON(preset))
	if err != nil {
		return fmt.Errorf("marshal preset: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, presetKeyPrefix+preset.Name(), payload, 0)
	pipe.SAdd(ctx, presetIndexKey, preset.Name())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save preset %q: %w", preset.Name(), err)
	}
	return nil
}

// Find retrieves a preset by name.
func (r *PresetRepository) Find(ctx context.Context, name string) (model.Preset, error) {
	payload, err := r.client.Get(ctx, presetKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Preset{}, port.ErrNotFound
		}
		return model.Preset{}, fmt.Errorf("find preset %q: %w", name, err)
	}
	return fromJSON(payload)
}

// List returns all stored presets in index order.
func (r *PresetRepository) List(ctx context.Context) ([]model.Preset, error) {
	names, err := r.client.SMembers(ctx, presetIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	presets := make([]model.Preset, 0, len(names))
	for _, name := range names {
		preset, err := r.Find(ctx, name)
		if err != nil {
			// An index entry whose value expired or was deleted out of
			// band is skipped rather than failing the whole listing.
			if errors.Is(err, port.ErrNotFound) {
				continue
			}
			return nil, err
		}
		presets = append(presets, preset)
	}
	return presets, nil
}

func toJSON(preset model.Preset) presetJSON {
	params := preset.Parameters()

	tiers := make([]presetTierJSON, 0, len(params.Tiers()))
	for _, tier := range params.Tiers() {
		tj := presetTierJSON{Min: tier.Min().String(), Rate: tier.Rate().String()}
		if max, bounded := tier.Max(); bounded {
			tj.Max = max.String()
		}
		tiers = append(tiers, tj)
	}

	return presetJSON{
		Name:         preset.Name(),
		Principal:    params.Principal().String(),
		StartDate:    params.StartDate().Format(time.DateOnly),
		EndDate:      params.EndDate().Format(time.DateOnly),
		Tiers:        tiers,
		InterestType: string(params.InterestType()),
		ApplyCadence: string(params.ApplyCadence()),
		CreatedAt:    preset.CreatedAt(),
	}
}

func fromJSON(payload []byte) (model.Preset, error) {
	var pj presetJSON
	if err := json.Unmarshal(payload, &pj); err != nil {
		return model.Preset{}, fmt.Errorf("unmarshal preset: %w", err)
	}

	principal, err := decimal.NewFromString(pj.Principal)
	if err != nil {
		return model.Preset{}, fmt.Errorf("parse stored principal: %w", err)
	}
	startDate, err := time.Parse(time.DateOnly, pj.StartDate)
	if err != nil {
		return model.Preset{}, fmt.Errorf("parse stored start date: %w", err)
	}
	endDate, err := time.Parse(time.DateOnly, pj.EndDate)
	if err != nil {
		return model.Preset{}, fmt.Errorf("parse stored end date: %w", err)
	}

	tiers := make([]valueobject.InterestTier, 0, len(pj.Tiers))
	for _, tj := range pj.Tiers {
		min, err := decimal.NewFromString(tj.Min)
		if err != nil {
			return model.Preset{}, fmt.Errorf("parse stored tier min: %w", err)
		}
		rate, err := decimal.NewFromString(tj.Rate)
		if err != nil {
			return model.Preset{}, fmt.Errorf("parse stored tier rate: %w", err)
		}
		var max *decimal.Decimal
		if tj.Max != "" {
			parsed, err := decimal.NewFromString(tj.Max)
			if err != nil {
				return model.Preset{}, fmt.Errorf("parse stored tier max: %w", err)
			}
			max = &parsed
		}
		tier, err := valueobject.NewInterestTier(min, max, rate)
		if err != nil {
			return model.Preset{}, fmt.Errorf("rebuild stored tier: %w", err)
		}
		tiers = append(tiers, tier)
	}

	interestType, err := valueobject.ParseInterestType(pj.InterestType)
	if err != nil {
		return model.Preset{}, fmt.Errorf("parse stored interest type: %w", err)
	}
	cadence, err := valueobject.ParseApplyCadence(pj.ApplyCadence)
	if err != nil {
		return model.Preset{}, fmt.Errorf("parse stored cadence: %w", err)
	}

	params, err := model.NewCalculationParameters(principal, startDate, endDate, tiers, interestType, cadence)
	if err != nil {
		return model.Preset{}, fmt.Errorf("rebuild stored parameters: %w", err)
	}

	return model.ReconstructPreset(pj.Name, params, pj.CreatedAt), nil
}
