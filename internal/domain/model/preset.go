package model

import (
	"fmt"
	"time"
)

// Preset is a named, reusable parameter set. Presets let callers store a
// frequently used configuration and run it again later without retyping
// tiers and dates.
type Preset struct {
	name      string
	params    CalculationParameters
	createdAt time.Time
}

// NewPreset creates a named preset from validated parameters.
func NewPreset(name string, params CalculationParameters) (Preset, error) {
	if name == "" {
		return Preset{}, fmt.Errorf("preset name is required")
	}
	return Preset{
		name:      name,
		params:    params,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructPreset recreates a preset from persistence.
func ReconstructPreset(name string, params CalculationParameters, createdAt time.Time) Preset {
	return Preset{name: name, params: params, createdAt: createdAt}
}

// Name returns the preset name.
func (p Preset) Name() string { return p.name }

// Parameters returns the stored parameter set.
func (p Preset) Parameters() CalculationParameters { return p.params }

// CreatedAt returns when the preset was saved.
func (p Preset) CreatedAt() time.Time { return p.createdAt }
