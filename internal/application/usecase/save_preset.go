package usecase

import (
	"context"
	"fmt"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/port"
)

// SavePresetUseCase stores a named parameter set for later reuse. The
// parameters are validated exactly like a live calculation request, so a
// stored preset is always runnable.
type SavePresetUseCase struct {
	presets port.PresetRepository
}

func NewSavePresetUseCase(presets port.PresetRepository) *SavePresetUseCase {
	return &SavePresetUseCase{presets: presets}
}

func (uc *SavePresetUseCase) Execute(ctx context.Context, req dto.SavePresetRequest) (dto.PresetResponse, error) {
	params, err := parseParameters(req.Parameters)
	if err != nil {
		return dto.PresetResponse{}, err
	}

	preset, err := model.NewPreset(req.Name, params)
	if err != nil {
		return dto.PresetResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if err := uc.presets.Save(ctx, preset); err != nil {
		return dto.PresetResponse{}, fmt.Errorf("failed to save preset: %w", err)
	}

	return presetToResponse(preset), nil
}
