package usecase

import (
	"context"
	"fmt"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/port"
)

// ListPresetsUseCase returns all stored presets.
type ListPresetsUseCase struct {
	presets port.PresetRepository
}

func NewListPresetsUseCase(presets port.PresetRepository) *ListPresetsUseCase {
	return &ListPresetsUseCase{presets: presets}
}

func (uc *ListPresetsUseCase) Execute(ctx context.Context) ([]dto.PresetResponse, error) {
	presets, err := uc.presets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	responses := make([]dto.PresetResponse, 0, len(presets))
	for _, preset := range presets {
		responses = append(responses, presetToResponse(preset))
	}
	return responses, nil
}
