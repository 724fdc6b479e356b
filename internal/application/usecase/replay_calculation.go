package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/domain/service"
)

// ReplayCalculationUseCase re-runs a stored calculation's parameters
// through the engine. The fresh result is returned but not persisted;
// the engine is deterministic, so replay doubles as an integrity check
// against the stored record.
type ReplayCalculationUseCase struct {
	engine  *service.CalculationEngine
	history port.CalculationHistoryRepository
}

func NewReplayCalculationUseCase(
	engine *service.CalculationEngine,
	history port.CalculationHistoryRepository,
) *ReplayCalculationUseCase {
	return &ReplayCalculationUseCase{engine: engine, history: history}
}

func (uc *ReplayCalculationUseCase) Execute(ctx context.Context, id string, includeDaily bool) (dto.CalculationResponse, error) {
	calculationID, err := uuid.Parse(id)
	if err != nil {
		return dto.CalculationResponse{}, fmt.Errorf("%w: calculation id %q", ErrInvalidRequest, id)
	}

	stored, err := uc.history.FindByID(ctx, calculationID)
	if err != nil {
		return dto.CalculationResponse{}, fmt.Errorf("failed to find calculation: %w", err)
	}

	result, err := uc.engine.Calculate(stored.Parameters())
	if err != nil {
		return dto.CalculationResponse{}, fmt.Errorf("failed to replay calculation: %w", err)
	}

	replayed := model.ReconstructCalculationRecord(stored.ID(), stored.Parameters(), result, stored.CreatedAt())
	resp := recordToResponse(replayed)
	if includeDaily {
		resp.DailyBreakdown = dailyBreakdownToDTO(replayed, uc.engine.DecimalContext())
	}
	return resp, nil
}
