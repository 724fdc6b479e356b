package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

// GetCalculationUseCase fetches a single stored calculation with its full
// breakdown, optionally expanded to the day-by-day view.
type GetCalculationUseCase struct {
	history port.CalculationHistoryRepository
	dctx    valueobject.DecimalContext
}

func NewGetCalculationUseCase(history port.CalculationHistoryRepository, dctx valueobject.DecimalContext) *GetCalculationUseCase {
	return &GetCalculationUseCase{history: history, dctx: dctx}
}

func (uc *GetCalculationUseCase) Execute(ctx context.Context, id string, includeDaily bool) (dto.CalculationResponse, error) {
	calculationID, err := uuid.Parse(id)
	if err != nil {
		return dto.CalculationResponse{}, fmt.Errorf("%w: calculation id %q", ErrInvalidRequest, id)
	}

	record, err := uc.history.FindByID(ctx, calculationID)
	if err != nil {
		return dto.CalculationResponse{}, fmt.Errorf("failed to find calculation: %w", err)
	}

	resp := recordToResponse(record)
	if includeDaily {
		resp.DailyBreakdown = dailyBreakdownToDTO(record, uc.dctx)
	}
	return resp, nil
}
