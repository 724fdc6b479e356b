package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/event"
	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/domain/service"
)

// TopicCalculationCompleted is the broker topic for completed calculations.
const TopicCalculationCompleted = "depositcalc.calculation.completed"

// RunCalculationUseCase validates a request, runs the engine, persists the
// record, and publishes a completion event.
type RunCalculationUseCase struct {
	engine    *service.CalculationEngine
	history   port.CalculationHistoryRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

func NewRunCalculationUseCase(
	engine *service.CalculationEngine,
	history port.CalculationHistoryRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RunCalculationUseCase {
	return &RunCalculationUseCase{
		engine:    engine,
		history:   history,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *RunCalculationUseCase) Execute(ctx context.Context, req dto.CalculateRequest) (dto.CalculationResponse, error) {
	params, err := parseParameters(req)
	if err != nil {
		return dto.CalculationResponse{}, err
	}

	result, err := uc.engine.Calculate(params)
	if err != nil {
		return dto.CalculationResponse{}, fmt.Errorf("failed to calculate interest: %w", err)
	}

	record := model.NewCalculationRecord(params, result)
	if err := uc.history.Save(ctx, record); err != nil {
		return dto.CalculationResponse{}, fmt.Errorf("failed to save calculation: %w", err)
	}

	completed := event.NewCalculationCompleted(
		record.ID(),
		params.Principal(),
		result.TotalInterest(),
		result.FinalAmount(),
		result.TotalDays(),
		params.StartDate(),
		params.EndDate(),
	)
	if err := uc.publisher.Publish(ctx, TopicCalculationCompleted, completed); err != nil {
		// The record is already durable; a broker hiccup must not fail
		// the caller's calculation.
		uc.logger.Warn("failed to publish calculation completed event",
			"calculation_id", record.ID(),
			"error", err,
		)
	}

	resp := recordToResponse(record)
	if req.IncludeDailyBreakdown {
		resp.DailyBreakdown = dailyBreakdownToDTO(record, uc.engine.DecimalContext())
	}
	return resp, nil
}
