package usecase

import (
	"context"
	"fmt"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/port"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ListHistoryUseCase pages through stored calculations, newest first.
type ListHistoryUseCase struct {
	history port.CalculationHistoryRepository
}

func NewListHistoryUseCase(history port.CalculationHistoryRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{history: history}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, req dto.ListHistoryRequest) ([]dto.HistorySummary, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	records, err := uc.history.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}

	summaries := make([]dto.HistorySummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, recordToSummary(record))
	}
	return summaries, nil
}
