package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/platform/events"
)

// ErrNotFound is returned by repositories when the requested record does
// not exist.
var ErrNotFound = errors.New("not found")

// CalculationHistoryRepository defines persistence for completed
// calculation records. The engine never touches it; only the application
// layer does.
type CalculationHistoryRepository interface {
	// Save persists a calculation record.
	Save(ctx context.Context, record model.CalculationRecord) error
	// FindByID retrieves a record by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (model.CalculationRecord, error)
	// List returns recent records in reverse chronological order.
	List(ctx context.Context, limit, offset int) ([]model.CalculationRecord, error)
}

// PresetRepository defines persistence for named parameter presets.
type PresetRepository interface {
	// Save stores a preset, replacing any preset with the same name.
	Save(ctx context.Context, preset model.Preset) error
	// Find retrieves a preset by name.
	Find(ctx context.Context, name string) (model.Preset, error)
	// List returns all stored presets.
	List(ctx context.Context) ([]model.Preset, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}
