package grpc

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/platform/events"
)

type memoryHistory struct {
	records map[uuid.UUID]model.CalculationRecord
	order   []uuid.UUID
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{records: make(map[uuid.UUID]model.CalculationRecord)}
}

func (m *memoryHistory) Save(_ context.Context, record model.CalculationRecord) error {
	m.records[record.ID()] = record
	m.order = append(m.order, record.ID())
	return nil
}

func (m *memoryHistory) FindByID(_ context.Context, id uuid.UUID) (model.CalculationRecord, error) {
	record, ok := m.records[id]
	if !ok {
		return model.CalculationRecord{}, port.ErrNotFound
	}
	return record, nil
}

func (m *memoryHistory) List(_ context.Context, limit, offset int) ([]model.CalculationRecord, error) {
	var all []model.CalculationRecord
	for i := len(m.order) - 1; i >= 0; i-- {
		all = append(all, m.records[m.order[i]])
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type memoryPresets struct {
	presets map[string]model.Preset
}

func newMemoryPresets() *memoryPresets {
	return &memoryPresets{presets: make(map[string]model.Preset)}
}

func (m *memoryPresets) Save(_ context.Context, preset model.Preset) error {
	m.presets[preset.Name()] = preset
	return nil
}

func (m *memoryPresets) Find(_ context.Context, name string) (model.Preset, error) {
	preset, ok := m.presets[name]
	if !ok {
		return model.Preset{}, port.ErrNotFound
	}
	return preset, nil
}

func (m *memoryPresets) List(_ context.Context) ([]model.Preset, error) {
	all := make([]model.Preset, 0, len(m.presets))
	for _, preset := range m.presets {
		all = append(all, preset)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, ...events.DomainEvent) error {
	return nil
}
