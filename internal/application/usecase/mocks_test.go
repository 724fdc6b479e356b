package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/platform/events"
)

func listRequest(limit, offset int) dto.ListHistoryRequest {
	return dto.ListHistoryRequest{Limit: limit, Offset: offset}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockHistoryRepo struct {
	records map[uuid.UUID]model.CalculationRecord
	saved   []model.CalculationRecord
	saveErr error
	findErr error
	listErr error
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{records: make(map[uuid.UUID]model.CalculationRecord)}
}

func (m *mockHistoryRepo) Save(_ context.Context, record model.CalculationRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[record.ID()] = record
	m.saved = append(m.saved, record)
	return nil
}

func (m *mockHistoryRepo) FindByID(_ context.Context, id uuid.UUID) (model.CalculationRecord, error) {
	if m.findErr != nil {
		return model.CalculationRecord{}, m.findErr
	}
	record, ok := m.records[id]
	if !ok {
		return model.CalculationRecord{}, port.ErrNotFound
	}
	return record, nil
}

func (m *mockHistoryRepo) List(_ context.Context, limit, offset int) ([]model.CalculationRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	all := make([]model.CalculationRecord, 0, len(m.records))
	for _, record := range m.records {
		all = append(all, record)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt().After(all[j].CreatedAt()) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type mockPresetRepo struct {
	presets map[string]model.Preset
	saveErr error
	listErr error
}

func newMockPresetRepo() *mockPresetRepo {
	return &mockPresetRepo{presets: make(map[string]model.Preset)}
}

func (m *mockPresetRepo) Save(_ context.Context, preset model.Preset) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.presets[preset.Name()] = preset
	return nil
}

func (m *mockPresetRepo) Find(_ context.Context, name string) (model.Preset, error) {
	preset, ok := m.presets[name]
	if !ok {
		return model.Preset{}, port.ErrNotFound
	}
	return preset, nil
}

func (m *mockPresetRepo) List(_ context.Context) ([]model.Preset, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	all := make([]model.Preset, 0, len(m.presets))
	for _, preset := range m.presets {
		all = append(all, preset)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all, nil
}

type mockPublisher struct {
	topics    []string
	published []events.DomainEvent
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, topic string, evts ...events.DomainEvent) error {
	if m.err != nil {
		return m.err
	}
	m.topics = append(m.topics, topic)
	m.published = append(m.published, evts...)
	return nil
}
