package event_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tierbank/depositcalc/internal/domain/event"
)

func TestNewCalculationCompleted(t *testing.T) {
	calculationID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	evt := event.NewCalculationCompleted(
		calculationID,
		decimal.RequireFromString("1000000"),
		decimal.RequireFromString("20000"),
		decimal.RequireFromString("1020000"),
		366,
		start, end,
	)

	t.Run("should expose broker routing metadata", func(t *testing.T) {
		assert.NotEqual(t, uuid.Nil, evt.EventID())
		assert.Equal(t, event.TypeCalculationCompleted, evt.EventType())
		assert.Equal(t, calculationID, evt.AggregateID())
		assert.WithinDuration(t, time.Now().UTC(), evt.OccurredAt(), time.Minute)
	})

	t.Run("should serialize the full body", func(t *testing.T) {
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(evt.Payload(), &decoded))

		assert.Equal(t, calculationID.String(), decoded["calculation_id"])
		assert.Equal(t, "1000000", decoded["principal"])
		assert.Equal(t, "20000", decoded["total_interest"])
		assert.Equal(t, "1020000", decoded["final_amount"])
		assert.Equal(t, float64(366), decoded["total_days"])
	})

	t.Run("should assign a fresh id per event", func(t *testing.T) {
		other := event.NewCalculationCompleted(
			calculationID,
			decimal.RequireFromString("1000000"),
			decimal.RequireFromString("20000"),
			decimal.RequireFromString("1020000"),
			366,
			start, end,
		)
		assert.NotEqual(t, evt.EventID(), other.EventID())
	})
}
