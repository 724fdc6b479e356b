package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages(t *testing.T) {
	t.Run("should stamp the topic and map headers", func(t *testing.T) {
		built := buildMessages("depositcalc.calculation.completed", []Message{
			{
				Key:     []byte("agg-1"),
				Value:   []byte(`{"total_interest":"20000"}`),
				Headers: map[string]string{"event_type": "calculation.completed"},
			},
		})

		require.Len(t, built, 1)
		assert.Equal(t, "depositcalc.calculation.completed", built[0].Topic)
		assert.Equal(t, []byte("agg-1"), built[0].Key)
		assert.Equal(t, []byte(`{"total_interest":"20000"}`), built[0].Value)

		require.Len(t, built[0].Headers, 1)
		assert.Equal(t, "event_type", built[0].Headers[0].Key)
		assert.Equal(t, []byte("calculation.completed"), built[0].Headers[0].Value)
	})

	t.Run("should handle an empty batch", func(t *testing.T) {
		assert.Empty(t, buildMessages("depositcalc.calculation.completed", nil))
	})
}
