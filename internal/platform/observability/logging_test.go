package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug level", input: "debug", expected: slog.LevelDebug},
		{name: "info level", input: "info", expected: slog.LevelInfo},
		{name: "warn level", input: "warn", expected: slog.LevelWarn},
		{name: "warning level", input: "warning", expected: slog.LevelWarn},
		{name: "error level", input: "error", expected: slog.LevelError},
		{name: "uppercase DEBUG", input: "DEBUG", expected: slog.LevelDebug},
		{name: "empty string defaults to info", input: "", expected: slog.LevelInfo},
		{name: "unknown level defaults to info", input: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Run("should emit JSON records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(newHandler(&buf, LogConfig{Level: "info", Format: "json"}))

		logger.Info("calculation stored", "total_days", 366)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "calculation stored", record["msg"])
		assert.Equal(t, float64(366), record["total_days"])
	})

	t.Run("should emit text records by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(newHandler(&buf, LogConfig{Level: "info", Format: ""}))

		logger.Info("calculation stored")
		assert.Contains(t, buf.String(), "msg=\"calculation stored\"")
	})

	t.Run("should gate records below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(newHandler(&buf, LogConfig{Level: "warn", Format: "text"}))

		logger.Info("suppressed")
		assert.Empty(t, buf.String())

		logger.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("should record source locations at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(newHandler(&buf, LogConfig{Level: "debug", Format: "json"}))

		logger.Debug("traced")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Contains(t, record, "source")
	})
}

func TestNewLoggerSetsDefault(t *testing.T) {
	logger := NewLogger(LogConfig{Level: "info", Format: "json"})

	require.NotNil(t, logger)
	assert.Same(t, logger.Handler(), slog.Default().Handler())
}
