package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/logger"
)

func TestSlogLoggerAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithOptions(&buf, "debug", "json").Logger)

	adapter.Info("Weather resolved", ports.F("city", "London"), ports.F("cached", true))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Weather resolved", entry["msg"])
	assert.Equal(t, "London", entry["city"])
	assert.Equal(t, true, entry["cached"])
}

func TestSlogLoggerAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithOptions(&buf, "warn", "text").Logger)

	adapter.Debug("hidden")
	adapter.Info("hidden")
	adapter.Warn("shown", ports.F("key", "value"))
	adapter.Error("also shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
	assert.Contains(t, output, "key=value")
	assert.Equal(t, 2, strings.Count(output, "\n"))
}

func TestNewSlogLoggerAdapter_DefaultsToSlogDefault(t *testing.T) {
	adapter := NewSlogLoggerAdapter(nil)
	assert.Equal(t, slog.Default(), adapter.logger)
}

func TestTeeLogger(t *testing.T) {
	var first, second bytes.Buffer
	tee := TeeLogger{
		NewSlogLoggerAdapter(logger.NewWithOptions(&first, "debug", "text").Logger),
		NewSlogLoggerAdapter(logger.NewWithOptions(&second, "debug", "text").Logger),
	}

	tee.Warn("provider slow", ports.F("provider", "openweathermap"))

	assert.Contains(t, first.String(), "provider slow")
	assert.Contains(t, second.String(), "provider=openweathermap")
}
