package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWithOptions_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOptions(&buf, "warn", "json")

	l.Info("dropped")
	l.Warn("kept", "city", "Oslo")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "Oslo", entry["city"])
}

func TestNewWithOptions_Text(t *testing.T) {
	var buf bytes.Buffer
	NewWithOptions(&buf, "info", "text").Info("hello", "units", "metric")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "units=metric")
}
