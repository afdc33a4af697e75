package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, output *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(output.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel string
	}{
		{name: "debug passes everything", level: "debug", wantLevel: "DEBUG"},
		{name: "info drops debug", level: "info", wantLevel: "INFO"},
		{name: "warn drops info", level: "warn", wantLevel: "WARN"},
		{name: "error drops warn", level: "error", wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &bytes.Buffer{}

			log, err := New(&Config{
				Level:      tt.level,
				Format:     "json",
				TimeFormat: time.RFC3339,
				writer:     output,
			})
			require.NoError(t, err)

			log.Debug("resolving wallpaper", slog.Int64("image_id", 42))
			log.Info("resolving wallpaper", slog.Int64("image_id", 42))
			log.Warn("resolving wallpaper", slog.Int64("image_id", 42))
			log.Error("resolving wallpaper", slog.Int64("image_id", 42))

			entries := decodeLines(t, output)
			require.NotEmpty(t, entries)

			first := entries[0]
			assert.Equal(t, tt.wantLevel, first["level"])
			assert.Equal(t, "resolving wallpaper", first["msg"])
			assert.Equal(t, float64(42), first["image_id"]) // JSON numbers are float64
			assert.Contains(t, first, "time")
		})
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	output := &bytes.Buffer{}

	log, err := New(&Config{
		Level:  "info",
		Format: "console",
		writer: output,
	})
	require.NoError(t, err)

	log.Info("page rendered")

	// tint abbreviates levels
	assert.Contains(t, output.String(), "INF")
	assert.Contains(t, output.String(), "page rendered")
}

func TestNew_WithSource(t *testing.T) {
	output := &bytes.Buffer{}

	log, err := New(&Config{
		Level:        "info",
		Format:       "json",
		EnableSource: true,
		writer:       output,
	})
	require.NoError(t, err)

	log.Info("message with source")

	entries := decodeLines(t, output)
	require.Len(t, entries, 1)

	source, ok := entries[0]["source"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, source, "function")
	assert.Contains(t, source, "file")
	assert.Contains(t, source, "line")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")

	log, err := New(&Config{
		Level:  "info",
		Format: "json",
		Output: path,
	})
	require.NoError(t, err)

	log.Info("written to file", slog.String("service", "api"))
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNew_FileOutputUnwritable(t *testing.T) {
	_, err := New(&Config{
		Format: "json",
		Output: filepath.Join(t.TempDir(), "missing", "dir", "api.log"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	require.NotNil(t, log)
	assert.NotNil(t, log.Logger)
	assert.NoError(t, log.Close())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{level: "debug", expected: slog.LevelDebug},
		{level: "info", expected: slog.LevelInfo},
		{level: "warn", expected: slog.LevelWarn},
		{level: "warning", expected: slog.LevelWarn},
		{level: "error", expected: slog.LevelError},
		{level: "DEBUG", expected: slog.LevelInfo}, // case-sensitive
		{level: "invalid", expected: slog.LevelInfo},
		{level: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestLogger_Derived(t *testing.T) {
	output := &bytes.Buffer{}

	log, err := New(&Config{Level: "info", Format: "json", writer: output})
	require.NoError(t, err)

	log.WithGroup("wallpaper").Info("grouped", slog.String("device", "mobile"))
	log.WithAttrs(slog.String("request_id", "req-1")).Info("with attrs")
	log.With(slog.Int("alternatives", 12)).Info("with args")

	entries := decodeLines(t, output)
	require.Len(t, entries, 3)

	group, ok := entries[0]["wallpaper"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "mobile", group["device"])
	assert.Equal(t, "req-1", entries[1]["request_id"])
	assert.Equal(t, float64(12), entries[2]["alternatives"])
}
