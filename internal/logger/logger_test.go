package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"listingadmin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)

	log.Info("listing %d approved", 2)
	log.Warning("slow request: %s", "/dashboard")
	log.Error("db down: %v", "timeout")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="listing 2 approved"`)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="db down: timeout"`)
}

func TestLogger_WithAddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("request_id", "abc", "path", "/api/listings").Info("handled")

	out := buf.String()
	assert.Contains(t, out, "request_id=abc")
	assert.Contains(t, out, "path=/api/listings")
	assert.Contains(t, out, "msg=handled")
}

func TestNewLogger_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := NewLogger(&config.Config{LogDirectory: dir, LogLevel: "info"})
	require.NoError(t, err)

	log.Info("hello %s", "file")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello file"`)
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLogger(&config.Config{LogDirectory: dir, LogLevel: "error"})
	require.NoError(t, err)

	log.Info("dropped")
	log.Error("kept")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("whatever"))
}
