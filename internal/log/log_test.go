package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelscutari/fspath/internal/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"TRACE":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"fatal":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, log.GetLevel(in), in)
	}
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "logfmt", "json", ""} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h, err := log.CreateHandler(&buf, "warn", format)
			require.NoError(t, err)

			assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
			assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))

			slog.New(h).Warn("removal failed", "path", "/tmp/x")
			assert.Contains(t, buf.String(), "removal failed")
			assert.Contains(t, buf.String(), "/tmp/x")
		})
	}

	_, err := log.CreateHandler(&bytes.Buffer{}, "info", "yaml")
	require.Error(t, err)
}
