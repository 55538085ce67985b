package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, func(string) string { return "" })

	logger.Debug("hidden detail")
	logger.Info("hidden info")
	logger.Warn("visible warning", "key", "value")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "visible warning")
	require.Contains(t, out, "key=value")
}

func TestNewDebugFromEnv(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, func(key string) string {
		if key == EnvDebug {
			return "1"
		}
		return ""
	})

	logger.Debug("debug detail")
	require.Contains(t, buf.String(), "debug detail")
}

func TestNewNoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, nil).Error("plain")
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestOrDiscard(t *testing.T) {
	require.NotNil(t, OrDiscard(nil))
	logger := Discard()
	require.Same(t, logger, OrDiscard(logger))
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
