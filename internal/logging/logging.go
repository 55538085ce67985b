// Package logging builds the slog logger used for diagnostics.
// User-facing progress and results are printed by the commands themselves.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/conn-castle/cabm/internal/terminal"
)

// EnvDebug enables debug-level logs when set to a non-empty value.
const EnvDebug = "CABM_DEBUG"

// NewTerminalHandler returns a tint handler writing to w.
// Colour is enabled only when w is a terminal.
func NewTerminalHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !terminal.IsTerminal(w),
	})
}

// New returns a logger on w. Warnings and errors are always shown;
// debug output requires CABM_DEBUG.
func New(w io.Writer, getenv func(string) string) *slog.Logger {
	level := slog.LevelWarn
	if getenv != nil && strings.TrimSpace(getenv(EnvDebug)) != "" {
		level = slog.LevelDebug
	}
	return slog.New(NewTerminalHandler(w, level))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
