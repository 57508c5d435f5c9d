/*
PURPOSE:
  Provides a structured logger for syn.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - stdout carries only the result line.

  Implementation-discovered:
  - Logs go to stderr; default level is warn so a normal run prints nothing else.
  - Level and format come from config (log.level, log.format).

ARCHITECTURE INTEGRATION:
  - Used everywhere.
  - Configured by: internal/cli (after config load)

ERROR HANDLING:
  - Unknown levels fall back to info.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Setup(cfg.Log)
  output.Logger.Info("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - If log lines show up in captured output, check nothing writes to os.Stdout.

RELATED FILES:
  - internal/config/config.go

MAINTENANCE:
  - None.
*/

package output

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/daryltucker/syn/internal/config"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// Setup installs a logger built from cfg, writing to stderr.
func Setup(cfg config.LogConfig) {
	SetLogger(NewLogger(cfg, os.Stderr))
}

// NewLogger creates a *slog.Logger from cfg.
// Format "json" produces JSON lines; anything else produces text.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
