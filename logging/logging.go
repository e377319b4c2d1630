// Package logging provides structured logging for the patient
// pipelines: console text output plus a weekly JSON log file.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// weekKey returns the week key in YYYY-Www format (ISO week)
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// logFileName returns the log file name for the week containing t.
func logFileName(t time.Time) string {
	return fmt.Sprintf("app-%s.log", weekKey(t))
}

// ParseLevel maps a config log level string to a slog.Level. Unknown
// values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// cleanupOldLogs removes app-*.log files older than the retention
// period. The pipelines are one-shot binaries, so the sweep runs once
// at setup instead of on a background ticker.
func cleanupOldLogs(logDir string, retention time.Duration) int {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return 0
	}

	cutoff := time.Now().Add(-retention)
	deleted := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "app-") || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(logDir, entry.Name())); err == nil {
				deleted++
			}
		}
	}

	return deleted
}

// SetupLogger configures slog to log to both console and a weekly log
// file under logDir, removing files older than retentionWeeks. If the
// file cannot be opened, logging degrades to console only.
func SetupLogger(logDir string, retentionWeeks int, level slog.Level) *slog.Logger {
	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	if err := os.MkdirAll(logDir, 0755); err != nil {
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to create logs directory", "error", err)
		return consoleLogger
	}

	if deleted := cleanupOldLogs(logDir, time.Duration(retentionWeeks)*7*24*time.Hour); deleted > 0 {
		fmt.Printf("Cleaned up %d old log files\n", deleted)
	}

	logPath := filepath.Join(logDir, logFileName(time.Now()))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to open log file", "path", logPath, "error", err)
		return consoleLogger
	}

	// Console gets text format, file gets JSON format for better parsing
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(&multiHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	})
}

// multiHandler implements slog.Handler to write to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
