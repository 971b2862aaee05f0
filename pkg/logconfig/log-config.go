package logconfig

import (
	"fmt"
	"log/slog"
	"os"
)

const TraceLogLevel = slog.Level(-8)

// New builds a slog.Logger writing to stdout. format is "json" or "text",
// level is one of trace, debug, info, warn, error.
func New(level, format string) (*slog.Logger, error) {
	logLevel, err := getLogLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return slog.New(handler), nil
}

// ConfigLogs configures the process-wide default logger.
func ConfigLogs(level, format string) error {
	logger, err := New(level, format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func getLogLevel(level string) (slog.Leveler, error) {
	switch level {
	case "trace":
		return TraceLogLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return nil, fmt.Errorf("invalid log level %q", level)
	}
}
