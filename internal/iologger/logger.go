// Package iologger sets up the default slog logger of opendata.
// Every record carries the application name and version, so lines from
// several runs appended to one file can be told apart.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	opendata "github.com/gnames/opendata/pkg"
	"github.com/gnames/opendata/pkg/config"
)

// LogFile is the name of the log file created in the log directory.
const LogFile = "opendata.log"

// Init replaces the default slog logger.
// With the "file" destination the log goes to logDir/opendata.log, which
// is appended to when append is true and truncated otherwise.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	w, err := logWriter(logDir, cfg.Destination, append)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With(
		"app", config.AppName,
		"version", opendata.Version,
	)
	slog.SetDefault(logger)
	return nil
}

func logWriter(logDir, dest string, append bool) (io.Writer, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil
	case "file":
		path := filepath.Join(logDir, LogFile)
		flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(path, flag, 0644)
		if err != nil {
			return nil, CreateLogFileError(path, err)
		}
		return f, nil
	default:
		return os.Stderr, nil
	}
}

func parseLevel(level string) slog.Level {
	switch level {
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
