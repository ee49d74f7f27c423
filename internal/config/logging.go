package config

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation limits.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// NewLogger builds the application logger. Logs go to the rotating LogFile when
// configured, else to stderr. Debug enables debug level; otherwise only
// warnings and errors are written.
func (c *Config) NewLogger(stderr io.Writer) (*slog.Logger, io.Closer) {
	level := slog.LevelWarn
	if c.Debug {
		level = slog.LevelDebug
	}

	var (
		w                = stderr
		closer io.Closer = nopCloser{}
	)
	if c.Settings.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   c.Settings.LogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		w, closer = lj, lj
		level = min(level, slog.LevelInfo)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
