package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the zerolog logger described by the log settings. The
// terminal belongs to the UI, so logs go to a file or nowhere. The returned
// closer releases the file.
func (c *Config) NewLogger() (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level: %w", err)
	}
	if c.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	if c.Log.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, f, nil
}
