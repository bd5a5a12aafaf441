// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured level when set.
const LevelEnv = "LOG_LEVEL"

// ParseLevel resolves the effective level: LOG_LEVEL first, then the
// configured value, then info.
func ParseLevel(configured string) (log.Level, error) {
	level := os.Getenv(LevelEnv)
	if level == "" {
		level = configured
	}
	if level == "" {
		return log.InfoLevel, nil
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Setup points the standard logger at path. The returned closer releases the
// file. An empty path discards output.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
