package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/itwt/space-battle/config"
)

// rotateTimeFormat names rotated files, e.g. space-battle-20261019-153000.log
const rotateTimeFormat = "20060102-150405"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds the process logger
// The terminal backend owns stdout, so logs only ever go to a file
// Logging is disabled unless cfg.Enabled or debug is set; debug forces debug level
func Setup(cfg config.LogConfig, debug bool) (zerolog.Logger, io.Closer, error) {
	if !cfg.Enabled && !debug {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level := ParseLevel(cfg.Level)
	if debug {
		level = zerolog.DebugLevel
	}

	if cfg.Dir == "" || cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, errors.New("log dir and file must not be empty")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, cfg.File)
	if err := rotate(path, int64(cfg.MaxSizeMB)<<20); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("rotating log file: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("opening log file: %w", err)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, f, nil
}

// ParseLevel converts a config level name, defaulting to info
func ParseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// rotate renames path to a timestamped sibling when it exceeds maxSize bytes
func rotate(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if maxSize <= 0 || info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format(rotateTimeFormat), ext)
	return os.Rename(path, rotated)
}
