// Package logging builds the process logger. The terminal belongs to the
// UI, so log output goes to a rotated file.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/san-kum/fadegrid/internal/config"
)

// New returns a logger writing to cfg.File, or discarding output when no
// file is set. Close the returned closer on exit.
func New(cfg config.LogConfig) (*logrus.Logger, io.Closer, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}

	out := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	log.SetOutput(out)
	return log, out, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
