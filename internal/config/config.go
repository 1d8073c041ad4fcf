package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDelayMS    = 300
	DefaultStaggerMS  = 50
	DefaultScaleStart = 0.5
	DefaultDebounceMS = 250
	DefaultTileSize   = 64
	DefaultPadding    = 16
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	DefaultFPS        = 30
	DefaultTheme      = "emerald"
	DefaultMessage    = "wise mystical tree"
	DefaultLogFile    = "fadegrid.log"
	DefaultLogLevel   = "info"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Layout  LayoutConfig  `yaml:"layout"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

type TimingConfig struct {
	DelayMS    int     `yaml:"delay_ms"`
	StaggerMS  int     `yaml:"stagger_ms"`
	ScaleStart float64 `yaml:"scale_start"`
	DebounceMS int     `yaml:"debounce_ms"`
}

// LayoutConfig sizes are in pixels; CellWidth and CellHeight give the pixel
// size of one terminal cell.
type LayoutConfig struct {
	TileSize   int `yaml:"tile_size"`
	Padding    int `yaml:"padding"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

type DisplayConfig struct {
	Theme   string `yaml:"theme"`
	Message string `yaml:"message"`
	FPS     int    `yaml:"fps"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func DefaultConfig() *Config {
	return &Config{
		Timing: TimingConfig{
			DelayMS:    DefaultDelayMS,
			StaggerMS:  DefaultStaggerMS,
			ScaleStart: DefaultScaleStart,
			DebounceMS: DefaultDebounceMS,
		},
		Layout: LayoutConfig{
			TileSize:   DefaultTileSize,
			Padding:    DefaultPadding,
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
		},
		Display: DisplayConfig{
			Theme:   DefaultTheme,
			Message: DefaultMessage,
			FPS:     DefaultFPS,
		},
		Log: LogConfig{
			File:       DefaultLogFile,
			Level:      DefaultLogLevel,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Timing.DelayMS < 0:
		return fmt.Errorf("%w: delay_ms must not be negative, got %d", ErrInvalid, c.Timing.DelayMS)
	case c.Timing.StaggerMS < 0:
		return fmt.Errorf("%w: stagger_ms must not be negative, got %d", ErrInvalid, c.Timing.StaggerMS)
	case c.Timing.ScaleStart < 0 || c.Timing.ScaleStart > 1:
		return fmt.Errorf("%w: scale_start must be within [0, 1], got %g", ErrInvalid, c.Timing.ScaleStart)
	case c.Timing.DebounceMS < 0:
		return fmt.Errorf("%w: debounce_ms must not be negative, got %d", ErrInvalid, c.Timing.DebounceMS)
	case c.Layout.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalid, c.Layout.TileSize)
	case c.Layout.Padding <= 0:
		return fmt.Errorf("%w: padding must be positive, got %d", ErrInvalid, c.Layout.Padding)
	case c.Layout.CellWidth <= 0 || c.Layout.CellHeight <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %dx%d", ErrInvalid, c.Layout.CellWidth, c.Layout.CellHeight)
	case c.Display.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Display.FPS)
	}
	return nil
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.Timing.DelayMS) * time.Millisecond
}

func (c *Config) Stagger() time.Duration {
	return time.Duration(c.Timing.StaggerMS) * time.Millisecond
}

func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Timing.DebounceMS) * time.Millisecond
}
