// Package config loads host settings for the editor from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ionut-t/vimcore/core"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Editor    EditorConfig    `toml:"editor" yaml:"editor"`
	Theme     ThemeConfig     `toml:"theme" yaml:"theme"`
	Highlight HighlightConfig `toml:"highlight" yaml:"highlight"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

type EditorConfig struct {
	Content           string `toml:"content" yaml:"content"`
	Placeholder       string `toml:"placeholder" yaml:"placeholder"`
	Width             int    `toml:"width" yaml:"width"`
	MaxHistory        int    `toml:"max_history" yaml:"max_history"`
	GroupedInsertUndo bool   `toml:"grouped_insert_undo" yaml:"grouped_insert_undo"`
	SignalBuffer      int    `toml:"signal_buffer" yaml:"signal_buffer"`
}

// ThemeConfig holds terminal colours, as ANSI numbers or hex strings.
type ThemeConfig struct {
	NormalMode string `toml:"normal_mode" yaml:"normal_mode"`
	InsertMode string `toml:"insert_mode" yaml:"insert_mode"`
	StatusLine string `toml:"status_line" yaml:"status_line"`
	Message    string `toml:"message" yaml:"message"`
}

type HighlightConfig struct {
	// Language is a Chroma lexer name. Empty disables highlighting.
	Language string `toml:"language" yaml:"language"`
	Theme    string `toml:"theme" yaml:"theme"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards it.
	File string `toml:"file" yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			Width:        80,
			MaxHistory:   core.DefaultMaxHistory,
			SignalBuffer: core.DefaultSignalBuffer,
		},
		Theme: ThemeConfig{
			NormalMode: "62",
			InsertMode: "26",
			StatusLine: "236",
			Message:    "34",
		},
		Highlight: HighlightConfig{
			Theme: "catppuccin-mocha",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path on top of the defaults. The format is
// chosen by extension: .toml, .yaml or .yml. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.decode(path, data); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decode(path string, data []byte) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// Validate checks every setting against its allowed range.
func (c *Config) Validate() error {
	if c.Editor.MaxHistory < 0 {
		return fmt.Errorf("%w: editor.max_history must not be negative, got %d", ErrInvalidValue, c.Editor.MaxHistory)
	}
	if c.Editor.SignalBuffer < 0 {
		return fmt.Errorf("%w: editor.signal_buffer must not be negative, got %d", ErrInvalidValue, c.Editor.SignalBuffer)
	}
	if c.Editor.Width < 0 {
		return fmt.Errorf("%w: editor.width must not be negative, got %d", ErrInvalidValue, c.Editor.Width)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	return level, nil
}

// EditorOptions returns the editor options the configuration describes.
func (c *Config) EditorOptions(logger *slog.Logger) []core.Option {
	options := []core.Option{
		core.WithContent(c.Editor.Content),
		core.WithMaxHistory(c.Editor.MaxHistory),
		core.WithSignalBuffer(c.Editor.SignalBuffer),
		core.WithLogger(logger),
	}
	if c.Editor.GroupedInsertUndo {
		options = append(options, core.WithGroupedInsertUndo())
	}
	return options
}
