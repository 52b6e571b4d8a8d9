package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	editor "github.com/ionut-t/vimcore/adapter-bubbletea"
	tcelladapter "github.com/ionut-t/vimcore/adapter-tcell"
	"github.com/ionut-t/vimcore/config"
	"github.com/ionut-t/vimcore/core"
	"github.com/jessevdk/go-flags"
)

type Options struct {
	Config   string `long:"config" short:"c" description:"Path to a TOML or YAML config file"`
	Backend  string `long:"backend" choice:"bubbletea" choice:"tcell" default:"bubbletea" description:"Terminal backend"`
	Content  string `long:"content" description:"Initial text"`
	Language string `long:"language" description:"Chroma lexer used for highlighting (bubbletea backend)"`
	LogLevel string `long:"log-level" description:"Log level: debug, info, warn or error"`
	LogFile  string `long:"log-file" description:"Append logs to this file"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var content string
	switch opts.Backend {
	case "tcell":
		content, err = runTcell(cfg, logger)
	default:
		content, err = runBubbletea(cfg, logger)
	}
	if err != nil {
		logger.Error("editor stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	fmt.Println(content)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}

	if opts.Content != "" {
		cfg.Editor.Content = opts.Content
	}
	if opts.Language != "" {
		cfg.Highlight.Language = opts.Language
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}

	return cfg, cfg.Validate()
}

// newLogger returns a text logger writing to the configured file. The
// terminal belongs to the editor, so without a file logs are discarded.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	}))

	return logger, func() { _ = f.Close() }, nil
}

func runBubbletea(cfg *config.Config, logger *slog.Logger) (string, error) {
	m := editor.New(cfg.EditorOptions(logger)...)
	m.SetWidth(cfg.Editor.Width)
	m.SetPlaceholder(cfg.Editor.Placeholder)
	m.SetLanguage(cfg.Highlight.Language, cfg.Highlight.Theme)
	m.WithTheme(themeFromConfig(cfg.Theme))
	m.SetCursorMode(cursor.CursorBlink)
	m.Focus()

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}

	model, ok := final.(editor.Model)
	if !ok {
		return "", errors.New("unexpected model type")
	}
	return model.Content(), nil
}

func themeFromConfig(tc config.ThemeConfig) editor.Theme {
	theme := editor.DefaultTheme
	theme.NormalModeStyle = theme.NormalModeStyle.Background(lipgloss.Color(tc.NormalMode))
	theme.InsertModeStyle = theme.InsertModeStyle.Background(lipgloss.Color(tc.InsertMode))
	theme.StatusLineStyle = theme.StatusLineStyle.Background(lipgloss.Color(tc.StatusLine))
	theme.MessageStyle = theme.MessageStyle.Foreground(lipgloss.Color(tc.Message))
	return theme
}

func runTcell(cfg *config.Config, logger *slog.Logger) (string, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return "", fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return "", fmt.Errorf("initializing screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ed := core.New(cfg.EditorOptions(logger)...)
	err = tcelladapter.Run(ctx, screen, ed)
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		return "", err
	}
	return ed.Content(), nil
}
