package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokeranalyzer/internal/analyzer"
	"github.com/lox/pokeranalyzer/internal/config"
	"github.com/lox/pokeranalyzer/internal/display"
	"github.com/lox/pokeranalyzer/internal/fileutil"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"pokeranalyzer.hcl" env:"POKER_CONFIG" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" env:"POKER_LOG_LEVEL" help:"Log level: debug, info, warn, error (overrides config)"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable colored output"`
}

// App carries the resolved configuration into command Run methods.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Analyzer *analyzer.Analyzer
	Color    bool
}

func (g *Globals) newApp() (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger()
	logger.Debug("Loaded configuration", "file", g.Config, "hands", cfg.Analyzer.Hands, "workers", cfg.Analyzer.Workers)

	return &App{
		Config: cfg,
		Logger: logger,
		Analyzer: analyzer.New(analyzer.Options{
			Hands:   cfg.Analyzer.Hands,
			Workers: cfg.Analyzer.Workers,
			Logger:  logger,
			Clock:   quartz.NewReal(),
		}),
		Color: cfg.ColorEnabled() && !g.NoColor,
	}, nil
}

// render writes a report to stdout, or atomically to output when set. Files
// never get color.
func (a *App) render(output string, explain bool, fn func(*display.Reporter)) error {
	if output == "" {
		fn(display.NewReporter(os.Stdout, display.Options{Color: a.Color, Explain: explain}))
		return nil
	}
	err := fileutil.WriteReport(output, func(w io.Writer) error {
		fn(display.NewReporter(w, display.Options{Explain: explain}))
		return nil
	})
	if err != nil {
		return err
	}
	a.Logger.Info("Wrote report", "file", output)
	return nil
}
