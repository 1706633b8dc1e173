package main

import (
	"github.com/lox/pokeranalyzer/internal/display"
	"github.com/lox/pokeranalyzer/internal/server"
)

// DealCmd deals hands from a freshly shuffled deck.
type DealCmd struct {
	Seed    int64  `env:"POKER_SEED" help:"Shuffle seed (0 = from config, then clock)"`
	Explain bool   `help:"Explain each step of the winning order"`
	Output  string `short:"o" help:"Write the report to this file instead of stdout"`
}

func (cmd *DealCmd) Run(app *App) error {
	seed := cmd.Seed
	if seed == 0 {
		seed = app.Config.Analyzer.Seed
	}

	ctx := setupSignalHandler(app.Logger)
	round, err := app.Analyzer.RandomRound(ctx, seed)
	if err != nil {
		return err
	}
	app.Logger.Debug("Dealt round", "seed", round.Seed)

	return app.render(cmd.Output, cmd.Explain, func(r *display.Reporter) {
		r.RandomRound(round)
	})
}

// FileCmd ranks hands read from a file, one hand per line.
type FileCmd struct {
	Path    string `arg:"" name:"path" help:"File of comma separated hands, e.g. 10H, JH, QH, KH, AH"`
	Explain bool   `help:"Explain each step of the winning order"`
	Output  string `short:"o" help:"Write the report to this file instead of stdout"`
}

func (cmd *FileCmd) Run(app *App) error {
	ctx := setupSignalHandler(app.Logger)

	round, err := app.Analyzer.FileRound(ctx, cmd.Path)
	if err != nil {
		if renderErr := app.render(cmd.Output, false, func(r *display.Reporter) {
			r.FileError(cmd.Path, err)
		}); renderErr != nil {
			app.Logger.Error("Failed to write report", "error", renderErr)
		}
		return err
	}

	return app.render(cmd.Output, cmd.Explain, func(r *display.Reporter) {
		r.FileRound(cmd.Path, round)
	})
}

// ServeCmd runs the ranking service.
type ServeCmd struct {
	Addr string `short:"a" help:"Address to listen on (overrides config)"`
}

func (cmd *ServeCmd) Run(app *App) error {
	addr := cmd.Addr
	if addr == "" {
		addr = app.Config.ServerAddress()
	}

	ctx := setupSignalHandler(app.Logger)
	return server.NewServer(addr, app.Analyzer, app.Logger).Start(ctx)
}
