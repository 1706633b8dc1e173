package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Deal    DealCmd          `cmd:"" default:"withargs" help:"Shuffle a deck, deal hands and rank them (default)"`
	File    FileCmd          `cmd:"" help:"Rank pre-dealt hands read from a file"`
	Serve   ServeCmd         `cmd:"" help:"Serve hand ranking over HTTP and WebSocket"`
}

func main() {
	// Values from a local .env file feed the env tags below.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokeranalyzer"),
		kong.Description("Classify five card poker hands and rank them into winning order"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := cli.Globals.newApp()
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
