package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/khalid-nowaf/wordtrie/pkg/cli"
	"github.com/khalid-nowaf/wordtrie/pkg/logging"
)

func main() {
	var app cli.CLI
	ctx := kong.Parse(&app, cli.Options()...)

	logger, err := logging.Setup(app.LogLevel)
	ctx.FatalIfErrorf(err)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = ctx.Run(&cli.Context{Globals: &app.Globals, Ctx: runCtx, Logger: logger, Stdout: os.Stdout})
	ctx.FatalIfErrorf(err)
}
