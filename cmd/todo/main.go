package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/tasklist/internal/cli"
	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/logging"
	"github.com/idilsaglam/tasklist/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file path")
	theme := flag.String("theme", "", "classic | neon | mono")
	groupPending := flag.Bool("group", false, "group script listings by pending/done")
	logLevel := flag.String("log-level", "", "debug | info | warn | error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		return 1
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *groupPending {
		cfg.Group = true
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		return 2
	}
	ui.SetTheme(cfg.Theme)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		return 2
	}

	// The interactive screen owns the terminal, so it only logs to a file.
	var sink io.Writer = os.Stderr
	if args[0] == "ui" || args[0] == "ls" {
		sink = io.Discard
	}
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			ui.Fail(os.Stderr, err.Error())
			return 1
		}
		defer f.Close()
		sink = f
	}
	logger, err := logging.New(sink, cfg.LogLevel)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := cli.Run(ctx, args, cli.Options{
		Group:  cfg.Group,
		Config: cfg,
		Logger: logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
