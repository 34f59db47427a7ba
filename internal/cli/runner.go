package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/tui"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group  bool // list grouped by pending/done
	Config config.Config
	Logger *log.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Config == (config.Config{}) {
		o.Config = config.Default()
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ui", "ls":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: todo ui")
			return 2
		}
		return doUI(ctx, opt)

	case "run":
		if len(a) > 1 {
			ui.Fail(opt.Stderr, "usage: todo run [file]")
			return 2
		}
		path := "-"
		if len(a) == 1 {
			path = a[0]
		}
		return doRun(path, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny to-do screen (tasks live until you quit)

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ui                 Interactive screen (alias: ls)
  run [file]         Run a task script from file or stdin ("-")
  help               Show this help

Flags:
  -config <path>     Config file (default ~/.config/todo/config.toml)
  -theme <name>      classic | neon | mono
  -group             Group script listings by pending/done
  -log-level <lvl>   debug | info | warn | error

Script commands:
  add <title...>         Add a task
  done <index>           Toggle done for the task at 1-based index
  edit <index> [title]   Rename the task at index (empty title allowed)
  rm <index>             Remove the task at index; next line answers y/n
  ls                     Show the list
  export <fmt> <path>    Write the list as json, csv or pdf
  quit                   Stop reading

Examples:
  todo ui
  printf 'add Buy milk\ndone 1\nls\n' | todo run
`)
}

// -------------- subcommand impls ----------------

func doUI(ctx context.Context, opt Options) int {
	err := tui.Run(ctx, tui.Options{
		AltScreen:  opt.Config.AltScreen,
		CharLimit:  opt.Config.CharLimit,
		ExportPath: opt.Config.ExportPath,
		Logger:     opt.Logger,
	})
	if err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doRun(path string, opt Options) int {
	in := opt.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			ui.Fail(opt.Stderr, "open: "+err.Error())
			return 1
		}
		defer f.Close()
		in = f
	}
	return runScript(in, opt)
}
