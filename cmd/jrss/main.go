// Command jrss is a terminal RSS reader.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/tesso57/jrss/internal/domain/reading"
	"github.com/tesso57/jrss/internal/domain/subscription"
	"github.com/tesso57/jrss/internal/infrastructure/config"
)

// CLI is the command line of jrss.
type CLI struct {
	Config string `help:"Config file path." type:"path" env:"JRSS_CONFIG"`

	TUI     tuiCmd     `cmd:"" name:"tui" default:"withargs" help:"Run the terminal reader."`
	Fetch   fetchCmd   `cmd:"" help:"Fetch one feed and print it."`
	Journal journalCmd `cmd:"" help:"Show recent fetch attempts."`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "jrss: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("jrss"),
		kong.Description("Read RSS feeds in the terminal."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	return kctx.Run(&app{
		settings: store.Settings,
		stdout:   stdout,
		stderr:   stderr,
	})
}

// exitCode distinguishes the failure classes of a fetch.
func exitCode(err error) int {
	switch {
	case errors.Is(err, reading.ErrNetwork):
		return 2
	case errors.Is(err, reading.ErrParse):
		return 3
	case errors.Is(err, subscription.ErrIndex):
		return 4
	default:
		return 1
	}
}
