// Package cmd wires up the CLI flags, resolves the server/client choice
// and runs the selected mode.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"hellotcp/config"
	"hellotcp/internal/core"
	herrors "hellotcp/internal/errors"
	"hellotcp/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X hellotcp/cmd.version=2.0.0"
var version = "0.1.0" //nolint:gochecknoglobals

// Execute parses args and runs the selected hellotcp mode against the
// process's standard streams.
func Execute(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdin, os.Stdout)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg := config.Default()

	fs := flag.NewFlagSet("hellotcp", flag.ContinueOnError)

	var modeFlag string
	fs.StringVarP(&modeFlag, "mode", "m", "", "Skip the prompt: 1|server or 2|client")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, `Also log to this file ("" disables)`)
	var extraVerbose int
	fs.CountVarP(&extraVerbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}
	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "hellotcp %s\n", version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v (use --help for usage)", fs.Args())
	}

	cfg.Verbose += extraVerbose

	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── logging ──────────────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stdout)
	if cfg.LogFile != "" {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer f.Close()
	}

	// ── mode ─────────────────────────────────────────────────────
	in := bufio.NewReader(stdin)
	m, err := core.ChooseMode(ctx, modeFlag, in, logger)
	switch {
	case herrors.Is(err, herrors.ErrInvalidSelection):
		return nil
	case err != nil && ctx.Err() != nil:
		return nil
	case err != nil:
		return err
	}
	cfg.Mode = m

	switch cfg.Mode {
	case config.ModeServer:
		logger.Info("Starting server...")
	case config.ModeClient:
		logger.Info("Starting client...")
	}

	mode, err := core.Build(cfg, logger, in, stdout)
	if err != nil {
		return err
	}
	// main reports a returned error once, on stderr.
	return mode.Run(ctx)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `hellotcp v%s

A TCP greeting server and interactive client on %s.

Usage:
  hellotcp [options]            Prompt for mode
  hellotcp -m server            Listen and reply "Hello, World!"
  hellotcp -m client            Send one line per connection

Options:
`, version, config.DefaultAddress)
	fs.PrintDefaults()
}
