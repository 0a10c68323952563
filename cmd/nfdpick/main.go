package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"

	"github.com/mmilitzer/nfd-go/internal/logging"
	"github.com/mmilitzer/nfd-go/internal/signals"
	"github.com/mmilitzer/nfd-go/pkg/config"
	"github.com/mmilitzer/nfd-go/pkg/nfd"
)

const (
	exitCancelled   = 1
	exitFailed      = 2
	exitInterrupted = 130
)

var cfg *config.Config

func main() {
	app := &cli.App{
		Name:  "nfdpick",
		Usage: "show a native file dialog and print the selected paths",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "backend", Aliases: []string{"b"}, Usage: "dialog backend (auto, nfd, sqweek, zenity)"},
			&cli.StringFlag{Name: "filter", Aliases: []string{"f"}, Usage: `filter list, e.g. "png,jpg;pdf"`},
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "directory the dialog starts in"},
			&cli.BoolFlag{Name: "copy", Aliases: []string{"c"}, Usage: "also copy the selection to the clipboard"},
			&cli.BoolFlag{Name: "print0", Aliases: []string{"0"}, Usage: "separate paths with NUL instead of newline"},
			&cli.StringFlag{Name: "log-dir", Usage: "directory for nfd.log"},
			&cli.BoolFlag{Name: "trace", Usage: "log every native call"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "echo log output to stderr"},
		},
		Before: setup,
		After: func(*cli.Context) error {
			return logging.Close()
		},
		Commands: []*cli.Command{
			{
				Name:   "open",
				Usage:  "pick one existing file",
				Action: pick(nfd.SingleFile),
			},
			{
				Name:    "open-multiple",
				Aliases: []string{"multi"},
				Usage:   "pick any number of existing files",
				Action:  pick(nfd.MultipleFiles),
			},
			{
				Name:   "save",
				Usage:  "pick a path to save to",
				Action: pick(nfd.SaveFile),
			},
			{
				Name:  "backends",
				Usage: "list the dialog backends compiled into this binary",
				Action: func(c *cli.Context) error {
					for _, name := range nfd.Backends() {
						fmt.Fprintln(c.App.Writer, name)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "nfdpick: %v\n", err)
		os.Exit(exitFailed)
	}
}

// setup loads the config, lets flags override it and starts file logging.
func setup(c *cli.Context) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("filter") {
		v := c.String("filter")
		cfg.Filter = &v
	}
	if c.IsSet("path") {
		v := c.String("path")
		cfg.DefaultPath = &v
	}
	if c.IsSet("log-dir") {
		cfg.LogDir = c.String("log-dir")
	}
	if c.Bool("trace") {
		cfg.Trace = true
	}

	if err := logging.Init(cfg.LogDir, c.Bool("verbose")); err != nil {
		// Continue anyway, logging goes to stderr
		log.Printf("Warning: Failed to initialize file logging: %v", err)
	}
	logging.EnableTrace(cfg.Trace)

	signals.OnInterrupt(func(os.Signal) {
		log.Printf("[nfdpick] Interrupted while the dialog was open")
		logging.Close()
		os.Exit(exitInterrupted)
	})
	return nil
}

func pick(mode nfd.Mode) cli.ActionFunc {
	return func(c *cli.Context) error {
		d, err := nfd.New(cfg.Backend)
		if err != nil {
			return exit(err.Error(), exitFailed)
		}

		b := d.Builder()
		if cfg.Filter != nil {
			b.Filter(*cfg.Filter)
		}
		if cfg.DefaultPath != nil {
			b.DefaultPath(*cfg.DefaultPath)
		}

		log.Printf("[nfdpick] Showing %s dialog (backend=%s)", mode, cfg.Backend)
		resp, err := d.Run(mode, b.Request())
		if err != nil {
			log.Printf("[nfdpick] Dialog failed: %v", err)
			return exit(err.Error(), exitFailed)
		}
		if resp.Cancelled() {
			log.Printf("[nfdpick] Dialog cancelled")
			return exit("", exitCancelled)
		}

		paths := resp.Selected()
		log.Printf("[nfdpick] %d path(s) selected", len(paths))

		sep := "\n"
		if c.Bool("print0") {
			sep = "\x00"
		}
		for _, p := range paths {
			fmt.Fprint(c.App.Writer, p, sep)
		}

		if c.Bool("copy") {
			if err := clipboard.WriteAll(strings.Join(paths, "\n")); err != nil {
				return exit(fmt.Sprintf("copy to clipboard: %v", err), exitFailed)
			}
		}
		return nil
	}
}

// exit closes the log file before handing the exit code to cli, which
// calls os.Exit without running the After hook.
func exit(msg string, code int) error {
	if err := logging.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "nfdpick: close log: %v\n", err)
	}
	return cli.Exit(msg, code)
}
