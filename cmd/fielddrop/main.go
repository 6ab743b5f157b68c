// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Fielddrop using the Cobra
// library. Running without a subcommand opens the interactive drop pad;
// `list` prints the classification of a profile and `config init` writes a
// default configuration file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/toeirei/fielddrop/internal/buildvars"
	"github.com/toeirei/fielddrop/internal/classify"
	"github.com/toeirei/fielddrop/internal/clipboard"
	"github.com/toeirei/fielddrop/internal/config"
	"github.com/toeirei/fielddrop/internal/i18n"
	"github.com/toeirei/fielddrop/internal/logging"
	"github.com/toeirei/fielddrop/internal/session"
	"github.com/toeirei/fielddrop/internal/tui"
	"github.com/toeirei/fielddrop/internal/watch"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

// app carries the configuration resolved in PersistentPreRunE to the
// subcommands.
type app struct {
	cfg        config.Config
	classifier *classify.Classifier
}

// newRootCmd creates the root command. Tests call it for a fresh, isolated
// command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	d := config.Defaults()

	cmd := &cobra.Command{
		Use:   "fielddrop [file.json]",
		Short: "Drag profile fields onto a pad that mirrors to the clipboard.",
		Long: `Fielddrop loads a flat JSON profile and shows its fields in a terminal UI.
Fields can be dragged with the mouse (or picked up with the keyboard) onto
a drop pad. Every drop appends the value to the pad and copies the whole
pad to the clipboard. Fields that look like payment card data are listed
but can never be dragged.

Without a terminal on stdout the classification is printed instead.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		Version:           buildvars.String(),
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default is $XDG_CONFIG_HOME/fielddrop/fielddrop.yaml)")
	pf.StringSlice("patterns", d.Patterns, `sensitive key fragments; prefix with "re:" for a regular expression`)
	pf.String("delimiter", `\n`, `text appended after every dropped value (escapes like \n, \t are honoured)`)
	pf.String("language", d.Language, `UI language ("en", "de")`)
	pf.String("log-file", "", "write logs to this file (the TUI discards logs otherwise)")
	pf.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	pf.Bool("watch", d.Watch, "reload the profile when it changes on disk")
	pf.Bool("sample", d.Sample, "show the built-in sample profile when no file is given")
	pf.Bool("clipboard", d.Clipboard, "copy the pad to the system clipboard")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newConfigCmd())
	return cmd
}

// setup resolves the configuration and everything derived from it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("could not read --config flag: %w", err)
	}
	cfg, err := config.Load[config.Config](cmd, config.DefaultMap(), explicit)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	i18n.Init(cfg.Language)
	if !i18n.Supported(cfg.Language) {
		logging.Warnf("language %q is not available, falling back to en", cfg.Language)
		cfg.Language = "en"
		i18n.Init(cfg.Language)
	}

	c, err := classify.New(cfg.Patterns)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg
	a.classifier = c
	return nil
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if !isTerminal(cmd.OutOrStdout()) {
		return a.runList(cmd, path)
	}

	closeLog, err := a.setupLogging(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	sess := session.New(a.clipboardWriter(),
		session.WithDelimiter(a.cfg.DelimiterValue()),
		session.WithGuard(a.classifier),
		session.WithLogger(logging.L),
	)
	opts := tui.Options{
		Path:       path,
		Sample:     a.cfg.Sample,
		Classifier: a.classifier,
		Session:    sess,
		Context:    cmd.Context(),
	}
	if a.cfg.Watch {
		opts.Watch = func(p string) (*watch.Watcher, error) { return watch.New(p) }
	}
	logging.Infof("starting TUI (file=%q watch=%v clipboard=%v)", path, a.cfg.Watch, a.cfg.Clipboard)
	return tui.Run(opts)
}

// setupLogging points the logger at the configured file. Without a file,
// logs go to fallback, or nowhere when fallback is nil.
func (a *app) setupLogging(fallback io.Writer) (func(), error) {
	if a.cfg.LogFile != "" {
		f, err := logging.OpenFile(a.cfg.LogFile)
		if err != nil {
			return func() {}, err
		}
		if err := logging.Setup(f, a.cfg.LogLevel); err != nil {
			_ = f.Close()
			return func() {}, err
		}
		return func() { _ = f.Close() }, nil
	}
	if fallback == nil {
		logging.Discard()
		return func() {}, nil
	}
	return func() {}, logging.Setup(fallback, a.cfg.LogLevel)
}

// clipboardWriter picks the writer behind the session. A missing OS clipboard is
// not fatal: drops still accumulate on the pad.
func (a *app) clipboardWriter() clipboard.Writer {
	if !a.cfg.Clipboard {
		return &clipboard.Memory{}
	}
	if !clipboard.Available() {
		logging.Warnf("no system clipboard available, keeping the pad in memory")
		return &clipboard.Memory{}
	}
	return clipboard.System{}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var errNoProfile = errors.New("no profile file given and the sample is disabled")
