package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Utility-Gods/charswap/internal/app"
	"github.com/Utility-Gods/charswap/internal/cli"
	"github.com/Utility-Gods/charswap/internal/config"
	"github.com/Utility-Gods/charswap/internal/db"
	"github.com/Utility-Gods/charswap/internal/logger"
	"github.com/Utility-Gods/charswap/internal/menu"
	"github.com/Utility-Gods/charswap/internal/tui"
	"github.com/Utility-Gods/charswap/internal/version"
)

type mode int

const (
	modeAuto mode = iota
	modePlain
	modeTUI
)

// env is what every command resolves before running
type env struct {
	cfg     *config.Config
	store   *db.Store
	cleanup []func() error
}

// close runs the cleanups in reverse, so the logger, set up first, is still
// writing to its file while the others report their errors.
func (e *env) close() {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		if err := e.cleanup[i](); err != nil {
			logger.L().WithError(err).Warn("cleanup failed")
		}
	}
	e.cleanup = nil
}

func newRootCmd() (*cobra.Command, *env) {
	e := &env{}
	var (
		cfgFile   string
		plain     bool
		preview   bool
		noHistory bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:          "charswap",
		Short:        "Replace one character with another, line by line",
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.New(cfgFile)
			if err != nil {
				return err
			}
			if err := v.BindPFlag(config.KeyLogDebug, cmd.Flags().Lookup("debug")); err != nil {
				return err
			}
			if noHistory {
				v.Set(config.KeyHistoryEnabled, false)
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			e.cfg = cfg

			if cleanup, err := logger.Setup(logger.Config{Path: cfg.LogPath, Debug: cfg.Debug}); err == nil {
				e.cleanup = append(e.cleanup, cleanup)
			}

			if cfg.HistoryEnabled {
				store, err := db.Open(cfg.HistoryPath, logger.L())
				if err != nil {
					logger.L().WithError(err).Warn("history unavailable")
					return nil
				}
				e.store = store
				e.cleanup = append(e.cleanup, store.Close)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			m := modeAuto
			switch {
			case plain:
				m = modePlain
			case preview:
				m = modeTUI
			}
			return run(e, m)
		},
	}

	cmd.SetVersionTemplate(version.VersionInfo() + "\n")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/charswap/config.toml)")
	cmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not read or record replacement history")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to the log file")
	cmd.Flags().BoolVar(&plain, "plain", false, "run the prompt loop even on a terminal")
	cmd.Flags().BoolVar(&preview, "tui", false, "run the live preview")
	cmd.MarkFlagsMutuallyExclusive("plain", "tui")

	cmd.AddCommand(newHistoryCmd(e))
	return cmd, e
}

func run(e *env, m mode) error {
	a := newApp(e)

	if m == modeAuto {
		m = modePlain
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return menu.MainMenu(menu.Deps{App: a, Store: e.store, Log: logger.L()})
		}
	}

	if m == modeTUI {
		return tui.Run(a)
	}
	return cli.RunCLI(a, os.Stdin, os.Stdout)
}

func newApp(e *env) *app.App {
	// A nil *db.Store must not end up inside the Recorder interface.
	if e.store == nil {
		return app.NewApp(nil, logger.L())
	}
	return app.NewApp(e.store, logger.L())
}
