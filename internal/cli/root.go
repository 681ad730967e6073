package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kleyver/kleyver-app/internal/config"
	"github.com/kleyver/kleyver-app/internal/log"
)

// env is the state shared by subcommands once flags are parsed
type env struct {
	store    *config.FileStore
	settings *config.Settings
	logger   zerolog.Logger
}

// Execute runs the kleyver command line
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "kleyver",
		Short:         "Headless companion for the Kleyver photo showcase",
		Long:          "kleyver: inspect the built-in gallery and manage the stored theme preference.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd, cmd.ErrOrStderr())
		},
	}

	defaultPrefs, err := config.DefaultPreferencesPath()
	if err != nil {
		defaultPrefs = "preferences.yaml"
	}
	root.PersistentFlags().StringP("prefs", "p", defaultPrefs, "Path to the preferences file")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to $LOG_LEVEL or info")

	root.AddCommand(newThemeCmd(e))
	root.AddCommand(newStatsCmd(e))
	root.AddCommand(newHomeCmd(e))
	root.AddCommand(newFavoritesCmd(e))
	root.AddCommand(newCategoryCmd(e))

	return root
}

func (e *env) init(cmd *cobra.Command, stderr io.Writer) error {
	level := mustGetStringFlag(cmd, "log-level")
	e.logger = log.New(log.Config{Level: level, Output: stderr, Console: true})

	path := mustGetStringFlag(cmd, "prefs")
	if path == "" {
		return errors.New("prefs path is empty")
	}
	e.store = config.OpenFileStore(path, e.logger)
	e.settings = config.NewSettings(e.store)
	e.logger.Debug().Str("prefs", e.store.Path()).Msg("preferences opened")
	return nil
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
