package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleyver/kleyver-app/internal/theme"
)

func newThemeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the theme the app will start with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), theme.InitialTheme(e.settings))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{theme.Light.String(), theme.Dark.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := theme.Parse(args[0])
			if !ok {
				return fmt.Errorf("theme %q: %w", args[0], theme.ErrInvalidTheme)
			}
			c := theme.NewController(e.settings, e.logger)
			defer c.Close()
			if err := c.SetTheme(t); err != nil {
				return fmt.Errorf("set theme: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Current())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := theme.NewController(e.settings, e.logger)
			defer c.Close()
			c.ToggleDarkMode()
			fmt.Fprintln(cmd.OutOrStdout(), c.Current())
			return nil
		},
	})

	return cmd
}
