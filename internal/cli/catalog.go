package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kleyver/kleyver-app/internal/catalog"
	"github.com/kleyver/kleyver-app/internal/config"
	"github.com/kleyver/kleyver-app/internal/model"
)

// ErrUnknownCategory is returned for a category name outside the known set
var ErrUnknownCategory = errors.New("unknown category")

func (e *env) openCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Default(e.logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print gallery totals and per-category counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.openCatalog()
			if err != nil {
				return err
			}
			defer c.Close()

			s := c.Summary()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "photos\t%d\n", s.Total)
			fmt.Fprintf(w, "destinations\t%d\n", s.DistinctLocations)
			fmt.Fprintf(w, "favorites\t%d\n", s.Favorites)
			counts := c.CategoryCounts()
			for _, cat := range model.KnownCategories() {
				fmt.Fprintf(w, "%s\t%d\n", cat, counts[cat])
			}
			return w.Flush()
		},
	}
}

func newHomeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "List the records shown on the home gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.openCatalog()
			if err != nil {
				return err
			}
			defer c.Close()

			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return fmt.Errorf("all flag: %w", err)
			}
			limit := e.settings.GetHomeLimit()
			if all || limit == config.HomeLimitAll {
				return printRecords(cmd.OutOrStdout(), c.Snapshot())
			}
			return printRecords(cmd.OutOrStdout(), c.ForHome(limit))
		},
	}
	cmd.Flags().Bool("all", false, "List every record even when a home limit is stored")
	return cmd
}

func newFavoritesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.openCatalog()
			if err != nil {
				return err
			}
			defer c.Close()
			return printRecords(cmd.OutOrStdout(), c.FavoritesOnly())
		},
	}
}

func newCategoryCmd(e *env) *cobra.Command {
	names := make([]string, 0, len(model.KnownCategories()))
	for _, cat := range model.KnownCategories() {
		names = append(names, cat.String())
	}

	return &cobra.Command{
		Use:       "category <" + strings.Join(names, "|") + ">",
		Short:     "List photos of one category",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := model.Category(strings.ToLower(args[0]))
			if !cat.IsKnown() {
				return fmt.Errorf("%q: %w", args[0], ErrUnknownCategory)
			}

			c, err := e.openCatalog()
			if err != nil {
				return err
			}
			defer c.Close()
			return printRecords(cmd.OutOrStdout(), c.FilterByCategory(cat))
		},
	}
}

func printRecords(out io.Writer, records []model.MediaRecord) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", rec.ID, rec.GetDisplayTitle(), rec.Location, rec.Date)
	}
	return w.Flush()
}
