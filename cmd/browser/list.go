package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"CatalogBrowser/internal/catalog"
)

var (
	listQuery    string
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Load the catalog and print the products matching a query",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := newLogger(cfg)
		defer func() { _ = log.Sync() }()

		state, err := loadCatalog(cmd.Context(), cfg, log, nil)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		visible := state.Visible(listQuery, listCategory)
		if listJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(visible)
		}
		return writeTable(cmd.OutOrStdout(), visible)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "case-insensitive title substring")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", catalog.AllCategories, `category to keep, or "all"`)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(listCmd)
}

func writeTable(w io.Writer, products []catalog.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tRATING\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s (%d)\t%s\n",
			p.ID, p.Title, catalog.FormatPrice(p.Price), catalog.FormatRate(p.Rating.Rate), p.Rating.Count, p.Category)
	}
	return tw.Flush()
}
