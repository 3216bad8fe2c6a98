package cmd

import (
	"fmt"
	"os"

	"asset-catalog/core/catalog"
	"asset-catalog/core/config"
	"asset-catalog/core/filter"
	"asset-catalog/core/logger"
	"asset-catalog/core/provider"
	"asset-catalog/core/query"

	"github.com/spf13/cobra"
)

var (
	searchCategory string
	searchLimit    int
)

// searchCmd runs a one-shot query against the locally installed packs.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the locally installed asset packs",
	Long:  `Loads the local pack indexes and runs a relevance-ranked search against them.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(args[0])
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", string(catalog.RootCategoryID), "category to search under")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 25, "maximum number of results to print")
	RootCmd.AddCommand(searchCmd)
}

func runSearch(search string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cat := provider.NewCachedMultiplexer(cfg.Catalog.QueryCacheSize, logg)
	for _, local := range loadLocalProviders(cfg.Catalog, logg) {
		cat.AddAssetProvider(local)
	}

	searchFilter := filter.NewSearchFilter(search)
	q := query.New(
		provider.GetCategoryIDSafe(cat, catalog.CategoryID(searchCategory)),
		[]filter.Filter{searchFilter},
		query.SortMostRelevant,
	)
	view := cat.Query(q)

	// Pretty Console Output
	fmt.Println("\n--- Catalog Search ---")
	fmt.Printf("Query:     %s\n", search)
	fmt.Printf("Category:  %s\n", q.CategoryID)
	fmt.Printf("Matches:   %d\n", len(view.Assets))
	fmt.Println("----------------------")
	for i, asset := range view.Assets {
		if i >= searchLimit {
			fmt.Printf("... and %d more\n", len(view.Assets)-searchLimit)
			break
		}
		fmt.Printf("%-10.2f %-16s %s (%s)\n",
			searchFilter.Score(asset.ID), asset.Type, asset.Title, asset.ID)
	}
	fmt.Println("----------------------")
}
