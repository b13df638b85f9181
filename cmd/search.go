package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkfelic1/flickwatch/filter"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Search for movies by title",
	Long: `Search the movie database by title and list the matches. Results
already on your watchlist are marked in the Saved column.`,
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		fmt.Println("Please enter a movie title to search for.")
		return nil
	}

	var resultFilter *filter.Filter
	if filterExpr != "" {
		var err error
		resultFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return err
		}
	}

	logger.Info().Str("query", query).Msg("Searching movies")

	ctx := context.Background()
	results, err := client.Search(ctx, query)
	if err != nil {
		logger.Error().Err(err).Str("query", query).Msg("Search failed")
		fmt.Println("Something went wrong with the search. Please try again later.")
		return nil
	}

	if resultFilter != nil {
		kept := results[:0]
		for _, s := range results {
			if resultFilter.MatchSummary(s) {
				kept = append(kept, s)
			}
		}
		results = kept
	}

	if limit := cfg.Search.Limit; limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if len(results) == 0 {
		fmt.Printf("No movies found for %q.\n", query)
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, s := range results {
		saved := ""
		if store.Contains(s.ImdbID) {
			saved = "✓"
		}
		rows = append(rows, []string{s.ImdbID, s.Title, yearText(s.Year), saved})
	}

	fmt.Printf("Found %d movies for %q:\n", len(results), query)
	fmt.Println(renderTable([]string{"ID", "Title", "Year", "Saved"}, rows, 2))
	fmt.Println("Use 'flickwatch add <id>' to save a movie, 'flickwatch details <id>' for more.")

	return nil
}
