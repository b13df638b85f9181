package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nkfelic1/flickwatch/filter"
	"github.com/nkfelic1/flickwatch/omdb"
	"github.com/nkfelic1/flickwatch/watchlist"
)

// detailFetchLimit bounds concurrent lookups during list enrichment.
const detailFetchLimit = 5

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <imdb-id>...",
	Short: "Add movies to the watchlist",
	Long: `Add one or more movies to the watchlist by IMDb id. Movies already
on the list are left untouched.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runAdd,
}

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:     "remove <imdb-id>...",
	Short:   "Remove movies from the watchlist",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runRemove,
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show the watchlist",
	PreRunE: initializeApp,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to entries")
	listCmd.Flags().BoolVar(&withDetails, "details", false, "fetch live details for every entry")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	for _, arg := range args {
		imdbID := strings.TrimSpace(arg)
		if imdbID == "" {
			continue
		}

		// already saved: skip without touching the network
		if store.Contains(imdbID) {
			fmt.Printf("Already on the watchlist: %s\n", imdbID)
			continue
		}

		detail, err := client.Details(ctx, imdbID)
		if err != nil {
			if errors.Is(err, omdb.ErrNotFound) {
				fmt.Printf("No movie found for id %s.\n", imdbID)
				continue
			}
			logger.Error().Err(err).Str("imdb_id", imdbID).Msg("Lookup failed")
			fmt.Printf("Could not look up %s right now. Please try again later.\n", imdbID)
			continue
		}

		if _, err := store.Add(watchlist.EntryFromDetail(detail)); err != nil {
			return err
		}
		fmt.Printf("Added: %s", detail.Title)
		if detail.Year != 0 {
			fmt.Printf(" (%d)", detail.Year)
		}
		fmt.Println()
	}

	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		imdbID := strings.TrimSpace(arg)
		if imdbID == "" {
			continue
		}

		removed, err := store.Remove(imdbID)
		if err != nil {
			return err
		}
		if removed {
			fmt.Printf("Removed: %s\n", imdbID)
		} else {
			fmt.Printf("Not on the watchlist: %s\n", imdbID)
		}
	}

	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	entries := store.All()

	if filterExpr != "" {
		entryFilter, err := filter.Compile(filterExpr)
		if err != nil {
			return err
		}
		kept := entries[:0]
		for _, e := range entries {
			if entryFilter.MatchEntry(e) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	if len(entries) == 0 {
		fmt.Println("The watchlist is empty.")
		return nil
	}

	var details map[string]*omdb.Detail
	if withDetails {
		details = fetchDetails(context.Background(), entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{e.ImdbID, e.Title, yearText(e.Year), e.AddedAt.Format("2006-01-02")}
		if withDetails {
			genre, rating := "", ""
			if d := details[e.ImdbID]; d != nil {
				genre, rating = d.Genre, d.ImdbRating
			}
			row = append(row, genre, rating)
		}
		rows = append(rows, row)
	}

	headers := []string{"ID", "Title", "Year", "Added"}
	if withDetails {
		headers = append(headers, "Genre", "Rating")
	}

	fmt.Printf("%d movies on the watchlist:\n", len(entries))
	fmt.Println(renderTable(headers, rows, 2))

	return nil
}

// fetchDetails looks up every entry concurrently. Individual failures
// are logged and rendered as blank columns.
func fetchDetails(ctx context.Context, entries []watchlist.Entry) map[string]*omdb.Detail {
	details := make(map[string]*omdb.Detail, len(entries))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFetchLimit)

	for _, e := range entries {
		g.Go(func() error {
			detail, err := client.Details(ctx, e.ImdbID)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("imdb_id", e.ImdbID).
					Str("title", e.Title).
					Msg("Failed to fetch details")
				// Continue with the other entries
				return nil
			}

			mu.Lock()
			details[e.ImdbID] = detail
			mu.Unlock()
			return nil
		})
	}

	g.Wait()
	return details
}
