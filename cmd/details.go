package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkfelic1/flickwatch/overlay"
)

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:   "details <imdb-id>",
	Short: "Show the full record for one movie",
	Long: `Fetch and display the full details for a movie by its IMDb id, as
returned by the search command.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	imdbID := strings.TrimSpace(args[0])

	ov := overlay.New()
	ticket := ov.Open(imdbID)
	fmt.Printf("Loading details for %s...\n\n", imdbID)

	ctx := context.Background()
	detail, err := client.Details(ctx, imdbID)
	ov.Resolve(ticket, detail, err)

	printOverlay(ov.View())
	return nil
}

// printOverlay renders the overlay snapshot. Failures degrade to a
// not-available message instead of an error exit.
func printOverlay(v overlay.View) {
	switch v.State {
	case overlay.StatePopulated:
		d := v.Detail
		fmt.Printf("%s", d.Title)
		if d.Year != 0 {
			fmt.Printf(" (%d)", d.Year)
		}
		fmt.Println()
		printField("Rated", d.Rated)
		printField("Genre", d.Genre)
		printField("Director", d.Director)
		printField("Cast", d.Actors)
		printField("IMDb rating", d.ImdbRating)
		if d.Plot != "" {
			fmt.Printf("\n%s\n", d.Plot)
		}
	case overlay.StateFailed:
		logger.Warn().Err(v.Err).Str("imdb_id", v.ID).Msg("Details fetch failed")
		fmt.Printf("Details for %s are not available.\n", v.ID)
	case overlay.StateLoading:
		fmt.Println("Still loading...")
	}
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %-12s %s\n", label+":", value)
}
