package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkfelic1/flickwatch/render"
)

var (
	exportFormat string
	exportOutput string
	exportQuery  string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the watchlist as HTML or JSON",
	Long: `Write the watchlist to stdout or a file. The HTML format renders a
card per movie; pass --query to include a section of search results
with saved movies marked. The JSON format matches the persisted shape.`,
	PreRunE: initializeApp,
	RunE:    runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "html", "output format (html or json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "include search results for this title (html only)")
}

func runExport(cmd *cobra.Command, args []string) error {
	var out io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	entries := store.All()

	switch exportFormat {
	case "json":
		return render.JSON(out, entries)
	case "html":
		page := render.Page{
			Title:     "flickwatch",
			Watchlist: render.CardsFromEntries(entries),
		}

		if exportQuery != "" {
			results, err := client.Search(context.Background(), exportQuery)
			if err != nil {
				logger.Error().Err(err).Str("query", exportQuery).Msg("Search failed")
				return fmt.Errorf("search for %q failed: %w", exportQuery, err)
			}
			page.Results = render.CardsFromSummaries(results, store.Contains)
		}

		return render.HTML(out, page)
	default:
		return fmt.Errorf("unknown export format: %s (must be html or json)", exportFormat)
	}
}
