package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test the connection to the movie database",
	Long:    `Verify that the API endpoint is reachable and the configured API key is accepted.`,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", cfg.OMDB.URL)

	if err := client.Ping(context.Background()); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	fmt.Println("✓ Connection successful!")

	fmt.Printf("\nWatchlist: %d movies stored at %s\n", store.Len(), cfg.Watchlist.Path)

	return nil
}
