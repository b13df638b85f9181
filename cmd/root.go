package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nkfelic1/flickwatch/config"
	"github.com/nkfelic1/flickwatch/omdb"
	"github.com/nkfelic1/flickwatch/watchlist"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *omdb.Client
	store   *watchlist.Store

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr  string
	withDetails bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flickwatch",
	Short: "Search for movies and keep a local watchlist",
	Long: `flickwatch is a CLI tool that searches the OMDb movie database,
shows full details for any result, and keeps a watchlist of movies
you want to see, stored locally on this machine.`,
	PersistentPostRun: teardownApp,
}

// SetVersion records the build-time version information.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration, logger, API client and
// watchlist store. Commands that talk to the API or the store use it
// as their PreRunE.
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create API client
	client, err = omdb.NewClient(cfg.OMDB.URL, cfg.OMDB.APIKey, logger,
		omdb.WithMediaType(cfg.Search.MediaType))
	if err != nil {
		return fmt.Errorf("failed to create OMDb client: %w", err)
	}

	// Open the watchlist store
	store, err = watchlist.Open(cfg.Watchlist.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open watchlist: %w", err)
	}

	return nil
}

// teardownApp releases the store after any command that opened it.
func teardownApp(cmd *cobra.Command, args []string) {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close watchlist store")
		}
		store = nil
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only when writing to a terminal
	noColor := false
	switch cfg.Color {
	case "never":
		noColor = true
	case "auto":
		noColor = !isatty.IsTerminal(os.Stderr.Fd())
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flickwatch %s (built %s)\n", version, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
