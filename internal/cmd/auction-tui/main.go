package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/cricsim/auction-tui/internal/auction"
	"github.com/cricsim/auction-tui/internal/cache"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/store"
	"github.com/cricsim/auction-tui/internal/ui/pages"
	"github.com/cricsim/auction-tui/internal/xi"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "auction-tui",
		Short: "IPL auction companion TUI",
		Long:  `auction-tui - Browse auction price predictions, build a squad and pick a best XI from your terminal`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about auction-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path(config.DefaultConfigName)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath, "Config file path")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("auction-tui - IPL auction terminal UI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)             //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)              //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)         //nolint:forbidigo
}

// run is the main entry point of auction-tui.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	configLoader := config.NewLoader(configUpdates)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, slog.LevelDebug)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting auction-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// Setup the filesystem cache, creating any necessary directories.
	fsCache, errCache := cache.New()
	if errCache != nil {
		return errors.Join(errCache, errApp)
	}

	// Setup the two backend clients.
	httpClient := &http.Client{Timeout: config.DefaultHTTPTimeout}
	auctionClient := auction.NewClient(auction.Config{BaseURL: userConfig.AuctionAPIBaseURL, HTTPClient: httpClient})
	xiClient := xi.NewClient(xi.Config{BaseURL: userConfig.XIAPIBaseURL, HTTPClient: httpClient})

	// Setup the sqlite database system.
	database, errDB := store.Open(cmd.Context(), config.Path(config.DefaultDBName), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	stateStore := store.New(database)

	defer func() {
		if err := stateStore.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	deps := pages.Deps{
		Auction:        auctionClient,
		XI:             xiClient,
		Store:          stateStore,
		Cache:          fsCache,
		SavedSelection: stateStore.LoadSelection(cmd.Context()),
	}

	done := make(chan any)
	app := NewApp(userConfig, auctionClient, xiClient, deps, configUpdates)

	go func() {
		if err := app.createUI(cmd.Context(), configLoader).Run(); err != nil {
			slog.Error("Failed to run UI", slog.String("error", err.Error()))
		}

		done <- "bye"
	}()

	app.Start(cmd.Context(), done)

	return nil
}
