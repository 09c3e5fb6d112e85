package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "auction-tui"
	DefaultConfigName  = "auction-tui"
	DefaultDBName      = "auction-tui.db"
	DefaultLogName     = "auction-tui.log"
	CacheDirName       = "cache"
	ExportDirName      = "exports"
	EnvPrefix          = "auctui"
	DefaultHTTPTimeout = 15 * time.Second
)

// Config holds all user adjustable settings. The two backend base URLs belong
// to independent services and are configured separately.
type Config struct {
	// AuctionAPIBaseURL points at the price prediction / squad suggestion service.
	AuctionAPIBaseURL string `mapstructure:"auction_api_base_url"`
	// XIAPIBaseURL points at the starting XI prediction service.
	XIAPIBaseURL string `mapstructure:"xi_api_base_url"`
	// Year is the auction prediction year the backends are locked to.
	Year int `mapstructure:"year"`
	// Squad seeds the squad page constraint form. The reset action restores
	// these values.
	Squad SquadDefaults `mapstructure:"squad"`
	Debug bool          `mapstructure:"debug"`
	FPS   int           `mapstructure:"fps,omitempty"`
}

// SquadDefaults are the default constraint values for the squad builder form.
type SquadDefaults struct {
	TeamSize         int     `mapstructure:"team_size"`
	OverseasMin      int     `mapstructure:"overseas_min"`
	OverseasMax      int     `mapstructure:"overseas_max"`
	BudgetCr         float64 `mapstructure:"budget_cr"`
	BattersMin       int     `mapstructure:"batters_min"`
	BattersMax       int     `mapstructure:"batters_max"`
	BowlersMin       int     `mapstructure:"bowlers_min"`
	BowlersMax       int     `mapstructure:"bowlers_max"`
	AllRoundersMin   int     `mapstructure:"all_rounders_min"`
	AllRoundersMax   int     `mapstructure:"all_rounders_max"`
	WicketKeepersMin int     `mapstructure:"wicket_keepers_min"`
	WicketKeepersMax int     `mapstructure:"wicket_keepers_max"`
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

func PathCache(name string) string {
	cacheDir, found := os.LookupEnv("CACHE_DIR")
	if found && cacheDir != "" {
		return cacheDir
	}

	return path.Join(xdg.CacheHome, ConfigDirName, name)
}

// PathExport returns the directory CSV exports are written into.
func PathExport() string {
	return path.Join(xdg.DataHome, ConfigDirName, ExportDirName)
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
