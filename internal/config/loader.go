package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Writer persists an updated Config back to its source.
type Writer interface {
	Write(config Config) error
	Path() string
}

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("auction_api_base_url", "http://localhost:8000/")
	loader.SetDefault("xi_api_base_url", "http://localhost:8001/")
	loader.SetDefault("year", 2025)
	loader.SetDefault("squad.team_size", 25)
	loader.SetDefault("squad.overseas_min", 2)
	loader.SetDefault("squad.overseas_max", 8)
	loader.SetDefault("squad.budget_cr", 90.0)
	loader.SetDefault("squad.batters_min", 6)
	loader.SetDefault("squad.batters_max", 8)
	loader.SetDefault("squad.bowlers_min", 6)
	loader.SetDefault("squad.bowlers_max", 8)
	loader.SetDefault("squad.all_rounders_min", 2)
	loader.SetDefault("squad.all_rounders_max", 4)
	loader.SetDefault("squad.wicket_keepers_min", 2)
	loader.SetDefault("squad.wicket_keepers_max", 3)
	loader.SetDefault("debug", false)
	loader.SetDefault("fps", 30)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()
	loader.WatchConfig()
	loader.OnConfigChange(loader.onConfigChange)

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

func (cl *Loader) Write(config Config) error {
	cl.Set("auction_api_base_url", config.AuctionAPIBaseURL)
	cl.Set("xi_api_base_url", config.XIAPIBaseURL)
	cl.Set("year", config.Year)
	cl.Set("squad.team_size", config.Squad.TeamSize)
	cl.Set("squad.overseas_min", config.Squad.OverseasMin)
	cl.Set("squad.overseas_max", config.Squad.OverseasMax)
	cl.Set("squad.budget_cr", config.Squad.BudgetCr)
	cl.Set("squad.batters_min", config.Squad.BattersMin)
	cl.Set("squad.batters_max", config.Squad.BattersMax)
	cl.Set("squad.bowlers_min", config.Squad.BowlersMin)
	cl.Set("squad.bowlers_max", config.Squad.BowlersMax)
	cl.Set("squad.all_rounders_min", config.Squad.AllRoundersMin)
	cl.Set("squad.all_rounders_max", config.Squad.AllRoundersMax)
	cl.Set("squad.wicket_keepers_min", config.Squad.WicketKeepersMin)
	cl.Set("squad.wicket_keepers_max", config.Squad.WicketKeepersMax)

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
