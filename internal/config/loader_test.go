package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoaderDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	loader := config.NewLoader(make(chan config.Config, 1))

	conf, err := loader.Read()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8000/", conf.AuctionAPIBaseURL)
	require.Equal(t, "http://localhost:8001/", conf.XIAPIBaseURL)
	require.Equal(t, 2025, conf.Year)
	require.Equal(t, 25, conf.Squad.TeamSize)
	require.Equal(t, 2, conf.Squad.OverseasMin)
	require.Equal(t, 8, conf.Squad.OverseasMax)
	require.InDelta(t, 90.0, conf.Squad.BudgetCr, 0.001)
	require.Equal(t, 6, conf.Squad.BattersMin)
	require.Equal(t, 3, conf.Squad.WicketKeepersMax)
	require.False(t, conf.Debug)
}

func TestLoaderWriteRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()

	// WriteConfig needs an existing file to target.
	require.NoError(t, os.MkdirAll(filepath.Join(home, config.ConfigDirName), 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, config.ConfigDirName, config.DefaultConfigName+".yaml"), []byte("year: 2025\n"), 0o600))

	loader := config.NewLoader(make(chan config.Config, 1))

	conf, err := loader.Read()
	require.NoError(t, err)

	conf.Year = 2026
	conf.Squad.OverseasMax = 6
	require.NoError(t, loader.Write(conf))

	reread, errReread := loader.Read()
	require.NoError(t, errReread)
	require.Equal(t, 2026, reread.Year)
	require.Equal(t, 6, reread.Squad.OverseasMax)
}
