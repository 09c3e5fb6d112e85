package player_test

import (
	"testing"

	"github.com/cricsim/auction-tui/internal/player"
	"github.com/stretchr/testify/require"
)

func TestParseRolePriority(t *testing.T) {
	cases := []struct {
		raw  string
		want player.Role
	}{
		{"Fast Bowler", player.Bowler},
		{"BOWLING", player.Bowler},
		{"bowling allrounder", player.Bowler},
		{"All rounder", player.AllRounder},
		{"ALLROUNDER", player.AllRounder},
		{"keeper-allrounder", player.AllRounder},
		{"Wicket Keeper", player.WicketKeeper},
		{"wk", player.WicketKeeper},
		{"WK", player.WicketKeeper},
		{"Top order Batter", player.Batter},
		{"", player.Batter},
		{"   ", player.Batter},
		{"mystery spin", player.Batter},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, player.ParseRole(tc.raw), "role %q", tc.raw)
	}
}

func TestCroreConversion(t *testing.T) {
	require.InEpsilon(t, 90.0, player.Crore(900_000_000), 1e-12)
	require.InEpsilon(t, 900_000_000, player.BaseUnits(90), 1e-12)

	// Round trip stays within floating point tolerance for odd figures too.
	for _, base := range []float64{1, 52_000_000, 123_456_789, 10_000_000_000} {
		require.InEpsilon(t, base, player.BaseUnits(player.Crore(base)), 1e-9)
	}
}

func TestBucketCountry(t *testing.T) {
	require.Equal(t, player.Indian, player.BucketCountry("Indian"))
	// The bucket shape compares case-sensitively against the literal.
	require.Equal(t, player.Overseas, player.BucketCountry("indian"))
	require.Equal(t, player.Overseas, player.BucketCountry("INDIAN"))
	require.Equal(t, player.Overseas, player.BucketCountry("Overseas"))
	require.Equal(t, player.Overseas, player.BucketCountry(""))
}

func TestBucketNationality(t *testing.T) {
	require.Equal(t, player.Indian, player.BucketNationality("India"))
	require.Equal(t, player.Indian, player.BucketNationality("INDIA"))
	require.Equal(t, player.Indian, player.BucketNationality(" india "))
	require.Equal(t, player.Overseas, player.BucketNationality("Australia"))
	require.Equal(t, player.Overseas, player.BucketNationality(""))
}

func TestParseStatus(t *testing.T) {
	require.Equal(t, player.StatusSold, player.ParseStatus("SOLD"))
	require.Equal(t, player.StatusUnsold, player.ParseStatus("unsold"))
	require.Equal(t, player.StatusUnknown, player.ParseStatus(""))
	require.Equal(t, player.StatusUnknown, player.ParseStatus("withdrawn"))
}

func TestID(t *testing.T) {
	require.Equal(t, "V Kohli-0", player.ID("V Kohli", 0))
	require.Equal(t, "player-3", player.ID("", 3))
}

func TestPriceDisplay(t *testing.T) {
	price := 5.2
	withPrice := player.Player{PriceCr: &price}
	require.Equal(t, "5.20", withPrice.PriceDisplay())

	require.Equal(t, "-", player.Player{}.PriceDisplay())
}
