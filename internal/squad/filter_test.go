package squad_test

import (
	"testing"

	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/stretchr/testify/require"
)

func TestFilterCombination(t *testing.T) {
	matchesAll := player.Player{Name: "Jasprit Bumrah", Role: player.Bowler, Nationality: player.Indian}
	matchesNone := player.Player{Name: "Travis Head", Role: player.Batter, Nationality: player.Overseas}
	matchesRoleOnly := player.Player{Name: "Mitchell Starc", Role: player.Bowler, Nationality: player.Overseas}

	filter := squad.NewFilter()
	filter.Role = "bowler"
	filter.Nationality = "Indian"
	filter.Search = "bumrah"

	require.True(t, filter.Match(matchesAll))
	require.False(t, filter.Match(matchesNone))
	require.False(t, filter.Match(matchesRoleOnly))

	filtered := squad.Apply([]player.Player{matchesAll, matchesNone, matchesRoleOnly}, filter)
	require.Len(t, filtered, 1)
	require.Equal(t, "Jasprit Bumrah", filtered[0].Name)
}

func TestFilterWildcardsMatchEverything(t *testing.T) {
	candidates := []player.Player{
		{Name: "A", Role: player.Batter, Nationality: player.Indian, Status: player.StatusSold},
		{Name: "B", Role: player.Bowler, Nationality: player.Overseas, Status: player.StatusUnsold},
		{Name: "C", Role: player.WicketKeeper, Nationality: player.Overseas},
	}

	filtered := squad.Apply(candidates, squad.NewFilter())
	require.Len(t, filtered, 3)
}

func TestFilterStatus(t *testing.T) {
	filter := squad.NewFilter()
	filter.Status = "sold"

	require.True(t, filter.Match(player.Player{Name: "A", Status: player.StatusSold}))
	require.False(t, filter.Match(player.Player{Name: "B", Status: player.StatusUnsold}))
	require.False(t, filter.Match(player.Player{Name: "C"}))
}

func TestFilterSearchChecksTeamToo(t *testing.T) {
	filter := squad.NewFilter()
	filter.Search = "csk"

	require.True(t, filter.Match(player.Player{Name: "MS Dhoni", Team: "CSK"}))
	require.False(t, filter.Match(player.Player{Name: "Rohit Sharma", Team: "MI"}))
	// No team on the record: only the name is searched.
	require.False(t, filter.Match(player.Player{Name: "Rohit Sharma"}))
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	filter := squad.NewFilter()
	filter.Search = "KOHLI"

	require.True(t, filter.Match(player.Player{Name: "Virat Kohli"}))
}
