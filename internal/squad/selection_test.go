package squad_test

import (
	"sort"
	"testing"

	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/stretchr/testify/require"
)

func pick(id string, priceCr float64, overseas bool) player.Player {
	nationality := player.Indian
	if overseas {
		nationality = player.Overseas
	}

	return player.Player{ID: id, Name: id, Nationality: nationality, PriceCr: &priceCr}
}

func TestSelectionToggle(t *testing.T) {
	selection := squad.NewSelection(nil)

	added := selection.Toggle(pick("a-0", 5, false))
	require.True(t, added)
	require.True(t, selection.Contains("a-0"))
	require.Equal(t, 1, selection.Count())

	removed := selection.Toggle(pick("a-0", 5, false))
	require.False(t, removed)
	require.False(t, selection.Contains("a-0"))
	require.Zero(t, selection.Count())
}

func TestSelectionAggregates(t *testing.T) {
	selection := squad.NewSelection([]player.Player{
		pick("a-0", 5.5, false),
		pick("b-1", 2.0, true),
		{ID: "c-2", Name: "c"}, // no prediction, counts as zero
	})

	require.Equal(t, 3, selection.Count())
	require.Equal(t, 1, selection.OverseasCount())
	require.InEpsilon(t, 7.5, selection.BudgetUsedCr(), 1e-9)
	require.InEpsilon(t, 82.5, selection.BudgetLeftCr(90), 1e-9)
}

func TestBudgetLeftNeverNegative(t *testing.T) {
	selection := squad.NewSelection(nil)
	budget := 10.0

	for i, price := range []float64{4, 4, 4, 4} {
		selection.Toggle(pick(player.ID("p", i), price, false))
		require.GreaterOrEqual(t, selection.BudgetLeftCr(budget), 0.0)
	}

	require.Zero(t, selection.BudgetLeftCr(budget))

	selection.Remove("p-3")
	selection.Remove("p-2")
	require.InEpsilon(t, 2.0, selection.BudgetLeftCr(budget), 1e-9)
}

func TestRoleCount(t *testing.T) {
	bowler := pick("a-0", 1, false)
	bowler.Role = player.Bowler
	keeper := pick("b-1", 1, false)
	keeper.Role = player.WicketKeeper

	selection := squad.NewSelection([]player.Player{bowler, keeper})
	require.Equal(t, 1, selection.RoleCount(player.Bowler))
	require.Equal(t, 1, selection.RoleCount(player.WicketKeeper))
	require.Zero(t, selection.RoleCount(player.AllRounder))
}

func TestReplacePreservesOrder(t *testing.T) {
	selection := squad.NewSelection(nil)
	selection.Replace([]player.Player{pick("z-0", 1, false), pick("a-1", 2, true)})

	players := selection.Players()
	require.Equal(t, "z-0", players[0].ID)
	require.Equal(t, "a-1", players[1].ID)
}

func TestPlayersCopyKeepsPickOrder(t *testing.T) {
	selection := squad.NewSelection([]player.Player{
		pick("z-0", 1, false),
		pick("a-1", 2, false),
	})

	// A caller sorting the returned slice must not disturb pick order.
	returned := selection.Players()
	sort.Slice(returned, func(i, j int) bool { return returned[i].Name < returned[j].Name })
	require.Equal(t, "a-1", returned[0].ID)

	players := selection.Players()
	require.Equal(t, "z-0", players[0].ID)
	require.Equal(t, "a-1", players[1].ID)
}
