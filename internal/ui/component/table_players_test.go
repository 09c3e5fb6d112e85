package component_test

import (
	"testing"

	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/ui/component"
	"github.com/cricsim/auction-tui/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestSetPlayersCopiesInput(t *testing.T) {
	zone.NewGlobal()

	table := component.NewTablePlayersModel(component.TableSquadPicked, "Picked", model.KZsquadSelected)

	// Pick order, deliberately not alphabetical.
	players := []player.Player{
		{ID: "z-0", Name: "z"},
		{ID: "a-1", Name: "a"},
	}
	table.SetPlayers(players)

	// The table sorts its own copy by name, the input keeps pick order.
	require.Equal(t, "a-1", table.Players()[0].ID)
	require.Equal(t, "z-0", players[0].ID)
	require.Equal(t, "a-1", players[1].ID)
}
