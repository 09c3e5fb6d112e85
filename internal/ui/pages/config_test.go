package pages

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestConfigResetRestoresDefaults(t *testing.T) {
	conf := config.Config{
		AuctionAPIBaseURL: "http://localhost:8000/",
		XIAPIBaseURL:      "http://localhost:8001/",
		Year:              2025,
		Squad: config.SquadDefaults{
			TeamSize: 18, OverseasMin: 0, OverseasMax: 3, BudgetCr: 55,
			BattersMin: 1, BattersMax: 2, BowlersMin: 1, BowlersMax: 2,
			AllRoundersMin: 0, AllRoundersMax: 1, WicketKeepersMin: 0, WicketKeepersMax: 1,
		},
	}

	page := NewConfig(conf, nil)
	next, _ := page.Update(model.ViewState{Page: model.PageConfig})
	page = next.(*Config)

	next, _ = page.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	page = next.(*Config)

	require.Equal(t, "90", page.fields[fieldBudget].Input.Value())
	require.Equal(t, "25", page.fields[fieldTeamSize].Input.Value())
	require.Equal(t, "2", page.fields[fieldOverseasMin].Input.Value())
	require.Equal(t, "8", page.fields[fieldOverseasMax].Input.Value())
	require.Equal(t, "6", page.fields[fieldBattersMin].Input.Value())
	require.Equal(t, "8", page.fields[fieldBattersMax].Input.Value())
	require.Equal(t, "6", page.fields[fieldBowlersMin].Input.Value())
	require.Equal(t, "8", page.fields[fieldBowlersMax].Input.Value())
	require.Equal(t, "2", page.fields[fieldAllRoundersMin].Input.Value())
	require.Equal(t, "4", page.fields[fieldAllRoundersMax].Input.Value())
	require.Equal(t, "2", page.fields[fieldKeepersMin].Input.Value())
	require.Equal(t, "3", page.fields[fieldKeepersMax].Input.Value())
	for _, field := range page.fields {
		require.NoError(t, field.Input.Err)
	}

	// Backend URLs and the season stay as configured.
	require.Equal(t, "2025", page.fields[fieldYear].Input.Value())
	require.Equal(t, "http://localhost:8000/", page.fields[fieldAuctionURL].Input.Value())
}

func TestClearSquadMessageEmptiesSelection(t *testing.T) {
	zone.NewGlobal()

	section := NewSquadSection(config.Config{}, nil, nil, []player.Player{
		{ID: "a-0", Name: "a"},
		{ID: "b-1", Name: "b"},
	})
	require.Equal(t, 2, section.selection.Count())

	section, _ = section.Update(command.ClearSquadMsg{})
	require.Zero(t, section.selection.Count())
	require.Empty(t, section.picked.Players())
}
