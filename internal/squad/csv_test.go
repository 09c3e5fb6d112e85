package squad_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/stretchr/testify/require"
)

func TestExportPlayers(t *testing.T) {
	dir := t.TempDir()
	price := 5.2

	outPath, err := squad.ExportPlayers(dir, []player.Player{
		{Name: "A", Role: player.Bowler, Nationality: player.Indian, PriceCr: &price, Outcome: "SOLD"},
		{Name: "B", Role: player.Batter, Nationality: player.Overseas},
	})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, squad.PlayersCSVName), outPath)

	body, errRead := os.ReadFile(outPath)
	require.NoError(t, errRead)
	require.Equal(t,
		"name,role,nationality,predicted_price_cr,outcome\n"+
			"A,bowler,Indian,5.20,SOLD\n"+
			"B,batter,Overseas,-,\n",
		string(body))
}

func TestExportQuotesEmbeddedCommas(t *testing.T) {
	dir := t.TempDir()

	outPath, err := squad.ExportSelection(dir, squad.NewSelection([]player.Player{
		{Name: `Smith, John "Smudge"`, Role: player.Batter, Nationality: player.Overseas},
	}))
	require.NoError(t, err)

	body, errRead := os.ReadFile(outPath)
	require.NoError(t, errRead)
	require.Contains(t, string(body), `"Smith, John ""Smudge"""`)
}

func TestExportEmptySelection(t *testing.T) {
	dir := t.TempDir()

	outPath, err := squad.ExportSelection(dir, squad.NewSelection(nil))
	require.NoError(t, err)

	body, errRead := os.ReadFile(outPath)
	require.NoError(t, errRead)
	require.Equal(t, "name,role,nationality,price_cr\n", string(body))
}
