package model_test

import (
	"testing"

	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func TestKeyZoneGroupNext(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.KZsquadSelected, model.SquadZones.Next(model.KZsquadTable, input.Right))
	require.Equal(t, model.KZsquadTable, model.SquadZones.Next(model.KZsquadSelected, input.Right))

	// Wraps backwards into the last entry.
	require.Equal(t, model.KZsquadSelected, model.SquadZones.Next(model.KZsquadTable, input.Left))

	// Unknown zones reset to the first entry of the group.
	require.Equal(t, model.KZxiForm, model.XIZones.Next(model.KZauctionTable, input.Right))

	// Up/down do not change zones.
	require.Equal(t, model.KZauctionTable, model.AuctionZones.Next(model.KZauctionTable, input.Up))
}
