package squad_test

import (
	"testing"

	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/stretchr/testify/require"
)

func defaults() config.SquadDefaults {
	return config.SquadDefaults{
		TeamSize:    25,
		OverseasMin: 2, OverseasMax: 8,
		BudgetCr:   90,
		BattersMin: 6, BattersMax: 8,
		BowlersMin: 6, BowlersMax: 8,
		AllRoundersMin: 2, AllRoundersMax: 4,
		WicketKeepersMin: 2, WicketKeepersMax: 3,
	}
}

func TestFromDefaults(t *testing.T) {
	constraints := squad.FromDefaults(defaults())
	require.Equal(t, 25, constraints.TeamSize)
	require.Equal(t, squad.Range{Min: 2, Max: 8}, constraints.Overseas)
	require.InEpsilon(t, 90.0, constraints.BudgetCr, 1e-9)
	require.Equal(t, squad.Range{Min: 6, Max: 8}, constraints.Batters)
	require.Equal(t, squad.Range{Min: 2, Max: 3}, constraints.WicketKeepers)
}

func TestOverseasClampInvariant(t *testing.T) {
	constraints := squad.FromDefaults(defaults())

	type edit struct {
		min   bool
		value int
	}

	// The invariant must hold after every individual edit, including edits
	// that push one bound across the other.
	edits := []edit{
		{min: true, value: 5},
		{min: false, value: 3},
		{min: true, value: 8},
		{min: false, value: 1},
		{min: true, value: 0},
		{min: false, value: 8},
		{min: true, value: 8},
	}

	for _, e := range edits {
		if e.min {
			constraints.SetOverseasMin(e.value)
		} else {
			constraints.SetOverseasMax(e.value)
		}
		require.LessOrEqual(t, constraints.Overseas.Min, constraints.Overseas.Max,
			"after edit min=%v value=%d", e.min, e.value)
	}
}

func TestOverseasClampRaisesMax(t *testing.T) {
	constraints := squad.FromDefaults(defaults())
	constraints.SetOverseasMax(3)
	constraints.SetOverseasMin(6)
	require.Equal(t, 6, constraints.Overseas.Min)
	require.Equal(t, 6, constraints.Overseas.Max)
}

func TestCoerce(t *testing.T) {
	require.Equal(t, 12, squad.CoerceInt("12"))
	require.Equal(t, 0, squad.CoerceInt("twelve"))
	require.Equal(t, 0, squad.CoerceInt(""))
	require.InEpsilon(t, 90.5, squad.CoerceFloat("90.5"), 1e-9)
	require.Zero(t, squad.CoerceFloat("ninety"))
}
