// Package squad holds the squad builder state: the user adjustable
// constraint set, the curated selection with its aggregates, client side
// filtering and CSV export.
package squad

import (
	"strconv"

	"github.com/cricsim/auction-tui/internal/config"
)

// Range is a min/max pair for one role. No cross validation is applied; a
// min above max is accepted as-is except for the overseas range, which is
// clamped by its setters.
type Range struct {
	Min int
	Max int
}

// Constraints is the squad builder form state. Budget is kept in crore.
type Constraints struct {
	TeamSize      int
	Overseas      Range
	BudgetCr      float64
	Batters       Range
	Bowlers       Range
	AllRounders   Range
	WicketKeepers Range
}

// FromDefaults builds the constraint set from the configured defaults.
func FromDefaults(defaults config.SquadDefaults) Constraints {
	return Constraints{
		TeamSize:      defaults.TeamSize,
		Overseas:      Range{Min: defaults.OverseasMin, Max: defaults.OverseasMax},
		BudgetCr:      defaults.BudgetCr,
		Batters:       Range{Min: defaults.BattersMin, Max: defaults.BattersMax},
		Bowlers:       Range{Min: defaults.BowlersMin, Max: defaults.BowlersMax},
		AllRounders:   Range{Min: defaults.AllRoundersMin, Max: defaults.AllRoundersMax},
		WicketKeepers: Range{Min: defaults.WicketKeepersMin, Max: defaults.WicketKeepersMax},
	}
}

// SetOverseasMin raises the max along with the min so min <= max holds after
// every single edit.
func (c *Constraints) SetOverseasMin(value int) {
	c.Overseas.Min = value
	if c.Overseas.Max < value {
		c.Overseas.Max = value
	}
}

// SetOverseasMax lowers the min along with the max, symmetric to SetOverseasMin.
func (c *Constraints) SetOverseasMax(value int) {
	c.Overseas.Max = value
	if c.Overseas.Min > value {
		c.Overseas.Min = value
	}
}

// CoerceInt parses free-form numeric input, falling back to zero. No range
// enforcement happens here; the form widgets bound what they can.
func CoerceInt(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}

// CoerceFloat is CoerceInt for decimal figures such as the budget.
func CoerceFloat(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return value
}
