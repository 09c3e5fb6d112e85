package squad

import (
	"github.com/cricsim/auction-tui/internal/player"
	"golang.org/x/exp/slices"
)

// Selection is the user curated squad, kept in pick order. Identity is the
// transient batch ID, so duplicates across fetches are possible and accepted.
type Selection struct {
	players []player.Player
}

func NewSelection(players []player.Player) *Selection {
	return &Selection{players: players}
}

// Players returns the selection in pick order. The result is a copy so
// callers sorting or retaining it cannot disturb that order.
func (s *Selection) Players() []player.Player {
	return slices.Clone(s.players)
}

func (s *Selection) Count() int {
	return len(s.players)
}

// Contains reports whether a record with the given batch ID is selected.
func (s *Selection) Contains(id string) bool {
	for _, current := range s.players {
		if current.ID == id {
			return true
		}
	}

	return false
}

// Toggle adds the player, or removes it when already selected. Returns true
// when the player ends up selected.
func (s *Selection) Toggle(pick player.Player) bool {
	if s.Contains(pick.ID) {
		s.Remove(pick.ID)

		return false
	}

	s.players = append(s.players, pick)

	return true
}

func (s *Selection) Remove(id string) {
	for idx, current := range s.players {
		if current.ID == id {
			s.players = append(s.players[:idx], s.players[idx+1:]...)

			return
		}
	}
}

func (s *Selection) Clear() {
	s.players = nil
}

// Replace swaps the entire selection, used when adopting a persisted list or
// a fresh backend suggestion.
func (s *Selection) Replace(players []player.Player) {
	s.players = players
}

func (s *Selection) OverseasCount() int {
	count := 0
	for _, current := range s.players {
		if current.Overseas() {
			count++
		}
	}

	return count
}

// RoleCount tallies selected players in one role category.
func (s *Selection) RoleCount(role player.Role) int {
	count := 0
	for _, current := range s.players {
		if current.Role == role {
			count++
		}
	}

	return count
}

// BudgetUsedCr sums the selected prices in crore. A missing prediction
// counts as zero.
func (s *Selection) BudgetUsedCr() float64 {
	total := 0.0
	for _, current := range s.players {
		if current.PriceCr != nil {
			total += *current.PriceCr
		}
	}

	return total
}

// BudgetLeftCr is the remaining budget floored at zero; it never goes
// negative no matter how far the selection overshoots.
func (s *Selection) BudgetLeftCr(budgetCr float64) float64 {
	left := budgetCr - s.BudgetUsedCr()
	if left < 0 {
		return 0
	}

	return left
}
