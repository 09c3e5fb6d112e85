package squad

import (
	"strings"

	"github.com/cricsim/auction-tui/internal/player"
)

// Wildcard disables an individual filter predicate.
const Wildcard = "all"

// Filter is the client side view filter. Every active predicate must hold;
// a Wildcard (or empty search) predicate always holds.
type Filter struct {
	Role        string
	Nationality string
	Status      string
	Search      string
}

func NewFilter() Filter {
	return Filter{Role: Wildcard, Nationality: Wildcard, Status: Wildcard}
}

func (f Filter) Match(candidate player.Player) bool {
	if f.Role != Wildcard && f.Role != candidate.Role.String() {
		return false
	}

	if f.Nationality != Wildcard && f.Nationality != candidate.Nationality.String() {
		return false
	}

	if f.Status != Wildcard && f.Status != candidate.Status.String() {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		name := strings.ToLower(candidate.Name)
		team := strings.ToLower(candidate.Team)
		if !strings.Contains(name, needle) && !(team != "" && strings.Contains(team, needle)) {
			return false
		}
	}

	return true
}

// Apply returns the players passing the filter, preserving input order.
func Apply(players []player.Player, filter Filter) []player.Player {
	var matched []player.Player
	for _, candidate := range players {
		if filter.Match(candidate) {
			matched = append(matched, candidate)
		}
	}

	return matched
}
