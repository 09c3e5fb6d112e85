// Package player defines the canonical player record and the normalization
// rules used to map the backend wire shapes onto it.
package player

import (
	"fmt"
	"strings"
)

// CroreUnits is the number of base currency units in one crore.
const CroreUnits = 10_000_000

// Role is the closed category set all free-text role strings resolve into.
type Role int

const (
	Batter Role = iota
	Bowler
	AllRounder
	WicketKeeper
)

func (r Role) String() string {
	switch r {
	case Bowler:
		return "bowler"
	case AllRounder:
		return "allrounder"
	case WicketKeeper:
		return "wicketkeeper"
	case Batter:
		fallthrough
	default:
		return "batter"
	}
}

// Label returns the display form of the role.
func (r Role) Label() string {
	switch r {
	case Bowler:
		return "Bowler"
	case AllRounder:
		return "All-Rounder"
	case WicketKeeper:
		return "Wicket-Keeper"
	case Batter:
		fallthrough
	default:
		return "Batter"
	}
}

// ParseRole resolves a free-text role string into the closed category set.
// Matching is case-insensitive with a fixed priority order: "bowl" wins over
// "all", which wins over "keep"/"wk". Anything else, including an empty or
// missing value, is a batter.
func ParseRole(raw string) Role {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(value, "bowl"):
		return Bowler
	case strings.Contains(value, "all"):
		return AllRounder
	case strings.Contains(value, "keep") || value == "wk":
		return WicketKeeper
	default:
		return Batter
	}
}

// Nationality is the unified coarse bucket. The two backends expose it
// differently, so each wire shape keeps its own parse rule (BucketCountry,
// BucketNationality) but both resolve into this single representation.
type Nationality int

const (
	Indian Nationality = iota
	Overseas
)

func (n Nationality) String() string {
	if n == Overseas {
		return "Overseas"
	}

	return "Indian"
}

// BucketCountry maps the auction service country_bucket field. The backend
// emits the literal "Indian" for domestic players, compared case-sensitively.
func BucketCountry(raw string) Nationality {
	if raw == "Indian" {
		return Indian
	}

	return Overseas
}

// BucketNationality maps the analytics and XI shapes, which carry a free
// country string compared case-insensitively against "india".
func BucketNationality(raw string) Nationality {
	if strings.EqualFold(strings.TrimSpace(raw), "india") {
		return Indian
	}

	return Overseas
}

// Status is the auction outcome carried only by the analytics shape.
type Status int

const (
	StatusUnknown Status = iota
	StatusSold
	StatusUnsold
)

func (s Status) String() string {
	switch s {
	case StatusSold:
		return "sold"
	case StatusUnsold:
		return "unsold"
	case StatusUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sold":
		return StatusSold
	case "unsold":
		return StatusUnsold
	default:
		return StatusUnknown
	}
}

// Crore converts a price in base currency units into crore.
func Crore(base float64) float64 {
	return base / CroreUnits
}

// BaseUnits converts a crore figure back into base currency units.
func BaseUnits(crore float64) float64 {
	return crore * CroreUnits
}

// Player is the canonical record every backend player shape normalizes into.
type Player struct {
	// ID is synthesized from the name and batch position. It is stable only
	// within one normalization pass and must never be treated as a durable
	// cross-fetch identity.
	ID          string
	Name        string
	Role        Role
	Nationality Nationality
	// PriceCr is the predicted price in crore. nil means no prediction is
	// available for this player.
	PriceCr         *float64
	BasePriceCr     *float64
	ImpactScore     *float64
	EfficiencyScore *float64
	// Outcome is the predicted auction outcome string from the price table
	// shape, e.g. "SOLD".
	Outcome string
	// Status and Team are only populated by the analytics shape.
	Status Status
	Team   string
}

func (p Player) Overseas() bool {
	return p.Nationality == Overseas
}

// PriceDisplay formats the predicted price to two decimal places, or a dash
// when no prediction exists. Rounding happens only here, never during
// conversion.
func (p Player) PriceDisplay() string {
	if p.PriceCr == nil {
		return "-"
	}

	return fmt.Sprintf("%.2f", *p.PriceCr)
}

// ID synthesizes the transient batch identifier. An empty name falls back to
// the literal "player".
func ID(name string, index int) string {
	if name == "" {
		name = "player"
	}

	return fmt.Sprintf("%s-%d", name, index)
}
