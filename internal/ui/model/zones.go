package model

import (
	"slices"

	"github.com/cricsim/auction-tui/internal/ui/input"
)

var (
	AuctionZones   = KeyZoneGroup{KZauctionTable, KZauctionDetail}
	AnalyticsZones = KeyZoneGroup{KZanalyticsTable}
	SquadZones     = KeyZoneGroup{KZsquadTable, KZsquadSelected}
	XIZones        = KeyZoneGroup{KZxiForm, KZxiTable}
)

// KeyZone defines the distinct areas of the ui in which the keyboard can be interacted with.
// Only one zone, with the addition of the default global zone, will be active at any one time.
type KeyZone int

const (
	KZauctionTable KeyZone = iota
	KZauctionDetail
	KZanalyticsTable
	KZsquadTable
	KZsquadSelected
	KZxiForm
	KZxiTable
	KZconfigInput
)

type KeyZoneGroup []KeyZone

func (z KeyZoneGroup) Next(current KeyZone, dir input.Direction) KeyZone {
	index := slices.Index(z, current)
	if index == -1 {
		return z[0]
	}

	switch dir {
	case input.Left:
		// Wrap into the last entry
		if index-1 < 0 {
			return z[len(z)-1]
		}

		return z[index-1]
	case input.Right:
		// Wrap into the first entry
		if index+1 >= len(z) {
			return z[0]
		}

		return z[index+1]
	default:
		return current
	}
}
