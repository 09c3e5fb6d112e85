package component

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/cricsim/auction-tui/internal/player"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/exp/slices"
)

// playersTableCol defines all available columns for the player tables.
type playersTableCol int

const (
	colPicked playersTableCol = iota
	colName
	colRole
	colNat
	colBasePrice
	colPredicted
	colImpact
	colEfficiency
	colOutcome
	colTeam
	colPrice
	colStatus
)

// playersTableColSize defines the sizes of the player columns.
type playersTableColSize int

const (
	colPickedSize     playersTableColSize = 3
	colNameSize       playersTableColSize = 0
	colRoleSize       playersTableColSize = 13
	colNatSize        playersTableColSize = 5
	colBasePriceSize  playersTableColSize = 9
	colPredictedSize  playersTableColSize = 9
	colImpactSize     playersTableColSize = 8
	colEfficiencySize playersTableColSize = 8
	colOutcomeSize    playersTableColSize = 8
	colTeamSize       playersTableColSize = 18
	colPriceSize      playersTableColSize = 9
	colStatusSize     playersTableColSize = 8
)

var (
	auctionColumns   = []playersTableCol{colName, colRole, colNat, colBasePrice, colPredicted, colImpact, colEfficiency, colOutcome}
	analyticsColumns = []playersTableCol{colName, colRole, colNat, colTeam, colPrice, colStatus}
	poolColumns      = []playersTableCol{colPicked, colName, colRole, colNat, colPredicted}
	pickedColumns    = []playersTableCol{colName, colRole, colNat, colPredicted}
)

func colSize(col playersTableCol) playersTableColSize {
	switch col {
	case colPicked:
		return colPickedSize
	case colRole:
		return colRoleSize
	case colNat:
		return colNatSize
	case colBasePrice:
		return colBasePriceSize
	case colPredicted:
		return colPredictedSize
	case colImpact:
		return colImpactSize
	case colEfficiency:
		return colEfficiencySize
	case colOutcome:
		return colOutcomeSize
	case colTeam:
		return colTeamSize
	case colPrice:
		return colPriceSize
	case colStatus:
		return colStatusSize
	case colName:
		fallthrough
	default:
		return colNameSize
	}
}

func colHeader(col playersTableCol) (string, string) {
	switch col {
	case colPicked:
		return "picked", " "
	case colName:
		return "name", "Name"
	case colRole:
		return "role", "Role"
	case colNat:
		return "nat", "Nat"
	case colBasePrice:
		return "base", "Base Cr"
	case colPredicted:
		return "predicted", "Pred Cr"
	case colImpact:
		return "impact", "Impact"
	case colEfficiency:
		return "efficiency", "Effic"
	case colOutcome:
		return "outcome", "Outcome"
	case colTeam:
		return "team", "Team"
	case colPrice:
		return "price", "Price Cr"
	case colStatus:
		return "status", "Status"
	}

	return "", ""
}

func newTablePlayersData(parentZoneID string, players []player.Player, cols []playersTableCol) *tablePlayersData {
	return &tablePlayersData{
		zoneID:         parentZoneID,
		players:        players,
		enabledColumns: cols,
		sortColumn:     colName,
		asc:            true,
		picked:         map[string]bool{},
	}
}

type tablePlayersData struct {
	zoneID         string
	players        []player.Player
	enabledColumns []playersTableCol
	sortColumn     playersTableCol
	asc            bool
	picked         map[string]bool
}

func (m *tablePlayersData) Headers() []string {
	var headers []string
	for _, col := range m.enabledColumns {
		markID, label := colHeader(col)
		headers = append(headers, zone.Mark(m.zoneID+markID, label))
	}

	return headers
}

func (m *tablePlayersData) Sort(column playersTableCol, asc bool) {
	m.sortColumn = column
	m.asc = asc

	slices.SortStableFunc(m.players, func(a player.Player, b player.Player) int { //nolint:varnamelen
		switch m.sortColumn {
		case colName:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case colRole:
			return cmp.Compare(a.Role, b.Role)
		case colNat, colPicked:
			return cmp.Compare(a.Nationality, b.Nationality)
		case colBasePrice:
			return cmpFloatPtr(a.BasePriceCr, b.BasePriceCr)
		case colPredicted, colPrice:
			return cmpFloatPtr(a.PriceCr, b.PriceCr)
		case colImpact:
			return cmpFloatPtr(a.ImpactScore, b.ImpactScore)
		case colEfficiency:
			return cmpFloatPtr(a.EfficiencyScore, b.EfficiencyScore)
		case colOutcome:
			return strings.Compare(strings.ToLower(a.Outcome), strings.ToLower(b.Outcome))
		case colTeam:
			return strings.Compare(strings.ToLower(a.Team), strings.ToLower(b.Team))
		case colStatus:
			return cmp.Compare(a.Status, b.Status)
		default:
			return 0
		}
	})

	if !m.asc {
		slices.Reverse(m.players)
	}
}

func cmpFloatPtr(a *float64, b *float64) int {
	left := -1.0
	if a != nil {
		left = *a
	}
	right := -1.0
	if b != nil {
		right = *b
	}

	return cmp.Compare(left, right)
}

func (m *tablePlayersData) At(row int, col int) string {
	if col > len(m.enabledColumns)-1 {
		return "oobcol"
	}
	if row > len(m.players)-1 {
		return "oobrow"
	}
	curCol := m.enabledColumns[col]
	entry := m.players[row]
	switch curCol {
	case colPicked:
		if m.picked[entry.ID] {
			return "✓"
		}

		return " "
	case colName:
		return zone.Mark(m.zoneID+entry.ID, entry.Name)
	case colRole:
		return entry.Role.Label()
	case colNat:
		if entry.Overseas() {
			return "OVS"
		}

		return "IND"
	case colBasePrice:
		return priceCell(entry.BasePriceCr)
	case colPredicted, colPrice:
		return entry.PriceDisplay()
	case colImpact:
		return scoreCell(entry.ImpactScore)
	case colEfficiency:
		return scoreCell(entry.EfficiencyScore)
	case colOutcome:
		return entry.Outcome
	case colTeam:
		return entry.Team
	case colStatus:
		return entry.Status.String()
	}

	return "?"
}

func priceCell(value *float64) string {
	if value == nil {
		return "-"
	}

	return strconv.FormatFloat(*value, 'f', 2, 64)
}

func scoreCell(value *float64) string {
	if value == nil {
		return "-"
	}

	return strconv.FormatFloat(*value, 'f', 1, 64)
}

func (m *tablePlayersData) Rows() int {
	return len(m.players)
}

func (m *tablePlayersData) Columns() int {
	return len(m.enabledColumns)
}
