package component

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/exp/slices"
)

// TableVariant selects the column set of a player table. The owning page
// feeds rows in so its filters always apply.
type TableVariant int

const (
	TableAuction TableVariant = iota
	TableAnalytics
	TableSquadPool
	TableSquadPicked
)

func NewTablePlayersModel(variant TableVariant, title string, keyZone model.KeyZone) *TablePlayersModel {
	zoneID := zone.NewPrefix()

	var cols []playersTableCol
	switch variant {
	case TableAnalytics:
		cols = analyticsColumns
	case TableSquadPool:
		cols = poolColumns
	case TableSquadPicked:
		cols = pickedColumns
	case TableAuction:
		fallthrough
	default:
		cols = auctionColumns
	}

	return &TablePlayersModel{
		id:      zoneID,
		variant: variant,
		title:   title,
		keyZone: keyZone,
		cols:    cols,
		table:   NewUnstyledTable(),
		data:    newTablePlayersData(zoneID, nil, cols),
	}
}

type TablePlayersModel struct {
	id         string
	variant    TableVariant
	title      string
	keyZone    model.KeyZone
	cols       []playersTableCol
	table      *table.Table
	data       *tablePlayersData
	selectedID string
	viewState  model.ViewState
	widthPct   float64
}

func (m *TablePlayersModel) Init() tea.Cmd {
	return nil
}

// SetPlayers replaces the table contents, keeping the current sort order.
// The slice is copied, the caller keeps its own ordering.
func (m *TablePlayersModel) SetPlayers(players []player.Player) {
	picked := m.data.picked
	m.data = newTablePlayersData(m.id, slices.Clone(players), m.cols)
	m.data.picked = picked
	m.data.Sort(m.data.sortColumn, m.data.asc)
	m.table.Data(m.data)
}

// SetPicked marks the rows rendered with a pick indicator.
func (m *TablePlayersModel) SetPicked(ids map[string]bool) {
	m.data.picked = ids
}

func (m *TablePlayersModel) Players() []player.Player {
	return m.data.players
}

// Selected returns the currently highlighted player.
func (m *TablePlayersModel) Selected() (player.Player, bool) {
	for _, entry := range m.data.players {
		if entry.ID == m.selectedID {
			return entry, true
		}
	}

	return player.Player{}, false
}

func (m *TablePlayersModel) Update(msg tea.Msg) (*TablePlayersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg

		return m, nil
	case command.SortMsg[playersTableCol]:
		m.data.Sort(msg.SortColumn, msg.Asc)
		m.table.Data(m.data)

		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for _, item := range m.data.players {
			// Check each item to see if it's in bounds.
			if zone.Get(m.id + item.ID).InBounds(msg) {
				m.selectedID = item.ID

				return m, tea.Batch(
					command.SetKeyZone(m.keyZone),
					command.SelectPlayer(item))
			}
		}

		for _, col := range m.cols {
			markID, _ := colHeader(col)
			if zone.Get(m.id + markID).InBounds(msg) {
				m.data.Sort(col, !m.data.asc)
				m.table.Data(m.data)

				return m, nil
			}
		}

		return m, nil
	case tea.KeyMsg:
		if !m.isActiveZone() {
			break
		}
		switch {
		case key.Matches(msg, input.Default.Up):
			return m, m.moveSelection(input.Up)
		case key.Matches(msg, input.Default.Down):
			return m, m.moveSelection(input.Down)
		}
	}

	return m, nil
}

func (m *TablePlayersModel) isActiveZone() bool {
	return m.viewState.KeyZone == m.keyZone && m.viewState.Page == model.PageMain
}

func (m *TablePlayersModel) moveSelection(dir input.Direction) tea.Cmd {
	currentRow := m.currentRowIndex()
	switch dir { //nolint:exhaustive
	case input.Up:
		if currentRow < 0 && len(m.data.players) > 0 {
			m.selectedID = m.data.players[len(m.data.players)-1].ID

			break
		}
		if currentRow <= 0 {
			break
		}
		m.selectedID = m.data.players[currentRow-1].ID
	case input.Down:
		if currentRow < 0 && len(m.data.players) > 0 {
			m.selectedID = m.data.players[0].ID

			break
		}
		if currentRow >= len(m.data.players)-1 {
			break
		}
		m.selectedID = m.data.players[currentRow+1].ID
	default:
		return nil
	}

	if selected, ok := m.Selected(); ok {
		return command.SelectPlayer(selected)
	}

	return nil
}

func (m *TablePlayersModel) currentRowIndex() int {
	for rowIdx, entry := range m.data.players {
		if entry.ID == m.selectedID {
			return rowIdx
		}
	}

	return -1
}

// SelectClosest keeps a row highlighted after the data set changes under the
// cursor.
func (m *TablePlayersModel) SelectClosest() tea.Cmd {
	if len(m.data.players) == 0 {
		m.selectedID = ""

		return nil
	}

	if _, ok := m.Selected(); !ok {
		m.selectedID = m.data.players[0].ID

		return command.SelectPlayer(m.data.players[0])
	}

	return nil
}

func (m *TablePlayersModel) Render(width int, height int) string {
	selectedRowIdx := m.currentRowIndex()

	content := m.table.
		Width(width - 2).
		Headers(m.data.Headers()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if len(m.data.players) == 0 {
				return styles.HeaderStyle
			}

			mappedCol := m.cols[col]
			width := colSize(mappedCol)

			switch {
			case row == table.HeaderRow:
				return styles.HeaderStyle.Width(int(width))
			case row == selectedRowIdx && m.isActiveZone():
				if mappedCol == colName {
					return styles.SelectedCellStyleName.Width(int(width))
				}

				return styles.SelectedCellStyle.Width(int(width))
			case mappedCol == colName:
				return styles.TableRow.Width(int(width))
			case row%2 == 0:
				return styles.TableRow.Width(int(width))
			default:
				return styles.TableRowOdd.Width(int(width))
			}
		}).
		String()

	return model.Container(m.title, width, height, content, m.isActiveZone())
}
