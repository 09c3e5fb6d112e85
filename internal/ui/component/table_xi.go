package component

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	"github.com/cricsim/auction-tui/internal/xi"
)

// TableXIModel renders the predicted starting eleven plus the impact player.
type TableXIModel struct {
	selection xi.Selection
	hasResult bool
	table     *table.Table
	viewState model.ViewState
}

func NewTableXIModel() TableXIModel {
	return TableXIModel{table: NewUnstyledTable()}
}

func (m TableXIModel) Init() tea.Cmd {
	return nil
}

func (m TableXIModel) Update(msg tea.Msg) (TableXIModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.XIMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.selection = msg.Selection
		m.hasResult = true
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m TableXIModel) Render(width int, height int) string {
	active := m.viewState.KeyZone == model.KZxiTable

	if !m.hasResult {
		return model.Container("Starting XI", width, height,
			styles.InfoMessage.Render("Pick a team, venue and toss call, then press enter"), active)
	}

	rows := make([][]string, 0, len(m.selection.StartingXI)+1)
	for idx, pick := range m.selection.StartingXI {
		rows = append(rows, xiRow(strconv.Itoa(idx+1), pick))
	}
	if m.selection.ImpactPlayer != nil {
		rows = append(rows, xiRow(styles.IconImpact, *m.selection.ImpactPlayer))
	}

	content := m.table.
		Width(width - 2).
		Headers("#", "Name", "Role", "Nat", "Score").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.HeaderStyle
			case row%2 == 0:
				return styles.TableRow
			default:
				return styles.TableRowOdd
			}
		}).
		String()

	return model.Container("Starting XI: "+m.selection.TeamCode, width, height, content, active)
}

func xiRow(marker string, pick xi.Pick) []string {
	nat := "IND"
	if pick.Nationality == player.Overseas {
		nat = "OVS"
	}

	return []string{
		marker,
		pick.Name,
		pick.Role.Label(),
		nat,
		strconv.FormatFloat(pick.FinalScore, 'f', 2, 64),
	}
}
