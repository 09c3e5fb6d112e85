package component

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	"github.com/dustin/go-humanize"
)

// StatsPanelModel summarizes the current squad against its constraints.
type StatsPanelModel struct {
	constraints squad.Constraints
	selection   *squad.Selection
	viewState   model.ViewState
}

func NewStatsPanelModel(constraints squad.Constraints, selection *squad.Selection) StatsPanelModel {
	return StatsPanelModel{constraints: constraints, selection: selection}
}

func (m StatsPanelModel) Init() tea.Cmd {
	return nil
}

func (m StatsPanelModel) Update(msg tea.Msg) (StatsPanelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case squad.Constraints:
		m.constraints = msg
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m StatsPanelModel) Render(width int, height int) string {
	used := m.selection.BudgetUsedCr()
	left := m.selection.BudgetLeftCr(m.constraints.BudgetCr)

	rows := []string{
		styles.DetailRow("Picked", fmt.Sprintf("%d / %d", m.selection.Count(), m.constraints.TeamSize)),
		styles.DetailRow("Overseas", rangeRow(m.selection.OverseasCount(), m.constraints.Overseas)),
		styles.DetailRow("Batters", rangeRow(m.selection.RoleCount(player.Batter), m.constraints.Batters)),
		styles.DetailRow("Bowlers", rangeRow(m.selection.RoleCount(player.Bowler), m.constraints.Bowlers)),
		styles.DetailRow("All-Rounders", rangeRow(m.selection.RoleCount(player.AllRounder), m.constraints.AllRounders)),
		styles.DetailRow("Keepers", rangeRow(m.selection.RoleCount(player.WicketKeeper), m.constraints.WicketKeepers)),
		styles.DetailRow("Spent", croreAmount(used)),
		styles.DetailRow("Remaining", croreAmount(left)),
	}

	return model.Container("Squad", width, height,
		lipgloss.JoinVertical(lipgloss.Top, rows...),
		m.viewState.KeyZone == model.KZsquadSelected)
}

func rangeRow(count int, bounds squad.Range) string {
	row := fmt.Sprintf("%d  [%d-%d]", count, bounds.Min, bounds.Max)
	if count < bounds.Min || count > bounds.Max {
		return styles.StatusError.Render(row)
	}

	return row
}

func croreAmount(crore float64) string {
	return strconv.FormatFloat(crore, 'f', 2, 64) + " Cr  (₹" +
		humanize.CommafWithDigits(player.BaseUnits(crore), 0) + ")"
}
