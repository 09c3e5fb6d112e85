package component

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/auction"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	"github.com/dustin/go-humanize"
)

// DetailPanelModel shows the price breakdown for the highlighted player. The
// selection gives an instant partial view, the detail endpoint fills in the
// rest when it answers.
type DetailPanelModel struct {
	selected  player.Player
	detail    auction.Detail
	hasDetail bool
	fetchErr  error
	viewState model.ViewState
}

func NewDetailPanelModel() DetailPanelModel {
	return DetailPanelModel{}
}

func (m DetailPanelModel) Init() tea.Cmd {
	return nil
}

func (m DetailPanelModel) Update(msg tea.Msg) (DetailPanelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.SelectedPlayerMsg:
		if msg.Player.ID != m.selected.ID {
			m.hasDetail = false
			m.fetchErr = nil
		}
		m.selected = msg.Player
	case command.PlayerDetailMsg:
		if msg.Err != nil {
			m.fetchErr = msg.Err

			return m, nil
		}
		if msg.Detail.Name != m.selected.Name {
			return m, nil
		}
		m.detail = msg.Detail
		m.hasDetail = true
		m.fetchErr = nil
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m DetailPanelModel) Render(height int) string {
	if m.selected.Name == "" {
		return model.Container("Player", m.viewState.Width-2, height,
			styles.InfoMessage.Render("Select a player to see the price breakdown"),
			m.viewState.KeyZone == model.KZauctionDetail)
	}

	rows := []string{
		styles.DetailRow("Name", m.selected.Name),
		styles.DetailRow("Role", m.selected.Role.Label()),
		styles.DetailRow("Nationality", m.selected.Nationality.String()),
	}

	base := m.selected.BasePriceCr
	predicted := m.selected.PriceCr
	impact := m.selected.ImpactScore
	efficiency := m.selected.EfficiencyScore
	outcome := m.selected.Outcome
	if m.hasDetail {
		base = m.detail.BasePriceCr
		predicted = m.detail.PredictedPriceCr
		impact = m.detail.ImpactScore
		efficiency = m.detail.EfficiencyScore
		outcome = m.detail.Outcome
	}

	rows = append(rows,
		styles.DetailRow("Base Price", croreRow(base)),
		styles.DetailRow("Predicted", croreRow(predicted)),
		styles.DetailRow("Impact", scoreCell(impact)),
		styles.DetailRow("Efficiency", scoreCell(efficiency)),
	)

	if outcome != "" {
		rows = append(rows, styles.DetailRow("Outcome", outcome))
	}
	if m.selected.Team != "" {
		rows = append(rows, styles.DetailRow("Team", m.selected.Team))
	}
	if m.selected.Status != player.StatusUnknown {
		rows = append(rows, styles.DetailRow("Status", m.selected.Status.String()))
	}
	if m.fetchErr != nil {
		rows = append(rows, styles.DetailRow("Detail", styles.StatusError.Render("unavailable")))
	}

	return model.Container("Player: "+m.selected.Name, m.viewState.Width-2, height,
		lipgloss.JoinVertical(lipgloss.Top, rows...),
		m.viewState.KeyZone == model.KZauctionDetail)
}

// croreRow renders a crore amount alongside the full rupee figure.
func croreRow(value *float64) string {
	if value == nil {
		return "-"
	}

	return strconv.FormatFloat(*value, 'f', 2, 64) + " Cr  (₹" +
		humanize.CommafWithDigits(player.BaseUnits(*value), 0) + ")"
}
