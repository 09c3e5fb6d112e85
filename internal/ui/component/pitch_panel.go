package component

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	"github.com/cricsim/auction-tui/internal/xi"
	"github.com/muesli/reflow/wordwrap"
)

// PitchPanelModel shows the pitch read behind the latest XI prediction.
type PitchPanelModel struct {
	selection xi.Selection
	hasResult bool
	viewState model.ViewState
}

func NewPitchPanelModel() PitchPanelModel {
	return PitchPanelModel{}
}

func (m PitchPanelModel) Init() tea.Cmd {
	return nil
}

func (m PitchPanelModel) Update(msg tea.Msg) (PitchPanelModel, tea.Cmd) {
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

func (m PitchPanelModel) Render(width int, height int) string {
	if !m.hasResult {
		return model.Container("Pitch", width, height,
			styles.InfoMessage.Render("Run a prediction to see the pitch report"), false)
	}

	notes := wordwrap.String(m.selection.PitchNotes, max(10, width-20))
	rows := []string{
		styles.DetailRow("Venue", m.selection.Venue),
		styles.DetailRow("Pitch", styles.Pitch(m.selection.PitchType).Render(m.selection.PitchType)),
		styles.DetailRow("Notes", notes),
	}

	return model.Container("Pitch: "+m.selection.Venue, width, height,
		lipgloss.JoinVertical(lipgloss.Top, rows...), false)
}
