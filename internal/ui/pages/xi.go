package pages

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/component"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	"github.com/cricsim/auction-tui/internal/xi"
)

type xiFieldIdx int

const (
	xiFieldTeam xiFieldIdx = iota
	xiFieldOpponent
	xiFieldVenue
	xiFieldPitch
	xiFieldToss
	xiFieldMaxOverseas
)

// Context only, the predictor derives pitch behaviour and overseas slots on
// its own.
var maxOverseasOptions = []string{"4", "3", "2", "1", "0"}

// XISection is the starting XI predictor. A small form picks the match
// context, the result renders as the XI table plus the pitch read.
type XISection struct {
	fields     []*component.SelectModel
	focusIndex xiFieldIdx
	table      component.TableXIModel
	pitch      component.PitchPanelModel
	client     *xi.Client
	loading    bool
	lastErr    error
	viewState  model.ViewState
}

func NewXISection(client *xi.Client) *XISection {
	fields := []*component.SelectModel{
		component.NewSelectModel("Team", xi.TeamCodes),
		component.NewSelectModel("Opponent", xi.TeamCodes),
		component.NewSelectModel("Venue", xi.Venues),
		component.NewSelectModel("Pitch", xi.PitchConditions),
		component.NewSelectModel("Toss", xi.TossDecisions),
		component.NewSelectModel("Max overseas", maxOverseasOptions),
	}
	fields[xiFieldTeam].Focus()

	return &XISection{
		fields: fields,
		table:  component.NewTableXIModel(),
		pitch:  component.NewPitchPanelModel(),
		client: client,
	}
}

func (m *XISection) Init() tea.Cmd {
	return nil
}

func (m *XISection) Request() xi.Request {
	return xi.Request{
		TeamCode:     m.fields[xiFieldTeam].Value(),
		Venue:        m.fields[xiFieldVenue].Value(),
		TossDecision: m.fields[xiFieldToss].Value(),
	}
}

func (m *XISection) Update(msg tea.Msg) (*XISection, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		// A config change supersedes any in flight prediction; its response
		// will be dropped as stale, so settle the form here.
		m.loading = false
	case command.XIMsg:
		m.loading = false
		m.lastErr = msg.Err
		if msg.Err != nil {
			return m.propagate(msg, command.SetStatusMessage(msg.Err.Error(), true))
		}
	case tea.KeyMsg:
		if !m.active() || m.viewState.KeyZone != model.KZxiForm {
			break
		}
		switch {
		case key.Matches(msg, input.Default.Up):
			m.moveFocus(-1)
		case key.Matches(msg, input.Default.Down):
			m.moveFocus(1)
		case key.Matches(msg, input.Default.Toggle):
			m.fields[m.focusIndex].Next()
		case key.Matches(msg, input.Default.Accept):
			m.loading = true

			return m.propagate(msg, command.FetchXI(m.client, m.viewState.Gen, m.Request()))
		}
	}

	return m.propagate(msg)
}

func (m *XISection) moveFocus(delta int) {
	next := int(m.focusIndex) + delta
	if next < int(xiFieldTeam) || next > int(xiFieldMaxOverseas) {
		return
	}

	m.focusIndex = xiFieldIdx(next)
	for idx, field := range m.fields {
		if xiFieldIdx(idx) == m.focusIndex {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

func (m *XISection) active() bool {
	return m.viewState.Page == model.PageMain && m.viewState.Section == model.SectionXI
}

func (m *XISection) propagate(msg tea.Msg, extra ...tea.Cmd) (*XISection, tea.Cmd) {
	cmds := make([]tea.Cmd, 2, 2+len(extra))

	m.table, cmds[0] = m.table.Update(msg)
	m.pitch, cmds[1] = m.pitch.Update(msg)
	cmds = append(cmds, extra...)

	return m, tea.Batch(cmds...)
}

func (m *XISection) View() string {
	rows := make([]string, 0, len(m.fields)+1)
	for _, field := range m.fields {
		rows = append(rows, field.View())
	}
	if m.loading {
		rows = append(rows, styles.HelpStyle.Render("predicting..."))
	} else {
		rows = append(rows, styles.HelpStyle.Render("(space cycle  enter predict)"))
	}

	formHeight := 11
	form := model.Container("Match", m.viewState.Width-2, formHeight,
		lipgloss.JoinVertical(lipgloss.Top, rows...),
		m.viewState.KeyZone == model.KZxiForm)

	height := m.viewState.Lower - formHeight - 6
	leftWidth := (m.viewState.Width - 4) * 2 / 3
	rightWidth := m.viewState.Width - 4 - leftWidth

	return lipgloss.JoinVertical(lipgloss.Top,
		form,
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.table.Render(leftWidth, height),
			m.pitch.Render(rightWidth, height)))
}
