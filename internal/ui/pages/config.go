package pages

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/component"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
)

type configIdx int

const (
	fieldAuctionURL configIdx = iota
	fieldXIURL
	fieldYear
	fieldBudget
	fieldTeamSize
	fieldOverseasMin
	fieldOverseasMax
	fieldBattersMin
	fieldBattersMax
	fieldBowlersMin
	fieldBowlersMax
	fieldAllRoundersMin
	fieldAllRoundersMax
	fieldKeepersMin
	fieldKeepersMax
	fieldSave
)

type Config struct {
	fields     []*component.ValidatingTextInputModel
	focusIndex configIdx
	config     config.Config
	viewState  model.ViewState
	loader     config.Writer
}

func NewConfig(conf config.Config, loader config.Writer) *Config {
	return &Config{
		config: conf,
		fields: []*component.ValidatingTextInputModel{
			component.NewValidatingTextInputModel("Auction API Base URL", conf.AuctionAPIBaseURL, "", component.URLValidator{}),
			component.NewValidatingTextInputModel("Best XI API Base URL", conf.XIAPIBaseURL, "", component.URLValidator{}),
			component.NewValidatingTextInputModel("Season Year", strconv.Itoa(conf.Year), "2025", component.IntValidator{Min: 2008, Max: 2100}),
			component.NewValidatingTextInputModel("Budget (Cr)", strconv.FormatFloat(conf.Squad.BudgetCr, 'f', -1, 64), "90", component.FloatValidator{Min: 1, Max: 1000}),
			component.NewValidatingTextInputModel("Squad Size", strconv.Itoa(conf.Squad.TeamSize), "25", component.IntValidator{Min: 1, Max: 25}),
			component.NewValidatingTextInputModel("Overseas Min", strconv.Itoa(conf.Squad.OverseasMin), "2", component.IntValidator{Min: 0, Max: 8}),
			component.NewValidatingTextInputModel("Overseas Max", strconv.Itoa(conf.Squad.OverseasMax), "8", component.IntValidator{Min: 0, Max: 8}),
			component.NewValidatingTextInputModel("Batters Min", strconv.Itoa(conf.Squad.BattersMin), "6", component.IntValidator{Min: 0, Max: 25}),
			component.NewValidatingTextInputModel("Batters Max", strconv.Itoa(conf.Squad.BattersMax), "8", component.IntValidator{Min: 0, Max: 25}),
			component.NewValidatingTextInputModel("Bowlers Min", strconv.Itoa(conf.Squad.BowlersMin), "6", component.IntValidator{Min: 0, Max: 25}),
			component.NewValidatingTextInputModel("Bowlers Max", strconv.Itoa(conf.Squad.BowlersMax), "8", component.IntValidator{Min: 0, Max: 25}),
			component.NewValidatingTextInputModel("All-Rounders Min", strconv.Itoa(conf.Squad.AllRoundersMin), "2", component.IntValidator{Min: 0, Max: 25}),
			component.NewValidatingTextInputModel("All-Rounders Max", strconv.Itoa(conf.Squad.AllRoundersMax), "4", component.IntValidator{Min: 0, Max: 25}),
			component.NewValidatingTextInputModel("Keepers Min", strconv.Itoa(conf.Squad.WicketKeepersMin), "2", component.IntValidator{Min: 0, Max: 25}),
			component.NewValidatingTextInputModel("Keepers Max", strconv.Itoa(conf.Squad.WicketKeepersMax), "3", component.IntValidator{Min: 0, Max: 25}),
		},
		focusIndex: fieldAuctionURL,
		loader:     loader,
	}
}

func (m *Config) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return m.config
	})
}

func (m *Config) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.fields)+1)
	for idx := range m.fields {
		var cmd tea.Cmd
		m.fields[idx], cmd = m.fields[idx].Update(msg)
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.KeyMsg:
		if m.viewState.Page != model.PageConfig {
			break
		}
		switch {
		case key.Matches(msg, input.Default.Back):
			// go back to main view
			m.viewState.Page = model.PageMain
			cmds = append(cmds, command.SetViewState(m.viewState))
		case key.Matches(msg, input.Default.Reset):
			m.resetDefaults()

			return m, tea.Batch(
				command.ClearSquad(),
				command.SetStatusMessage("Restored default settings", false))
		case key.Matches(msg, input.Default.Up):
			if m.focusIndex > 0 && m.focusIndex <= fieldSave {
				cmds = append(cmds, m.changeInput(input.Up))
			}
		case key.Matches(msg, input.Default.Down):
			if m.focusIndex >= 0 && m.focusIndex < fieldSave {
				cmds = append(cmds, m.changeInput(input.Down))
			}
		case key.Matches(msg, input.Default.Accept):
			if m.focusIndex != fieldSave {
				cmds = append(cmds, m.changeInput(input.Down))

				break
			}

			for _, field := range m.fields {
				if field.Input.Err != nil {
					return m, command.SetStatusMessage("Config is not valid, cannot save", true)
				}
			}

			cfg := m.config
			cfg.AuctionAPIBaseURL = m.fields[fieldAuctionURL].Input.Value()
			cfg.XIAPIBaseURL = m.fields[fieldXIURL].Input.Value()
			cfg.Year = squad.CoerceInt(m.fields[fieldYear].Input.Value())
			cfg.Squad.BudgetCr = squad.CoerceFloat(m.fields[fieldBudget].Input.Value())
			cfg.Squad.TeamSize = squad.CoerceInt(m.fields[fieldTeamSize].Input.Value())
			// The overseas bounds clamp each other so min <= max always
			// holds; the max field sits below min and wins a conflict.
			constraints := squad.FromDefaults(cfg.Squad)
			constraints.SetOverseasMin(squad.CoerceInt(m.fields[fieldOverseasMin].Input.Value()))
			constraints.SetOverseasMax(squad.CoerceInt(m.fields[fieldOverseasMax].Input.Value()))
			cfg.Squad.OverseasMin = constraints.Overseas.Min
			cfg.Squad.OverseasMax = constraints.Overseas.Max
			m.fields[fieldOverseasMin].Input.SetValue(strconv.Itoa(cfg.Squad.OverseasMin))
			m.fields[fieldOverseasMax].Input.SetValue(strconv.Itoa(cfg.Squad.OverseasMax))

			// Role bounds carry no cross field validation, a min above its
			// max is accepted as entered.
			cfg.Squad.BattersMin = squad.CoerceInt(m.fields[fieldBattersMin].Input.Value())
			cfg.Squad.BattersMax = squad.CoerceInt(m.fields[fieldBattersMax].Input.Value())
			cfg.Squad.BowlersMin = squad.CoerceInt(m.fields[fieldBowlersMin].Input.Value())
			cfg.Squad.BowlersMax = squad.CoerceInt(m.fields[fieldBowlersMax].Input.Value())
			cfg.Squad.AllRoundersMin = squad.CoerceInt(m.fields[fieldAllRoundersMin].Input.Value())
			cfg.Squad.AllRoundersMax = squad.CoerceInt(m.fields[fieldAllRoundersMax].Input.Value())
			cfg.Squad.WicketKeepersMin = squad.CoerceInt(m.fields[fieldKeepersMin].Input.Value())
			cfg.Squad.WicketKeepersMax = squad.CoerceInt(m.fields[fieldKeepersMax].Input.Value())

			if err := m.loader.Write(cfg); err != nil {
				return m, command.SetStatusMessage(err.Error(), true)
			}

			m.config = cfg
			m.viewState.Page = model.PageMain

			return m, tea.Batch(
				command.SetConfig(cfg),
				command.SetStatusMessage("Saved config", false),
				command.SetViewState(m.viewState))
		}
	}

	return m, tea.Batch(cmds...)
}

// resetDefaults restores the stock squad constraints into the form, wiping
// any validation errors with them. Backend URLs and the season year are left
// alone.
func (m *Config) resetDefaults() {
	defaults := map[configIdx]string{
		fieldBudget:         "90",
		fieldTeamSize:       "25",
		fieldOverseasMin:    "2",
		fieldOverseasMax:    "8",
		fieldBattersMin:     "6",
		fieldBattersMax:     "8",
		fieldBowlersMin:     "6",
		fieldBowlersMax:     "8",
		fieldAllRoundersMin: "2",
		fieldAllRoundersMax: "4",
		fieldKeepersMin:     "2",
		fieldKeepersMax:     "3",
	}
	for idx, value := range defaults {
		m.fields[idx].Input.SetValue(value)
		m.fields[idx].Input.Err = nil
	}
}

func (m *Config) changeInput(dir input.Direction) tea.Cmd {
	switch dir { //nolint:exhaustive
	case input.Up:
		m.focusIndex--
	case input.Down:
		m.focusIndex++
	default:
		return nil
	}

	var cmd tea.Cmd
	for i := range m.fields {
		if configIdx(i) == m.focusIndex {
			cmd = m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}

	return cmd
}

func (m *Config) View() string {
	fields := make([]string, 0, len(m.fields)+1)
	for _, field := range m.fields {
		fields = append(fields, field.View())
	}

	if m.focusIndex == fieldSave {
		fields = append(fields, styles.FocusedSubmitButton)
	} else {
		fields = append(fields, styles.BlurredSubmitButton)
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Align(lipgloss.Left).
		Render(lipgloss.JoinVertical(lipgloss.Top, fields...))
}
