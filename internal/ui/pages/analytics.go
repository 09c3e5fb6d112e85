package pages

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/auction"
	"github.com/cricsim/auction-tui/internal/cache"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/component"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
)

var (
	roleFilterOptions = []string{squad.Wildcard, "batter", "bowler", "allrounder", "wicketkeeper"}
	natFilterOptions  = []string{squad.Wildcard, "Indian", "Overseas"}
	statFilterOptions = []string{squad.Wildcard, "sold", "unsold", "unknown"}
)

// AnalyticsSection is the full roster browser with role, nationality, status
// and free text filtering.
type AnalyticsSection struct {
	table        *component.TablePlayersModel
	client       *auction.Client
	cacheFS      cache.Cache
	conf         config.Config
	search       *component.ValidatingTextInputModel
	roleSelect   *component.SelectModel
	natSelect    *component.SelectModel
	statusSelect *component.SelectModel
	allPlayers   []player.Player
	viewState    model.ViewState
}

func NewAnalyticsSection(conf config.Config, client *auction.Client, cacheFS cache.Cache) *AnalyticsSection {
	return &AnalyticsSection{
		table:        component.NewTablePlayersModel(component.TableAnalytics, "Roster", model.KZanalyticsTable),
		client:       client,
		cacheFS:      cacheFS,
		conf:         conf,
		search:       component.NewValidatingTextInputModel("Search", "", "name or team"),
		roleSelect:   component.NewSelectModel("Role", roleFilterOptions),
		natSelect:    component.NewSelectModel("Nat", natFilterOptions),
		statusSelect: component.NewSelectModel("Status", statFilterOptions),
	}
}

func (m *AnalyticsSection) Init() tea.Cmd {
	return nil
}

func (m *AnalyticsSection) filter() squad.Filter {
	filter := squad.NewFilter()
	filter.Role = m.roleSelect.Value()
	filter.Nationality = m.natSelect.Value()
	filter.Status = m.statusSelect.Value()
	filter.Search = m.search.Input.Value()

	return filter
}

func (m *AnalyticsSection) applyFilter() tea.Cmd {
	m.table.SetPlayers(squad.Apply(m.allPlayers, m.filter()))

	return m.table.SelectClosest()
}

func (m *AnalyticsSection) Update(msg tea.Msg) (*AnalyticsSection, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		m.conf = msg
	case command.AnalyticsMsg:
		if msg.Err != nil {
			break
		}
		if msg.Cached && len(m.allPlayers) > 0 {
			break
		}
		m.allPlayers = msg.Players

		return m.propagate(msg, m.applyFilter())
	case tea.KeyMsg:
		if !m.active() {
			break
		}

		if m.search.Input.Focused() {
			switch {
			case key.Matches(msg, input.Default.Accept), key.Matches(msg, input.Default.Back):
				m.search.Blur()

				return m.propagate(msg, command.SetInputActive(false))
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)

				return m, tea.Batch(cmd, m.applyFilter())
			}
		}

		switch {
		case key.Matches(msg, input.Default.Search):
			return m, tea.Batch(m.search.Focus(), command.SetInputActive(true))
		case key.Matches(msg, input.Default.FilterRole):
			m.roleSelect.Next()

			return m.propagate(msg, m.applyFilter())
		case key.Matches(msg, input.Default.FilterNat):
			m.natSelect.Next()

			return m.propagate(msg, m.applyFilter())
		case key.Matches(msg, input.Default.FilterStatus):
			m.statusSelect.Next()

			return m.propagate(msg, m.applyFilter())
		case key.Matches(msg, input.Default.Export):
			return m.propagate(msg, command.ExportPlayersCSV(m.table.Players()))
		case key.Matches(msg, input.Default.Refresh):
			return m.propagate(msg, tea.Batch(
				command.StartFetches(1),
				command.FetchAnalytics(m.client, m.cacheFS, m.viewState.Gen, m.conf.Year)))
		}
	}

	return m.propagate(msg)
}

func (m *AnalyticsSection) active() bool {
	return m.viewState.Page == model.PageMain && m.viewState.Section == model.SectionAnalytics
}

func (m *AnalyticsSection) propagate(msg tea.Msg, extra ...tea.Cmd) (*AnalyticsSection, tea.Cmd) {
	cmds := make([]tea.Cmd, 1, 1+len(extra))
	m.table, cmds[0] = m.table.Update(msg)
	cmds = append(cmds, extra...)

	return m, tea.Batch(cmds...)
}

func (m *AnalyticsSection) View() string {
	filterBar := lipgloss.JoinHorizontal(lipgloss.Top,
		m.search.View(), "  ",
		m.roleSelect.View(), "  ",
		m.natSelect.View(), "  ",
		m.statusSelect.View(), "  ",
		styles.HelpStyle.Render("(/ search  f role  n nat  o status)"))

	return lipgloss.JoinVertical(lipgloss.Top,
		filterBar,
		m.table.Render(m.viewState.Width-2, m.viewState.Lower-4))
}
