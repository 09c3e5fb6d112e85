package pages

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/auction"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/squad"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/component"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
)

// SquadSection is the constrained squad builder. The left table is the
// filtered player pool, the right side holds the picked squad and its running
// totals against the configured constraints.
type SquadSection struct {
	pool        *component.TablePlayersModel
	picked      *component.TablePlayersModel
	stats       component.StatsPanelModel
	client      *auction.Client
	store       command.SelectionStore
	conf        config.Config
	constraints squad.Constraints
	selection   *squad.Selection
	search      *component.ValidatingTextInputModel
	roleSelect  *component.SelectModel
	allPlayers  []player.Player
	selected    player.Player
	viewState   model.ViewState
}

func NewSquadSection(conf config.Config, client *auction.Client, store command.SelectionStore, saved []player.Player) *SquadSection {
	constraints := squad.FromDefaults(conf.Squad)
	selection := squad.NewSelection(saved)

	sec := &SquadSection{
		pool:        component.NewTablePlayersModel(component.TableSquadPool, "Player Pool", model.KZsquadTable),
		picked:      component.NewTablePlayersModel(component.TableSquadPicked, "Picked", model.KZsquadSelected),
		stats:       component.NewStatsPanelModel(constraints, selection),
		client:      client,
		store:       store,
		conf:        conf,
		constraints: constraints,
		selection:   selection,
		search:      component.NewValidatingTextInputModel("Search", "", "name"),
		roleSelect:  component.NewSelectModel("Role", roleFilterOptions),
	}
	sec.syncPicked()

	return sec
}

func (m *SquadSection) Init() tea.Cmd {
	return nil
}

func (m *SquadSection) filter() squad.Filter {
	filter := squad.NewFilter()
	filter.Role = m.roleSelect.Value()
	filter.Search = m.search.Input.Value()

	return filter
}

func (m *SquadSection) applyFilter() tea.Cmd {
	m.pool.SetPlayers(squad.Apply(m.allPlayers, m.filter()))

	return m.pool.SelectClosest()
}

// syncPicked pushes the current selection into the picked table, the pool
// markers and the stats panel.
func (m *SquadSection) syncPicked() tea.Cmd {
	picked := map[string]bool{}
	for _, entry := range m.selection.Players() {
		picked[entry.ID] = true
	}

	m.pool.SetPicked(picked)
	m.picked.SetPlayers(m.selection.Players())

	return m.picked.SelectClosest()
}

func (m *SquadSection) Update(msg tea.Msg) (*SquadSection, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		m.conf = msg
		m.constraints = squad.FromDefaults(msg.Squad)
		m.stats, _ = m.stats.Update(m.constraints)
	case command.SelectedPlayerMsg:
		m.selected = msg.Player
	case command.ClearSquadMsg:
		m.selection.Clear()

		return m.propagate(msg, tea.Batch(
			m.syncPicked(),
			command.PersistSelection(m.store, nil)))
	case command.PriceTableMsg:
		if msg.Err != nil {
			break
		}
		if msg.Cached && len(m.allPlayers) > 0 {
			break
		}
		m.allPlayers = msg.Players

		return m.propagate(msg, m.applyFilter())
	case command.SuggestionMsg:
		if msg.Err != nil {
			return m.propagate(msg, command.SetStatusMessage(msg.Err.Error(), true))
		}
		m.selection.Replace(msg.Suggestion.Players)

		return m.propagate(msg, tea.Batch(
			m.syncPicked(),
			command.PersistSelection(m.store, m.selection.Players()),
			command.SetStatusMessage(fmt.Sprintf("Suggested %d players, %.2f Cr spent, %.2f Cr left, %d overseas",
				len(msg.Suggestion.Players), msg.Suggestion.TotalSpentCr,
				msg.Suggestion.PurseRemainingCr, msg.Suggestion.OverseasCount), false)))
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
		case key.Matches(msg, input.Default.Toggle):
			return m.toggleSelected(msg)
		case key.Matches(msg, input.Default.Clear):
			m.selection.Clear()

			return m.propagate(msg, tea.Batch(
				m.syncPicked(),
				command.PersistSelection(m.store, nil),
				command.SetStatusMessage("Cleared squad", false)))
		case key.Matches(msg, input.Default.Suggest):
			query := auction.SquadQuery{
				TotalPurseCr: m.constraints.BudgetCr,
				SquadSize:    m.constraints.TeamSize,
				MaxOverseas:  m.constraints.Overseas.Max,
				MinOverseas:  m.constraints.Overseas.Min,
			}

			return m.propagate(msg, tea.Batch(
				command.StartFetches(1),
				command.FetchSuggestion(m.client, m.viewState.Gen, m.conf.Year, query)))
		case key.Matches(msg, input.Default.Export):
			return m.propagate(msg, command.ExportSelectionCSV(m.selection))
		}
	}

	return m.propagate(msg)
}

func (m *SquadSection) toggleSelected(msg tea.Msg) (*SquadSection, tea.Cmd) {
	target := m.selected
	if m.viewState.KeyZone == model.KZsquadSelected {
		if current, ok := m.picked.Selected(); ok {
			target = current
		}
	}

	if target.ID == "" {
		return m.propagate(msg)
	}

	if !m.selection.Contains(target.ID) && m.selection.Count() >= m.constraints.TeamSize {
		return m.propagate(msg, command.SetStatusMessage(
			fmt.Sprintf("Squad is full (%d players)", m.constraints.TeamSize), true))
	}

	added := m.selection.Toggle(target)

	note := "Dropped " + target.Name
	if added {
		note = "Picked " + target.Name
	}

	return m.propagate(msg, tea.Batch(
		m.syncPicked(),
		command.PersistSelection(m.store, m.selection.Players()),
		command.SetStatusMessage(note, false)))
}

func (m *SquadSection) active() bool {
	return m.viewState.Page == model.PageMain && m.viewState.Section == model.SectionSquad
}

func (m *SquadSection) propagate(msg tea.Msg, extra ...tea.Cmd) (*SquadSection, tea.Cmd) {
	cmds := make([]tea.Cmd, 3, 3+len(extra))

	m.pool, cmds[0] = m.pool.Update(msg)
	m.picked, cmds[1] = m.picked.Update(msg)
	m.stats, cmds[2] = m.stats.Update(msg)
	cmds = append(cmds, extra...)

	return m, tea.Batch(cmds...)
}

func (m *SquadSection) View() string {
	filterBar := lipgloss.JoinHorizontal(lipgloss.Top,
		m.search.View(), "  ",
		m.roleSelect.View(), "  ",
		styles.HelpStyle.Render("(space pick/drop  g suggest  c clear  e export)"))

	height := m.viewState.Lower - 4
	leftWidth := (m.viewState.Width - 4) / 2
	rightWidth := m.viewState.Width - 4 - leftWidth

	right := lipgloss.JoinVertical(lipgloss.Top,
		m.stats.Render(rightWidth, 10),
		m.picked.Render(rightWidth, height-12))

	return lipgloss.JoinVertical(lipgloss.Top,
		filterBar,
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.pool.Render(leftWidth, height),
			right))
}
