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

// AuctionSection is the price table browser with a per-player detail panel.
type AuctionSection struct {
	table      *component.TablePlayersModel
	detail     component.DetailPanelModel
	client     *auction.Client
	cacheFS    cache.Cache
	conf       config.Config
	search     *component.ValidatingTextInputModel
	roleSelect *component.SelectModel
	natSelect  *component.SelectModel
	allPlayers []player.Player
	selected   player.Player
	viewState  model.ViewState
}

func NewAuctionSection(conf config.Config, client *auction.Client, cacheFS cache.Cache) *AuctionSection {
	return &AuctionSection{
		table:      component.NewTablePlayersModel(component.TableAuction, "Price Table", model.KZauctionTable),
		detail:     component.NewDetailPanelModel(),
		client:     client,
		cacheFS:    cacheFS,
		conf:       conf,
		search:     component.NewValidatingTextInputModel("Search", "", "name"),
		roleSelect: component.NewSelectModel("Role", roleFilterOptions),
		natSelect:  component.NewSelectModel("Nat", natFilterOptions),
	}
}

func (m *AuctionSection) Init() tea.Cmd {
	return nil
}

func (m *AuctionSection) filter() squad.Filter {
	filter := squad.NewFilter()
	filter.Role = m.roleSelect.Value()
	filter.Nationality = m.natSelect.Value()
	filter.Search = m.search.Input.Value()

	return filter
}

func (m *AuctionSection) applyFilter() tea.Cmd {
	m.table.SetPlayers(squad.Apply(m.allPlayers, m.filter()))

	return m.table.SelectClosest()
}

func (m *AuctionSection) Update(msg tea.Msg) (*AuctionSection, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		m.conf = msg
	case command.SelectedPlayerMsg:
		m.selected = msg.Player
	case command.PriceTableMsg:
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
		case key.Matches(msg, input.Default.Accept):
			if m.selected.Name == "" {
				break
			}

			return m.propagate(msg, command.FetchPlayerDetail(m.client, m.viewState.Gen, m.conf.Year, m.selected.Name))
		case key.Matches(msg, input.Default.Export):
			return m.propagate(msg, command.ExportPlayersCSV(m.table.Players()))
		case key.Matches(msg, input.Default.Refresh):
			return m.propagate(msg, tea.Batch(
				command.StartFetches(1),
				command.FetchPriceTable(m.client, m.cacheFS, m.viewState.Gen, m.conf.Year)))
		}
	}

	return m.propagate(msg)
}

func (m *AuctionSection) active() bool {
	return m.viewState.Page == model.PageMain && m.viewState.Section == model.SectionAuction
}

func (m *AuctionSection) propagate(msg tea.Msg, extra ...tea.Cmd) (*AuctionSection, tea.Cmd) {
	cmds := make([]tea.Cmd, 2, 2+len(extra))

	m.table, cmds[0] = m.table.Update(msg)
	m.detail, cmds[1] = m.detail.Update(msg)
	cmds = append(cmds, extra...)

	return m, tea.Batch(cmds...)
}

func (m *AuctionSection) View() string {
	filterBar := lipgloss.JoinHorizontal(lipgloss.Top,
		m.search.View(), "  ",
		m.roleSelect.View(), "  ",
		m.natSelect.View(), "  ",
		styles.HelpStyle.Render("(/ search  f role  n nat  enter detail)"))

	detailHeight := 12
	tableHeight := m.viewState.Lower - detailHeight - 6

	return lipgloss.JoinVertical(lipgloss.Top,
		filterBar,
		m.table.Render(m.viewState.Width-2, tableHeight),
		m.detail.Render(detailHeight))
}
