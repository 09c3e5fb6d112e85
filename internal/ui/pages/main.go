package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/auction"
	"github.com/cricsim/auction-tui/internal/cache"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/component"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	"github.com/cricsim/auction-tui/internal/xi"
)

// Deps bundles the clients and stores the sections need.
type Deps struct {
	Auction        *auction.Client
	XI             *xi.Client
	Store          command.SelectionStore
	Cache          cache.Cache
	SavedSelection []player.Player
}

func NewMain(conf config.Config, deps Deps) *Main {
	return &Main{
		tabsModel:    component.NewTabsModel(),
		auctionModel: NewAuctionSection(conf, deps.Auction, deps.Cache),
		analyticsModel: NewAnalyticsSection(
			conf, deps.Auction, deps.Cache),
		squadModel: NewSquadSection(conf, deps.Auction, deps.Store, deps.SavedSelection),
		xiModel:    NewXISection(deps.XI),
	}
}

type Main struct {
	tabsModel      tea.Model
	auctionModel   *AuctionSection
	analyticsModel *AnalyticsSection
	squadModel     *SquadSection
	xiModel        *XISection
	viewState      model.ViewState
}

func (m *Main) Init() tea.Cmd {
	return tea.Batch(
		m.tabsModel.Init(),
		m.auctionModel.Init(),
		m.analyticsModel.Init(),
		m.squadModel.Init(),
		m.xiModel.Init())
}

func (m *Main) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if state, ok := msg.(model.ViewState); ok {
		m.viewState = state
	}

	return m.propagate(msg)
}

func (m *Main) View() string {
	header := styles.HeaderContainerStyle.Width(m.viewState.Width).Render(m.tabsModel.View())

	var content string
	switch m.viewState.Section {
	case model.SectionAnalytics:
		content = m.analyticsModel.View()
	case model.SectionSquad:
		content = m.squadModel.View()
	case model.SectionXI:
		content = m.xiModel.View()
	case model.SectionAuction:
		fallthrough
	default:
		content = m.auctionModel.View()
	}

	return lipgloss.JoinVertical(lipgloss.Top, header, content)
}

func (m *Main) propagate(msg tea.Msg, _ ...tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 5)

	m.tabsModel, cmds[0] = m.tabsModel.Update(msg)
	m.auctionModel, cmds[1] = m.auctionModel.Update(msg)
	m.analyticsModel, cmds[2] = m.analyticsModel.Update(msg)
	m.squadModel, cmds[3] = m.squadModel.Update(msg)
	m.xiModel, cmds[4] = m.xiModel.Update(msg)

	return m, tea.Batch(cmds...)
}
