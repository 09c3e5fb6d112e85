package component

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type TabLabel struct {
	label  string
	tab    model.Section
	zoneID string
}

func NewTabsModel() tea.Model {
	return &TabsModel{
		tabs: []TabLabel{
			{
				label:  "Auction",
				tab:    model.SectionAuction,
				zoneID: zone.NewPrefix(),
			},
			{
				label:  "Analytics",
				tab:    model.SectionAnalytics,
				zoneID: zone.NewPrefix(),
			},
			{
				label:  "Squad",
				tab:    model.SectionSquad,
				zoneID: zone.NewPrefix(),
			},
			{
				label:  "Best XI",
				tab:    model.SectionXI,
				zoneID: zone.NewPrefix(),
			},
		},
		viewState: model.ViewState{Section: model.SectionAuction},
	}
}

type TabsModel struct {
	tabs      []TabLabel
	viewState model.ViewState
	id        string
}

func (m TabsModel) Init() tea.Cmd {
	return nil
}

func (m TabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	changed := false
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, item := range m.tabs {
			// Check each item to see if it's in bounds.
			if zone.Get(m.id + item.label).InBounds(msg) {
				vs := m.viewState
				vs.Section = item.tab

				return m, command.SetViewState(vs)
			}
		}

		return m, nil
	case model.ViewState:
		m.viewState = msg

		return m, nil
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain {
			return m, nil
		}
		switch {
		case key.Matches(msg, input.Default.NextTab):
			m.viewState.Section++
			if m.viewState.Section > model.SectionXI {
				m.viewState.Section = model.SectionAuction
			}
			changed = true
		case key.Matches(msg, input.Default.PrevTab):
			m.viewState.Section--
			if m.viewState.Section < model.SectionAuction {
				m.viewState.Section = model.SectionXI
			}
			changed = true
		case key.Matches(msg, input.Default.Auction):
			m.viewState.Section = model.SectionAuction
			changed = true
		case key.Matches(msg, input.Default.Analytics):
			m.viewState.Section = model.SectionAnalytics
			changed = true
		case key.Matches(msg, input.Default.Squad):
			m.viewState.Section = model.SectionSquad
			changed = true
		case key.Matches(msg, input.Default.BestXI):
			m.viewState.Section = model.SectionXI
			changed = true
		}
	}

	if changed {
		return m, command.SetViewState(m.viewState)
	}

	return m, nil
}

func (m TabsModel) View() string {
	if m.viewState.Width == 0 {
		return ""
	}
	var tabs []string

	for _, tab := range m.tabs {
		if tab.tab == m.viewState.Section {
			tabs = append(tabs, zone.Mark(m.id+tab.label, styles.TabsActive.Render(tab.label)))
		} else {
			tabs = append(tabs, zone.Mark(m.id+tab.label, styles.TabsInactive.Render(tab.label)))
		}
	}

	return styles.WrapX(m.viewState.Width, styles.TabContainer.Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)), "x")
}
