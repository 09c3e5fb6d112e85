package component

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
)

type statusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	auctionOK   bool
	xiOK        bool
	probed      bool
	loading     int
	spinner     spinner.Model
	version     string
	year        int
}

func NewStatusBarModel(version string, year int) *statusBarModel {
	spin := spinner.New()
	spin.Spinner = spinner.Points

	return &statusBarModel{version: version, year: year, spinner: spin}
}

func (m statusBarModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m statusBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case command.HealthMsg:
		m.auctionOK = msg.AuctionOK
		m.xiOK = msg.XIOK
		m.probed = true
	case command.PriceTableMsg:
		if !msg.Cached {
			m.loading = max(0, m.loading-1)
		}
	case command.AnalyticsMsg:
		if !msg.Cached {
			m.loading = max(0, m.loading-1)
		}
	case command.SuggestionMsg:
		m.loading = max(0, m.loading-1)
	case command.FetchStartedMsg:
		m.loading += msg.Count
	case config.Config:
		m.year = msg.Year
	case model.ViewState:
		m.viewState = msg
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m statusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		styles.StatusBudget.Render(fmt.Sprintf("Season %d", m.year)),
		m.status(),
		m.health("auction", m.auctionOK),
		m.health("xi", m.xiOK),
	}

	if m.loading > 0 {
		args = append(args, m.spinner.View())
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) health(name string, healthy bool) string {
	if !m.probed {
		return styles.StatusHelp.Render(" " + name + " ?")
	}
	if healthy {
		return styles.StatusHealthy.Render(" " + name + " ✓")
	}

	return styles.StatusDown.Render(" " + name + " ✗")
}

func (m statusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
