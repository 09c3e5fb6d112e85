package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/styles"
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, cachePath string) Help {
	return Help{
		configPath:   configPath,
		cachePath:    cachePath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	viewState    model.ViewState
	configPath   string
	cachePath    string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch { //nolint:gocritic
		case key.Matches(msg, input.Default.Back):
			// go back to main view
			if m.viewState.Page == model.PageHelp {
				m.viewState.Page = model.PageMain

				return m, command.SetViewState(m.viewState)
			}
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Config,
			input.Default.Quit,
			input.Default.Help,
			input.Default.Accept,
			input.Default.Back,
			input.Default.Refresh,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Auction,
			input.Default.Analytics,
			input.Default.Squad,
			input.Default.BestXI,
			input.Default.NextTab,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Toggle,
			input.Default.Suggest,
			input.Default.Export,
			input.Default.Search,
			input.Default.Clear,
			input.Default.FilterRole,
			input.Default.FilterNat,
			input.Default.FilterStatus,
			input.Default.Reset,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Cache Path", m.cachePath),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
