package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/ui/command"
	"github.com/cricsim/auction-tui/internal/ui/component"
	"github.com/cricsim/auction-tui/internal/ui/input"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/pages"
	"github.com/cricsim/auction-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	viewState    model.ViewState
	previousPage model.Page
	mainModel    tea.Model
	configModel  tea.Model
	helpModel    tea.Model
	statusModel  tea.Model
	conf         config.Config
	deps         pages.Deps
	inputActive  bool
	footerHeight int
	headerHeight int
}

func newRootModel(userConfig config.Config, doSetup bool, buildVersion string, buildDate string, buildCommit string,
	loader config.Writer, cachePath string, deps pages.Deps,
) *rootModel {
	app := &rootModel{
		viewState: model.ViewState{
			Page:    model.PageMain,
			Section: model.SectionAuction,
			KeyZone: model.KZauctionTable,
			Gen:     1,
		},
		previousPage: model.PageMain,
		mainModel:    pages.NewMain(userConfig, deps),
		configModel:  pages.NewConfig(userConfig, loader),
		helpModel:    pages.NewHelp(buildVersion, buildDate, buildCommit, loader.Path(), cachePath),
		statusModel:  component.NewStatusBarModel(buildVersion, userConfig.Year),
		conf:         userConfig,
		deps:         deps,
		headerHeight: 1,
		footerHeight: 1,
	}

	if doSetup {
		app.viewState.Page = model.PageConfig
	}

	return app
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("auction-tui"),
		m.mainModel.Init(),
		m.configModel.Init(),
		m.helpModel.Init(),
		m.statusModel.Init(),
		textinput.Blink,
		command.SeedFromCache(m.deps.Cache, m.conf.Year),
		command.SeedAnalyticsFromCache(m.deps.Cache, m.conf.Year),
		m.refetch(),
	)
}

// refetch pulls both backend data sets with the current generation.
func (m rootModel) refetch() tea.Cmd {
	return tea.Batch(
		command.StartFetches(2),
		command.FetchPriceTable(m.deps.Auction, m.deps.Cache, m.viewState.Gen, m.conf.Year),
		command.FetchAnalytics(m.deps.Auction, m.deps.Cache, m.viewState.Gen, m.conf.Year))
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		if _, ok := inMsg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width
		m.viewState.Upper = m.headerHeight
		m.viewState.Lower = msg.Height - m.headerHeight - m.footerHeight

		return m.propagate(m.viewState)
	case model.ViewState:
		// Pages broadcast intent through ViewState. Sizes and generation stay
		// authoritative here.
		if msg.Section != m.viewState.Section {
			m.viewState.Section = msg.Section
			m.viewState.KeyZone = firstZone(msg.Section)
		}
		m.viewState.Page = msg.Page

		return m.propagate(m.viewState)
	case model.KeyZone:
		m.viewState.KeyZone = msg

		return m.propagate(m.viewState)
	case command.InputActiveMsg:
		m.inputActive = bool(msg)
	case config.Config:
		m.conf = msg
		m.viewState.Gen++

		next, cmd := m.propagate(inMsg)

		return next, tea.Batch(cmd, command.SetViewState(m.viewState), m.refetch())
	case command.PriceTableMsg:
		if stale := m.staleMsg(msg.Gen, msg.Cached); stale {
			// Still settle the status bar fetch counter.
			var cmd tea.Cmd
			m.statusModel, cmd = m.statusModel.Update(inMsg)

			return m, cmd
		}
		if msg.Err != nil {
			return m.propagate(inMsg, command.SetStatusMessage("Price table fetch failed: "+msg.Err.Error(), true))
		}
	case command.AnalyticsMsg:
		if stale := m.staleMsg(msg.Gen, msg.Cached); stale {
			var cmd tea.Cmd
			m.statusModel, cmd = m.statusModel.Update(inMsg)

			return m, cmd
		}
		if msg.Err != nil {
			return m.propagate(inMsg, command.SetStatusMessage("Roster fetch failed: "+msg.Err.Error(), true))
		}
	case command.SuggestionMsg:
		if stale := m.staleMsg(msg.Gen, false); stale {
			var cmd tea.Cmd
			m.statusModel, cmd = m.statusModel.Update(inMsg)

			return m, cmd
		}
	case command.PlayerDetailMsg:
		if stale := m.staleMsg(msg.Gen, false); stale {
			return m, nil
		}
	case command.XIMsg:
		if stale := m.staleMsg(msg.Gen, false); stale {
			return m, nil
		}
	case tea.KeyMsg:
		if m.inputActive && msg.String() != "ctrl+c" {
			break
		}
		switch {
		case key.Matches(msg, input.Default.Quit):
			// Plain q only quits from the main page, ctrl+c quits anywhere.
			if m.viewState.Page != model.PageMain && msg.String() != "ctrl+c" {
				break
			}

			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			// The config page is all text inputs, plain letters belong to them.
			if m.viewState.Page == model.PageConfig {
				break
			}
			m.togglePage(model.PageHelp)

			return m.propagate(m.viewState)
		case key.Matches(msg, input.Default.Config):
			if m.viewState.Page == model.PageConfig {
				break
			}
			m.togglePage(model.PageConfig)

			return m.propagate(m.viewState)
		case key.Matches(msg, input.Default.Left):
			if m.viewState.Page == model.PageMain {
				return m.propagate(inMsg, command.SetNextZone(m.viewState.Section, m.viewState.KeyZone, input.Left))
			}
		case key.Matches(msg, input.Default.Right):
			if m.viewState.Page == model.PageMain {
				return m.propagate(inMsg, command.SetNextZone(m.viewState.Section, m.viewState.KeyZone, input.Right))
			}
		}
	}

	return m.propagate(inMsg)
}

// staleMsg reports whether a fetch response belongs to a superseded
// generation. Cached seeds carry generation zero and always pass.
func (m rootModel) staleMsg(gen model.Generation, cached bool) bool {
	if cached {
		return false
	}

	return gen != m.viewState.Gen
}

func (m *rootModel) togglePage(page model.Page) {
	if m.viewState.Page == page {
		m.viewState.Page = m.previousPage
	} else {
		m.previousPage = m.viewState.Page
		m.viewState.Page = page
	}
}

func firstZone(section model.Section) model.KeyZone {
	switch section {
	case model.SectionAnalytics:
		return model.KZanalyticsTable
	case model.SectionSquad:
		return model.KZsquadTable
	case model.SectionXI:
		return model.KZxiForm
	case model.SectionAuction:
		fallthrough
	default:
		return model.KZauctionTable
	}
}

func (m rootModel) View() string {
	footer := styles.FooterContainerStyle.
		Width(m.viewState.Width).
		Render(lipgloss.JoinVertical(lipgloss.Top, m.statusModel.View()))
	ftr := styles.FooterContainerStyle.Width(m.viewState.Width).Render(footer)
	_, ftrHeight := lipgloss.Size(ftr)

	contentViewPortHeight := m.viewState.Height - ftrHeight

	var content string
	switch m.viewState.Page {
	case model.PageConfig:
		content = m.configModel.View()
	case model.PageHelp:
		content = m.helpModel.View()
	case model.PageMain:
		fallthrough
	default:
		content = m.mainModel.View()
	}

	ctr := styles.ContentContainerStyle.Height(contentViewPortHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

func (m rootModel) propagate(msg tea.Msg, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 4, 4+len(extra))

	m.mainModel, cmds[0] = m.mainModel.Update(msg)
	m.configModel, cmds[1] = m.configModel.Update(msg)
	m.helpModel, cmds[2] = m.helpModel.Update(msg)
	m.statusModel, cmds[3] = m.statusModel.Update(msg)
	cmds = append(cmds, extra...)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/auction-tui/auction-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case command.PriceTableMsg:
	case command.AnalyticsMsg:
		break
	case spinner.TickMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
