package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, conf config.Config, doSetup bool, buildVersion string, buildDate string, buildCommit string,
	loader config.Writer, cachePath string, deps pages.Deps,
) *UI {
	zone.NewGlobal()

	fps := conf.FPS
	if fps <= 0 {
		fps = 30
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(
				conf,
				doSetup,
				buildVersion,
				buildDate,
				buildCommit,
				loader,
				cachePath,
				deps),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
