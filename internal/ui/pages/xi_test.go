package pages_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cricsim/auction-tui/internal/config"
	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/cricsim/auction-tui/internal/ui/pages"
	"github.com/stretchr/testify/require"
)

func xiViewState() model.ViewState {
	return model.ViewState{
		Page:    model.PageMain,
		Section: model.SectionXI,
		KeyZone: model.KZxiForm,
		Gen:     1,
		Width:   100,
		Lower:   40,
		Height:  42,
	}
}

func TestXILoadingSettlesOnConfigChange(t *testing.T) {
	section := pages.NewXISection(nil)
	section, _ = section.Update(xiViewState())

	section, _ = section.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, strings.Contains(section.View(), "predicting"))

	// The response of the superseded request is dropped as stale, the form
	// must not stay stuck on the indicator.
	section, _ = section.Update(config.Config{Year: 2026})
	require.False(t, strings.Contains(section.View(), "predicting"))
}
