package ui

import (
	"testing"

	"github.com/cricsim/auction-tui/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func TestStaleMsg(t *testing.T) {
	root := rootModel{viewState: model.ViewState{Gen: 3}}

	require.False(t, root.staleMsg(3, false))
	require.True(t, root.staleMsg(2, false))
	require.True(t, root.staleMsg(4, false))
	// Cache seeds carry generation zero and are never considered stale.
	require.False(t, root.staleMsg(0, true))
}

func TestTogglePage(t *testing.T) {
	root := &rootModel{viewState: model.ViewState{Page: model.PageMain}, previousPage: model.PageMain}

	root.togglePage(model.PageHelp)
	require.Equal(t, model.PageHelp, root.viewState.Page)

	root.togglePage(model.PageHelp)
	require.Equal(t, model.PageMain, root.viewState.Page)

	root.togglePage(model.PageHelp)
	root.togglePage(model.PageConfig)
	require.Equal(t, model.PageConfig, root.viewState.Page)
}

func TestFirstZone(t *testing.T) {
	require.Equal(t, model.KZauctionTable, firstZone(model.SectionAuction))
	require.Equal(t, model.KZanalyticsTable, firstZone(model.SectionAnalytics))
	require.Equal(t, model.KZsquadTable, firstZone(model.SectionSquad))
	require.Equal(t, model.KZxiForm, firstZone(model.SectionXI))
}
