package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/store"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()

	db, errOpen := store.Open(t.Context(), "", true)
	require.NoError(t, errOpen)

	stateStore := store.New(db)
	t.Cleanup(func() {
		require.NoError(t, stateStore.Close())
	})

	return stateStore
}

func TestSelectionRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(t.Context(), time.Second*10)
	defer cancel()

	stateStore := testStore(t)

	require.Empty(t, stateStore.LoadSelection(ctx))

	price := 5.5
	saved := []player.Player{
		{ID: "rohit-0", Name: "Rohit", Role: player.Batter, Nationality: player.Indian, PriceCr: &price},
		{ID: "rashid-1", Name: "Rashid", Role: player.AllRounder, Nationality: player.Overseas},
	}
	require.NoError(t, stateStore.SaveSelection(ctx, saved))
	require.Equal(t, saved, stateStore.LoadSelection(ctx))

	// A second save replaces, not appends.
	require.NoError(t, stateStore.SaveSelection(ctx, saved[:1]))
	require.Equal(t, saved[:1], stateStore.LoadSelection(ctx))

	require.NoError(t, stateStore.SaveSelection(ctx, nil))
	require.Empty(t, stateStore.LoadSelection(ctx))
}

func TestSelectionCorruptValue(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(t.Context(), time.Second*10)
	defer cancel()

	db, errOpen := store.Open(ctx, "", true)
	require.NoError(t, errOpen)

	_, errExec := db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_on) VALUES ('squad_selection', '{not json', 0)`)
	require.NoError(t, errExec)

	stateStore := store.New(db)
	defer stateStore.Close()

	require.Empty(t, stateStore.LoadSelection(ctx))
}
