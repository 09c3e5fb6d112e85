package auction_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cricsim/auction-tui/internal/auction"
	"github.com/cricsim/auction-tui/internal/player"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *auction.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return auction.NewClient(auction.Config{BaseURL: server.URL, HTTPClient: server.Client()})
}

func TestPriceTable(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/players/2025/table", request.URL.Path)
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"year": 2025, "players": [
			{"name": "A", "role": "Fast Bowler", "country_bucket": "Indian", "predicted_price_cr": 5.2},
			{"name": "", "role": null, "country_bucket": "Overseas", "predicted_price_cr": null}
		]}`))
	})

	players, err := client.PriceTable(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, players, 2)

	first := players[0]
	require.Equal(t, "A-0", first.ID)
	require.Equal(t, player.Bowler, first.Role)
	require.Equal(t, player.Indian, first.Nationality)
	require.Equal(t, "5.20", first.PriceDisplay())

	second := players[1]
	require.Equal(t, "player-1", second.ID)
	require.Equal(t, player.Batter, second.Role)
	require.True(t, second.Overseas())
	require.Nil(t, second.PriceCr)
}

func TestSquadSuggestionQuery(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/squad/2025", request.URL.Path)
		query := request.URL.Query()
		require.Equal(t, "900000000", query.Get("total_purse"))
		require.Equal(t, "20", query.Get("squad_size"))
		require.Equal(t, "8", query.Get("max_overseas"))
		require.Equal(t, "2", query.Get("min_overseas"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"year": 2025, "squad_size": 1, "total_spent": 52000000,
			"purse_remaining": 848000000, "overseas_count": 1,
			"players": [{"name": "B", "country_bucket": "Overseas", "role": "All rounder", "predicted_price": 52000000}]}`))
	})

	suggestion, err := client.SquadSuggestion(context.Background(), 2025, auction.SquadQuery{
		TotalPurseCr: 90,
		SquadSize:    20,
		MaxOverseas:  8,
		MinOverseas:  2,
	})
	require.NoError(t, err)
	require.Len(t, suggestion.Players, 1)
	require.Equal(t, player.AllRounder, suggestion.Players[0].Role)
	require.InEpsilon(t, 5.2, *suggestion.Players[0].PriceCr, 1e-9)
	require.InEpsilon(t, 5.2, suggestion.TotalSpentCr, 1e-9)
	require.InEpsilon(t, 84.8, suggestion.PurseRemainingCr, 1e-9)
	require.Equal(t, 1, suggestion.OverseasCount)
}

func TestAnalyticsPlayers(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/api/players", request.URL.Path)
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"players": [
			{"name": "C", "role": "wk", "nationality": "INDIA", "team": "CSK", "price": 20000000, "status": "sold"},
			{"name": "D", "role": "Batting", "nationality": "Australia", "status": "unsold"}
		]}`))
	})

	players, err := client.AnalyticsPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)

	require.Equal(t, player.WicketKeeper, players[0].Role)
	require.Equal(t, player.Indian, players[0].Nationality)
	require.Equal(t, player.StatusSold, players[0].Status)
	require.Equal(t, "CSK", players[0].Team)
	require.InEpsilon(t, 2.0, *players[0].PriceCr, 1e-9)

	require.True(t, players[1].Overseas())
	require.Equal(t, player.StatusUnsold, players[1].Status)
	require.Nil(t, players[1].PriceCr)
}

func TestMissingPlayersArrayDefaultsEmpty(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"year": 2025}`))
	})

	players, err := client.PriceTable(context.Background(), 2025)
	require.NoError(t, err)
	require.Empty(t, players)
}

func TestStatusError(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		http.Error(writer, "models not trained", http.StatusBadRequest)
	})

	_, err := client.PriceTable(context.Background(), 2025)
	require.ErrorIs(t, err, auction.ErrStatus)
	require.ErrorContains(t, err, "400")
}

func TestTransportError(t *testing.T) {
	client := auction.NewClient(auction.Config{BaseURL: "http://127.0.0.1:1"})

	_, err := client.AnalyticsPlayers(context.Background())
	require.ErrorIs(t, err, auction.ErrRequest)
}
