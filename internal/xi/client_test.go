package xi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cricsim/auction-tui/internal/player"
	"github.com/cricsim/auction-tui/internal/xi"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *xi.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return xi.NewClient(xi.Config{BaseURL: server.URL, HTTPClient: server.Client()})
}

func TestPredictXI(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodPost, request.Method)
		require.Equal(t, "/predict-xi", request.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		require.Equal(t, "RCB", body["team_code"])
		require.Equal(t, "Chinnaswamy", body["venue"])
		require.Equal(t, "bowl", body["toss_decision"])

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"team_code": "RCB", "venue": "Chinnaswamy",
			"pitch_type": "batting", "pitch_notes": "Short boundaries, high scoring ground.",
			"starting_xi": [
				{"name": "V Kohli", "country": "India", "role": "Batting", "final_score": 91.2},
				{"name": "J Hazlewood", "country": "Australia", "role": "Bowling", "final_score": 84.1}
			],
			"impact_player": {"name": "S Dube", "country": "India", "role": "All rounder", "final_score": 71.0}
		}`))
	})

	selection, err := client.PredictXI(context.Background(), xi.Request{
		TeamCode:     "RCB",
		Venue:        "Chinnaswamy",
		TossDecision: "bowl",
	})
	require.NoError(t, err)
	require.Equal(t, "batting", selection.PitchType)
	require.Len(t, selection.StartingXI, 2)

	require.Equal(t, player.Batter, selection.StartingXI[0].Role)
	require.Equal(t, player.Indian, selection.StartingXI[0].Nationality)
	require.Equal(t, player.Bowler, selection.StartingXI[1].Role)
	require.Equal(t, player.Overseas, selection.StartingXI[1].Nationality)

	require.NotNil(t, selection.ImpactPlayer)
	require.Equal(t, player.AllRounder, selection.ImpactPlayer.Role)
}

func TestPredictXINoImpactPlayer(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"team_code": "CSK", "venue": "Chepauk",
			"pitch_type": "bowling", "pitch_notes": "Spin friendly.",
			"starting_xi": [], "impact_player": null}`))
	})

	selection, err := client.PredictXI(context.Background(), xi.Request{TeamCode: "CSK", Venue: "Chepauk", TossDecision: "bat"})
	require.NoError(t, err)
	require.Empty(t, selection.StartingXI)
	require.Nil(t, selection.ImpactPlayer)
}

func TestPredictXIBadTeam(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		http.Error(writer, `{"detail": "Unknown team_code: XYZ"}`, http.StatusBadRequest)
	})

	_, err := client.PredictXI(context.Background(), xi.Request{TeamCode: "XYZ"})
	require.ErrorIs(t, err, xi.ErrStatus)
	require.ErrorContains(t, err, "400")
}
