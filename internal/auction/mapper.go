package auction

import (
	"strings"

	"github.com/cricsim/auction-tui/internal/player"
)

func mapPriceTable(rows []tablePlayer) []player.Player {
	players := make([]player.Player, 0, len(rows))
	for idx, row := range rows {
		name := strings.TrimSpace(row.Name)
		players = append(players, player.Player{
			ID:              player.ID(name, idx),
			Name:            name,
			Role:            player.ParseRole(row.Role),
			Nationality:     player.BucketCountry(row.CountryBucket),
			PriceCr:         row.PredictedPriceCr,
			BasePriceCr:     row.BasePriceCr,
			ImpactScore:     row.ImpactScore,
			EfficiencyScore: row.EfficiencyScore,
			Outcome:         row.Outcome,
		})
	}

	return players
}

func mapSquad(rows []squadPlayer) []player.Player {
	players := make([]player.Player, 0, len(rows))
	for idx, row := range rows {
		name := strings.TrimSpace(row.Name)
		players = append(players, player.Player{
			ID:              player.ID(name, idx),
			Name:            name,
			Role:            player.ParseRole(row.Role),
			Nationality:     player.BucketCountry(row.CountryBucket),
			PriceCr:         croreOf(row.PredictedPrice),
			ImpactScore:     row.ImpactScore,
			EfficiencyScore: row.EfficiencyScore,
		})
	}

	return players
}

func mapAnalytics(rows []analyticsPlayer) []player.Player {
	players := make([]player.Player, 0, len(rows))
	for idx, row := range rows {
		name := strings.TrimSpace(row.Name)
		players = append(players, player.Player{
			ID:          player.ID(name, idx),
			Name:        name,
			Role:        player.ParseRole(row.Role),
			Nationality: player.BucketNationality(row.Nationality),
			PriceCr:     croreOf(row.Price),
			Status:      player.ParseStatus(row.Status),
			Team:        strings.TrimSpace(row.Team),
		})
	}

	return players
}

// croreOf converts an optional base-unit price into crore, preserving nil as
// "no prediction".
func croreOf(base *float64) *float64 {
	if base == nil {
		return nil
	}

	crore := player.Crore(*base)

	return &crore
}
