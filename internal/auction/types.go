package auction

// Wire shapes for the auction service. Numeric fields are pointers because
// the backend emits null for players without a prediction; missing values
// default rather than fail.

type tablePlayer struct {
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	CountryBucket    string   `json:"country_bucket"`
	BasePriceCr      *float64 `json:"base_price_cr"`
	PredictedPriceCr *float64 `json:"predicted_price_cr"`
	ImpactScore      *float64 `json:"impact_score"`
	EfficiencyScore  *float64 `json:"efficiency_score"`
	Outcome          string   `json:"predicted_auction_outcome"`
}

type priceTableResponse struct {
	Year    int           `json:"year"`
	Players []tablePlayer `json:"players"`
}

type squadPlayer struct {
	Name            string   `json:"name"`
	CountryBucket   string   `json:"country_bucket"`
	Role            string   `json:"role"`
	PredictedPrice  *float64 `json:"predicted_price"`
	ImpactScore     *float64 `json:"impact_score"`
	EfficiencyScore *float64 `json:"efficiency_score"`
}

type squadResponse struct {
	Year           int           `json:"year"`
	SquadSize      int           `json:"squad_size"`
	TotalSpent     float64       `json:"total_spent"`
	PurseRemaining float64       `json:"purse_remaining"`
	OverseasCount  int           `json:"overseas_count"`
	Players        []squadPlayer `json:"players"`
}

type analyticsPlayer struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Nationality string   `json:"nationality"`
	Team        string   `json:"team"`
	Price       *float64 `json:"price"`
	Status      string   `json:"status"`
}

type analyticsResponse struct {
	Players []analyticsPlayer `json:"players"`
}

type detailResponse struct {
	Name            string   `json:"name"`
	Year            int      `json:"year"`
	BasePrice       *float64 `json:"base_price"`
	PredictedPrice  *float64 `json:"predicted_price"`
	ImpactScore     *float64 `json:"impact_score"`
	EfficiencyScore *float64 `json:"efficiency_score"`
	Outcome         string   `json:"predicted_auction_outcome"`
}
