// Package auction is the client for the price prediction service. It builds
// requests from user supplied parameters, performs the call and maps the
// response onto canonical player records. It keeps no cache and never
// retries; the calling page decides how a failure is shown.
package auction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cricsim/auction-tui/internal/player"
)

var (
	ErrRequest = errors.New("auction api request failed")
	// ErrStatus wraps any non-2xx response, with the status code attached.
	ErrStatus = errors.New("auction api rejected request")
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(conf Config) *Client {
	httpClient := conf.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(conf.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// SquadQuery holds the squad suggestion constraints. The budget is kept in
// crore and converted to base units only when the query string is built.
type SquadQuery struct {
	TotalPurseCr float64
	SquadSize    int
	MaxOverseas  int
	MinOverseas  int
}

// Suggestion is the normalized squad suggestion, aggregates converted into
// crore for display.
type Suggestion struct {
	Players          []player.Player
	TotalSpentCr     float64
	PurseRemainingCr float64
	OverseasCount    int
}

// PriceTable fetches all predicted player prices for the given year.
func (c *Client) PriceTable(ctx context.Context, year int) ([]player.Player, error) {
	resp, err := getJSON[priceTableResponse](ctx, c, fmt.Sprintf("/players/%d/table", year), nil)
	if err != nil {
		return nil, err
	}

	return mapPriceTable(resp.Players), nil
}

// SquadSuggestion asks the backend optimizer for a squad under the given
// constraints.
func (c *Client) SquadSuggestion(ctx context.Context, year int, query SquadQuery) (Suggestion, error) {
	params := url.Values{}
	params.Set("total_purse", strconv.FormatFloat(player.BaseUnits(query.TotalPurseCr), 'f', -1, 64))
	params.Set("squad_size", strconv.Itoa(query.SquadSize))
	params.Set("max_overseas", strconv.Itoa(query.MaxOverseas))
	params.Set("min_overseas", strconv.Itoa(query.MinOverseas))

	resp, err := getJSON[squadResponse](ctx, c, fmt.Sprintf("/squad/%d", year), params)
	if err != nil {
		return Suggestion{}, err
	}

	return Suggestion{
		Players:          mapSquad(resp.Players),
		TotalSpentCr:     player.Crore(resp.TotalSpent),
		PurseRemainingCr: player.Crore(resp.PurseRemaining),
		OverseasCount:    resp.OverseasCount,
	}, nil
}

// AnalyticsPlayers fetches the analytics player list, which carries sold
// status and team fields the price table lacks.
func (c *Client) AnalyticsPlayers(ctx context.Context) ([]player.Player, error) {
	resp, err := getJSON[analyticsResponse](ctx, c, "/api/players", nil)
	if err != nil {
		return nil, err
	}

	return mapAnalytics(resp.Players), nil
}

// Detail is the single player price breakdown.
type Detail struct {
	Name             string
	Year             int
	BasePriceCr      *float64
	PredictedPriceCr *float64
	ImpactScore      *float64
	EfficiencyScore  *float64
	Outcome          string
}

// PlayerDetail fetches the price breakdown for a single player by name.
func (c *Client) PlayerDetail(ctx context.Context, year int, name string) (Detail, error) {
	params := url.Values{}
	params.Set("name", name)

	resp, err := getJSON[detailResponse](ctx, c, fmt.Sprintf("/players/%d", year), params)
	if err != nil {
		return Detail{}, err
	}

	return Detail{
		Name:             resp.Name,
		Year:             resp.Year,
		BasePriceCr:      croreOf(resp.BasePrice),
		PredictedPriceCr: croreOf(resp.PredictedPrice),
		ImpactScore:      resp.ImpactScore,
		EfficiencyScore:  resp.EfficiencyScore,
		Outcome:          resp.Outcome,
	}, nil
}

// Healthz probes the service root.
func (c *Client) Healthz(ctx context.Context) error {
	_, err := getJSON[map[string]any](ctx, c, "/", nil)

	return err
}

func getJSON[T any](ctx context.Context, client *Client, path string, params url.Values) (T, error) {
	var value T

	requestURL := client.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if errReq != nil {
		return value, errors.Join(errReq, ErrRequest)
	}
	req.Header.Set("Accept", "application/json")

	resp, errResp := client.httpClient.Do(req)
	if errResp != nil {
		return value, errors.Join(errResp, ErrRequest)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return value, fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&value); err != nil {
		return value, errors.Join(err, ErrRequest)
	}

	return value, nil
}
