// Package xi is the client for the starting XI prediction service.
package xi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cricsim/auction-tui/internal/player"
)

var (
	ErrRequest = errors.New("xi api request failed")
	ErrStatus  = errors.New("xi api rejected request")
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

// Request carries the match context the selector needs. Opponent, pitch
// condition and max overseas are display-only on the form and deliberately
// not part of the wire request.
type Request struct {
	TeamCode     string `json:"team_code"`
	Venue        string `json:"venue"`
	TossDecision string `json:"toss_decision"`
}

type wirePick struct {
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	Role       string  `json:"role"`
	FinalScore float64 `json:"final_score"`
}

type wireSelection struct {
	TeamCode     string     `json:"team_code"`
	Venue        string     `json:"venue"`
	PitchType    string     `json:"pitch_type"`
	PitchNotes   string     `json:"pitch_notes"`
	StartingXI   []wirePick `json:"starting_xi"`
	ImpactPlayer *wirePick  `json:"impact_player"`
}

// Pick is one selected player with the model's score attached.
type Pick struct {
	Name        string
	Role        player.Role
	Nationality player.Nationality
	FinalScore  float64
}

// Selection is the normalized prediction result.
type Selection struct {
	TeamCode     string
	Venue        string
	PitchType    string
	PitchNotes   string
	StartingXI   []Pick
	ImpactPlayer *Pick
}

// PredictXI posts the match context and returns the predicted starting XI
// plus impact player.
func (c *Client) PredictXI(ctx context.Context, request Request) (Selection, error) {
	body, errBody := json.Marshal(request)
	if errBody != nil {
		return Selection{}, errors.Join(errBody, ErrRequest)
	}

	req, errReq := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict-xi", bytes.NewReader(body))
	if errReq != nil {
		return Selection{}, errors.Join(errReq, ErrRequest)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return Selection{}, errors.Join(errResp, ErrRequest)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Selection{}, fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	var wire wireSelection
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Selection{}, errors.Join(err, ErrRequest)
	}

	return mapSelection(wire), nil
}

// Healthz probes the service health endpoint.
func (c *Client) Healthz(ctx context.Context) error {
	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if errReq != nil {
		return errors.Join(errReq, ErrRequest)
	}

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return errors.Join(errResp, ErrRequest)
	}

	if err := resp.Body.Close(); err != nil {
		return errors.Join(err, ErrRequest)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	return nil
}

func mapSelection(wire wireSelection) Selection {
	selection := Selection{
		TeamCode:   wire.TeamCode,
		Venue:      wire.Venue,
		PitchType:  wire.PitchType,
		PitchNotes: wire.PitchNotes,
	}

	for _, pick := range wire.StartingXI {
		selection.StartingXI = append(selection.StartingXI, mapPick(pick))
	}

	if wire.ImpactPlayer != nil {
		impact := mapPick(*wire.ImpactPlayer)
		selection.ImpactPlayer = &impact
	}

	return selection
}

func mapPick(wire wirePick) Pick {
	return Pick{
		Name:        strings.TrimSpace(wire.Name),
		Role:        player.ParseRole(wire.Role),
		Nationality: player.BucketNationality(wire.Country),
		FinalScore:  wire.FinalScore,
	}
}
