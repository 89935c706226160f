package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"katering/internal/config"
	"katering/internal/domain"
	apperrors "katering/internal/errors"
)

// Client talks to an OpenRouteService-compatible directions endpoint. One
// POST per call, coordinates ordered [longitude, latitude] as the provider
// expects.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

func NewClient(cfg config.ShippingConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.ProviderTimeout},
		url:        cfg.ProviderURL,
		apiKey:     cfg.ProviderAPIKey,
	}
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

func (c *Client) Route(ctx context.Context, origin, destination domain.Coordinate) (float64, float64, error) {
	body := directionsRequest{
		Coordinates: [][2]float64{
			{origin.Lng, origin.Lat},
			{destination.Lng, destination.Lat},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, 0, apperrors.NewInternalError("encoding routing request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return 0, 0, apperrors.NewInternalError("building routing request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, apperrors.NewUnavailableError("routing provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, apperrors.NewUnavailableError(
			fmt.Sprintf("routing provider returned status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, apperrors.NewUnavailableError("reading routing response", err)
	}

	var parsed directionsResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, 0, apperrors.NewUnavailableError("decoding routing response", err)
	}

	if len(parsed.Features) == 0 || len(parsed.Features[0].Properties.Segments) == 0 {
		return 0, 0, apperrors.NewUnavailableError("no route found between origin and destination", nil)
	}

	segment := parsed.Features[0].Properties.Segments[0]
	return segment.Distance, segment.Duration, nil
}
