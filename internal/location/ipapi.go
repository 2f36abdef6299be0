package location

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	DefaultIPAPIURL = "http://ip-api.com/json"
	userAgent       = "WeatherTerminal/1.0"
)

var ErrPermissionDenied = errors.New("location permission denied")

// IPAPI geolocates the machine's public address
type IPAPI struct {
	url        string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewIPAPI(url string, httpClient *http.Client, logger zerolog.Logger) *IPAPI {
	if url == "" {
		url = DefaultIPAPIURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &IPAPI{url: url, httpClient: httpClient, logger: logger}
}

type ipapiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// RequestPermission is granted once the user has chosen ip mode
func (p *IPAPI) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (p *IPAPI) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, fmt.Errorf("ip-api returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("reading response: %w", err)
	}

	var result ipapiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return models.Coordinates{}, fmt.Errorf("decoding response: %w", err)
	}
	if result.Status != "success" {
		msg := result.Message
		if msg == "" {
			msg = "unknown failure"
		}
		return models.Coordinates{}, fmt.Errorf("ip lookup failed: %s", msg)
	}

	p.logger.Debug().
		Str("city", result.City).
		Str("country", result.Country).
		Float64("lat", result.Lat).
		Float64("lon", result.Lon).
		Msg("resolved position from public address")

	return models.Coordinates{Lat: result.Lat, Lon: result.Lon}, nil
}
