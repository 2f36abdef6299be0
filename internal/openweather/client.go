package openweather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

const userAgent = "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)"

// Client implements Gateway using the OpenWeatherMap HTTP API
type Client struct {
	baseURL    string
	apiKey     string
	units      string
	lang       string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client. A nil httpClient gets a
// plain client with the configured timeout.
func NewClient(cfg config.OpenWeather, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		units:      cfg.Units,
		lang:       cfg.Lang,
		httpClient: httpClient,
		logger:     logger,
	}
}

// CurrentByCoords retrieves current weather for a coordinate
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	params := c.localized(coords(lat, lon))

	var out models.CurrentWeather
	if err := c.get(ctx, OpCurrent, "weather", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentByCity retrieves current weather for a city name
func (c *Client) CurrentByCity(ctx context.Context, name string) (*models.CurrentWeather, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newAPIError(OpCity, 0, "", fmt.Errorf("%w: city name cannot be empty", ErrNotSent))
	}

	params := url.Values{}
	params.Set("q", name)
	params = c.localized(params)

	var out models.CurrentWeather
	if err := c.get(ctx, OpCity, "weather", params, &out); err != nil {
		return nil, err
	}

	// Callers chain the remaining requests off these coordinates
	if out.Coord == nil {
		return nil, newAPIError(OpCity, http.StatusOK, "", errMissingCoordinates)
	}
	return &out, nil
}

// Forecast retrieves the 5-day / 3-hour forecast
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*models.Forecast, error) {
	var out models.Forecast
	if err := c.get(ctx, OpForecast, "forecast", c.localized(coords(lat, lon)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AirPollution retrieves the current air pollution reading
func (c *Client) AirPollution(ctx context.Context, lat, lon float64) (*models.AirPollution, error) {
	var out models.AirPollution
	if err := c.get(ctx, OpAirPollution, "air_pollution", coords(lat, lon), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UVIndex retrieves the current UV index
func (c *Client) UVIndex(ctx context.Context, lat, lon float64) (*models.UVIndex, error) {
	var out models.UVIndex
	if err := c.get(ctx, OpUV, "uvi", coords(lat, lon), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// localized adds the units and language flags
func (c *Client) localized(params url.Values) url.Values {
	if c.units != "" {
		params.Set("units", c.units)
	}
	if c.lang != "" {
		params.Set("lang", c.lang)
	}
	return params
}

func coords(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return params
}

// get issues one GET and decodes the body into out
func (c *Client) get(ctx context.Context, op Op, path string, params url.Values, out any) error {
	start := time.Now()
	params.Set("appid", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return newAPIError(op, 0, "", fmt.Errorf("%w: creating request: %w", ErrNotSent, err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("op", string(op)).
			Msg("error sending request to OpenWeatherMap")
		return newAPIError(op, 0, "", fmt.Errorf("sending request: %w", err))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error().Err(cerr).Str("op", string(op)).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newAPIError(op, resp.StatusCode, "", fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(op, resp.StatusCode, upstreamMessage(body),
			fmt.Errorf("API returned status %d", resp.StatusCode))
		c.logger.Error().
			Str("op", string(op)).
			Int("status", resp.StatusCode).
			Str("detail", apiErr.Detail()).
			Msg("OpenWeatherMap returned non-success status")
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error().Err(err).Str("op", string(op)).Msg("failed to decode OpenWeatherMap response")
		return newAPIError(op, resp.StatusCode, "", fmt.Errorf("decoding response: %w", err))
	}

	c.logger.Debug().
		Str("op", string(op)).
		Dur("duration", time.Since(start)).
		Msg("fetched from OpenWeatherMap")
	return nil
}
