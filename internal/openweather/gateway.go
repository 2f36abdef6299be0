// Package openweather is the gateway to the OpenWeatherMap 2.5 API.
package openweather

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Gateway defines the requests the dashboard issues against the weather provider
type Gateway interface {
	// CurrentByCoords retrieves current weather for a coordinate
	CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error)

	// CurrentByCity retrieves current weather for a city name; the result
	// always carries the resolved coordinates
	CurrentByCity(ctx context.Context, name string) (*models.CurrentWeather, error)

	// Forecast retrieves the 5-day forecast in 3-hour steps
	Forecast(ctx context.Context, lat, lon float64) (*models.Forecast, error)

	// AirPollution retrieves the current air pollution reading
	AirPollution(ctx context.Context, lat, lon float64) (*models.AirPollution, error)

	// UVIndex retrieves the current UV index
	UVIndex(ctx context.Context, lat, lon float64) (*models.UVIndex, error)
}

var (
	_ Gateway = (*Client)(nil)
	_ Gateway = (*BreakerGateway)(nil)
	_ Gateway = (*RateLimitedGateway)(nil)
	_ Gateway = (*InstrumentedGateway)(nil)
)
