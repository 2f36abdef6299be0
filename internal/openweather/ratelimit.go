package openweather

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// RateLimitedGateway keeps calls under the provider's request quota
type RateLimitedGateway struct {
	next    Gateway
	limiter *rate.Limiter
}

// NewRateLimitedGateway allows rps requests per second with the given burst.
// A dashboard load issues four requests, so burst should be at least 4.
func NewRateLimitedGateway(next Gateway, rps float64, burst int) *RateLimitedGateway {
	return &RateLimitedGateway{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedGateway) wait(ctx context.Context, op Op) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return newAPIError(op, 0, "", fmt.Errorf("%w: rate limit wait: %w", ErrNotSent, err))
	}
	return nil
}

func (r *RateLimitedGateway) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	if err := r.wait(ctx, OpCurrent); err != nil {
		return nil, err
	}
	return r.next.CurrentByCoords(ctx, lat, lon)
}

func (r *RateLimitedGateway) CurrentByCity(ctx context.Context, name string) (*models.CurrentWeather, error) {
	if err := r.wait(ctx, OpCity); err != nil {
		return nil, err
	}
	return r.next.CurrentByCity(ctx, name)
}

func (r *RateLimitedGateway) Forecast(ctx context.Context, lat, lon float64) (*models.Forecast, error) {
	if err := r.wait(ctx, OpForecast); err != nil {
		return nil, err
	}
	return r.next.Forecast(ctx, lat, lon)
}

func (r *RateLimitedGateway) AirPollution(ctx context.Context, lat, lon float64) (*models.AirPollution, error) {
	if err := r.wait(ctx, OpAirPollution); err != nil {
		return nil, err
	}
	return r.next.AirPollution(ctx, lat, lon)
}

func (r *RateLimitedGateway) UVIndex(ctx context.Context, lat, lon float64) (*models.UVIndex, error) {
	if err := r.wait(ctx, OpUV); err != nil {
		return nil, err
	}
	return r.next.UVIndex(ctx, lat, lon)
}
