package openweather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

type BreakerConfig struct {
	Interval     time.Duration
	Timeout      time.Duration
	RepeatNumber uint32
}

// BreakerGateway fails fast while the upstream is known to be down
type BreakerGateway struct {
	cb   *gobreaker.CircuitBreaker
	next Gateway
}

func NewBreakerGateway(name string, cfg BreakerConfig, next Gateway) *BreakerGateway {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		// An unknown city or a request that never left says nothing
		// about upstream health
		IsSuccessful: func(err error) bool {
			return err == nil || IsClientError(err) || IsLocalError(err)
		},
	}
	return &BreakerGateway{
		cb:   gobreaker.NewCircuitBreaker(settings),
		next: next,
	}
}

// State exposes the breaker state for logging
func (b *BreakerGateway) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerGateway) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	return execute(b.cb, OpCurrent, func() (*models.CurrentWeather, error) {
		return b.next.CurrentByCoords(ctx, lat, lon)
	})
}

func (b *BreakerGateway) CurrentByCity(ctx context.Context, name string) (*models.CurrentWeather, error) {
	return execute(b.cb, OpCity, func() (*models.CurrentWeather, error) {
		return b.next.CurrentByCity(ctx, name)
	})
}

func (b *BreakerGateway) Forecast(ctx context.Context, lat, lon float64) (*models.Forecast, error) {
	return execute(b.cb, OpForecast, func() (*models.Forecast, error) {
		return b.next.Forecast(ctx, lat, lon)
	})
}

func (b *BreakerGateway) AirPollution(ctx context.Context, lat, lon float64) (*models.AirPollution, error) {
	return execute(b.cb, OpAirPollution, func() (*models.AirPollution, error) {
		return b.next.AirPollution(ctx, lat, lon)
	})
}

func (b *BreakerGateway) UVIndex(ctx context.Context, lat, lon float64) (*models.UVIndex, error) {
	return execute(b.cb, OpUV, func() (*models.UVIndex, error) {
		return b.next.UVIndex(ctx, lat, lon)
	})
}

func execute[T any](cb *gobreaker.CircuitBreaker, op Op, fn func() (*T, error)) (*T, error) {
	result, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, newAPIError(op, 0, "", fmt.Errorf("circuit %s: %w", cb.Name(), err))
		}
		return nil, err
	}
	res, ok := result.(*T)
	if !ok {
		return nil, newAPIError(op, 0, "", fmt.Errorf("unexpected result type %T", result))
	}
	return res, nil
}
