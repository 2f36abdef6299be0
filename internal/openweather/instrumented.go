package openweather

import (
	"context"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// RequestObserver receives one observation per gateway call
type RequestObserver interface {
	ObserveRequest(op string, d time.Duration, err error)
}

// InstrumentedGateway reports call latency and outcome to an observer
type InstrumentedGateway struct {
	next     Gateway
	observer RequestObserver
}

func NewInstrumentedGateway(next Gateway, observer RequestObserver) *InstrumentedGateway {
	return &InstrumentedGateway{next: next, observer: observer}
}

func (g *InstrumentedGateway) observe(op Op, start time.Time, err error) {
	g.observer.ObserveRequest(string(op), time.Since(start), err)
}

func (g *InstrumentedGateway) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	start := time.Now()
	res, err := g.next.CurrentByCoords(ctx, lat, lon)
	g.observe(OpCurrent, start, err)
	return res, err
}

func (g *InstrumentedGateway) CurrentByCity(ctx context.Context, name string) (*models.CurrentWeather, error) {
	start := time.Now()
	res, err := g.next.CurrentByCity(ctx, name)
	g.observe(OpCity, start, err)
	return res, err
}

func (g *InstrumentedGateway) Forecast(ctx context.Context, lat, lon float64) (*models.Forecast, error) {
	start := time.Now()
	res, err := g.next.Forecast(ctx, lat, lon)
	g.observe(OpForecast, start, err)
	return res, err
}

func (g *InstrumentedGateway) AirPollution(ctx context.Context, lat, lon float64) (*models.AirPollution, error) {
	start := time.Now()
	res, err := g.next.AirPollution(ctx, lat, lon)
	g.observe(OpAirPollution, start, err)
	return res, err
}

func (g *InstrumentedGateway) UVIndex(ctx context.Context, lat, lon float64) (*models.UVIndex, error) {
	start := time.Now()
	res, err := g.next.UVIndex(ctx, lat, lon)
	g.observe(OpUV, start, err)
	return res, err
}
