package dashboard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openweather"
)

func loadFixture[T any](t *testing.T, name string) *T {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return &v
}

// fakeGateway answers from fixtures unless an error is set for an op
type fakeGateway struct {
	current  *models.CurrentWeather
	forecast *models.Forecast
	air      *models.AirPollution
	uv       *models.UVIndex

	errs  map[openweather.Op]error
	delay time.Duration

	mu    sync.Mutex
	calls map[openweather.Op]int
	// ctxErrs records ctx.Err() seen after each call's delay
	ctxErrs map[openweather.Op]error
}

func newFakeGateway(t *testing.T) *fakeGateway {
	return &fakeGateway{
		current:  loadFixture[models.CurrentWeather](t, "owm_current.json"),
		forecast: loadFixture[models.Forecast](t, "owm_forecast.json"),
		air:      loadFixture[models.AirPollution](t, "owm_air_pollution.json"),
		uv:       loadFixture[models.UVIndex](t, "owm_uvi.json"),
		errs:     map[openweather.Op]error{},
		calls:    map[openweather.Op]int{},
		ctxErrs:  map[openweather.Op]error{},
	}
}

func (f *fakeGateway) record(ctx context.Context, op openweather.Op) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	f.ctxErrs[op] = ctx.Err()
	return f.errs[op]
}

func (f *fakeGateway) callCount(op openweather.Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeGateway) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	if err := f.record(ctx, openweather.OpCurrent); err != nil {
		return nil, err
	}
	return f.current, nil
}

func (f *fakeGateway) CurrentByCity(ctx context.Context, name string) (*models.CurrentWeather, error) {
	if err := f.record(ctx, openweather.OpCity); err != nil {
		return nil, err
	}
	return f.current, nil
}

func (f *fakeGateway) Forecast(ctx context.Context, lat, lon float64) (*models.Forecast, error) {
	if err := f.record(ctx, openweather.OpForecast); err != nil {
		return nil, err
	}
	return f.forecast, nil
}

func (f *fakeGateway) AirPollution(ctx context.Context, lat, lon float64) (*models.AirPollution, error) {
	if err := f.record(ctx, openweather.OpAirPollution); err != nil {
		return nil, err
	}
	return f.air, nil
}

func (f *fakeGateway) UVIndex(ctx context.Context, lat, lon float64) (*models.UVIndex, error) {
	if err := f.record(ctx, openweather.OpUV); err != nil {
		return nil, err
	}
	return f.uv, nil
}

type fakeLocator struct {
	granted   bool
	permErr   error
	coords    models.Coordinates
	posErr    error
	positions int
}

func (l *fakeLocator) RequestPermission(ctx context.Context) (bool, error) {
	return l.granted, l.permErr
}

func (l *fakeLocator) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	l.positions++
	return l.coords, l.posErr
}

// fakeClock advances only when the assembler waits or a test calls advance
type fakeClock struct {
	mu      sync.Mutex
	t       time.Time
	waited  []time.Duration
	waitErr error
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func (c *fakeClock) wait(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waited = append(c.waited, d)
	if c.waitErr != nil {
		return c.waitErr
	}
	c.t = c.t.Add(d)
	return nil
}

type loadRecord struct {
	trigger string
	failed  bool
}

type recordingObserver struct {
	loads []loadRecord
}

func (r *recordingObserver) ObserveLoad(trigger string, err error) {
	r.loads = append(r.loads, loadRecord{trigger: trigger, failed: err != nil})
}

var errUpstream = errors.New("upstream down")
