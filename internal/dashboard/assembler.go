package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ngmaloney/weather-terminal/internal/location"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openweather"
)

const DefaultMinLoading = 1500 * time.Millisecond

// LoadObserver is told the outcome of every load
type LoadObserver interface {
	ObserveLoad(trigger string, err error)
}

// Assembler runs the two load flows and produces snapshots for the view
type Assembler struct {
	gateway    openweather.Gateway
	locator    location.Provider
	minLoading time.Duration
	logger     zerolog.Logger
	observer   LoadObserver

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

type Option func(*Assembler)

// WithClock replaces the wall clock and the padding wait
func WithClock(now func() time.Time, wait func(context.Context, time.Duration) error) Option {
	return func(a *Assembler) {
		a.now = now
		a.wait = wait
	}
}

func WithObserver(observer LoadObserver) Option {
	return func(a *Assembler) {
		a.observer = observer
	}
}

func NewAssembler(gateway openweather.Gateway, locator location.Provider, minLoading time.Duration, logger zerolog.Logger, opts ...Option) *Assembler {
	a := &Assembler{
		gateway:    gateway,
		locator:    locator,
		minLoading: minLoading,
		logger:     logger,
		now:        time.Now,
		wait:       sleep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LoadCurrentLocation asks for location permission, reads one position and
// fetches all four records for it concurrently.
func (a *Assembler) LoadCurrentLocation(ctx context.Context) (Snapshot, error) {
	snap, err := a.loadCurrentLocation(ctx)
	a.finish(TriggerMount, err)
	return snap, err
}

func (a *Assembler) loadCurrentLocation(ctx context.Context) (Snapshot, error) {
	granted, err := a.locator.RequestPermission(ctx)
	if err != nil {
		return Snapshot{}, newError(LocationUnavailable, TriggerMount, err)
	}
	if !granted {
		return Snapshot{}, newError(PermissionDenied, TriggerMount, nil)
	}

	coords, err := a.locator.CurrentPosition(ctx)
	if err != nil {
		if errors.Is(err, location.ErrPermissionDenied) {
			return Snapshot{}, newError(PermissionDenied, TriggerMount, err)
		}
		return Snapshot{}, newError(LocationUnavailable, TriggerMount, err)
	}

	snap := Snapshot{Coordinates: coords, Trigger: TriggerMount}
	var g errgroup.Group
	g.Go(func() error {
		cw, err := a.gateway.CurrentByCoords(ctx, coords.Lat, coords.Lon)
		snap.Current = cw
		return err
	})
	a.fetchDetails(ctx, &g, coords, &snap)

	if err := g.Wait(); err != nil {
		return Snapshot{}, newError(DataFetchFailed, TriggerMount, err)
	}
	snap.FetchedAt = a.now()
	return snap, nil
}

// LoadCity looks the city up first and uses its coordinates for the other
// three records. A successful load never returns before the minimum loading
// time has passed; failures return as soon as they are known.
func (a *Assembler) LoadCity(ctx context.Context, name string) (Snapshot, error) {
	start := a.now()
	snap, err := a.loadCity(ctx, name)

	if remaining := a.minLoading - a.now().Sub(start); err == nil && remaining > 0 {
		if werr := a.wait(ctx, remaining); werr != nil {
			snap, err = Snapshot{}, newError(DataFetchFailed, TriggerCity, werr)
		}
	}

	a.finish(TriggerCity, err)
	return snap, err
}

func (a *Assembler) loadCity(ctx context.Context, name string) (Snapshot, error) {
	cw, err := a.gateway.CurrentByCity(ctx, name)
	if err != nil {
		return Snapshot{}, newError(DataFetchFailed, TriggerCity, err)
	}
	if cw.Coord == nil {
		return Snapshot{}, newError(DataFetchFailed, TriggerCity, fmt.Errorf("no coordinates for %q", name))
	}

	coords := *cw.Coord
	snap := Snapshot{Current: cw, Coordinates: coords, Trigger: TriggerCity}
	var g errgroup.Group
	a.fetchDetails(ctx, &g, coords, &snap)

	if err := g.Wait(); err != nil {
		return Snapshot{}, newError(DataFetchFailed, TriggerCity, err)
	}
	snap.FetchedAt = a.now()
	return snap, nil
}

// fetchDetails starts the forecast, air pollution and UV requests. Each
// goroutine writes its own field of snap.
func (a *Assembler) fetchDetails(ctx context.Context, g *errgroup.Group, coords models.Coordinates, snap *Snapshot) {
	g.Go(func() error {
		fc, err := a.gateway.Forecast(ctx, coords.Lat, coords.Lon)
		snap.Forecast = fc
		return err
	})
	g.Go(func() error {
		ap, err := a.gateway.AirPollution(ctx, coords.Lat, coords.Lon)
		snap.AirPollution = ap
		return err
	})
	g.Go(func() error {
		uv, err := a.gateway.UVIndex(ctx, coords.Lat, coords.Lon)
		snap.UV = uv
		return err
	})
}

func (a *Assembler) finish(trigger Trigger, err error) {
	if a.observer != nil {
		a.observer.ObserveLoad(trigger.String(), err)
	}
	if err != nil {
		a.logger.Error().Err(err).Str("trigger", trigger.String()).Msg("load failed")
		return
	}
	a.logger.Info().Str("trigger", trigger.String()).Msg("load complete")
}
