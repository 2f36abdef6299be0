package dashboard

import (
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Trigger identifies what started a load
type Trigger int

const (
	TriggerMount Trigger = iota
	TriggerCity
)

func (t Trigger) String() string {
	switch t {
	case TriggerMount:
		return "mount"
	case TriggerCity:
		return "city"
	default:
		return "unknown"
	}
}

// Snapshot holds the four records of one successful load. It is replaced
// wholesale by the next load and never mutated.
type Snapshot struct {
	Current      *models.CurrentWeather
	Forecast     *models.Forecast
	AirPollution *models.AirPollution
	UV           *models.UVIndex
	Coordinates  models.Coordinates
	Trigger      Trigger
	FetchedAt    time.Time
}

// State is the view state. Exactly one of Idle, Loading, Loaded or Failed.
type State interface {
	state()
}

type Idle struct{}

// Loading keeps the last snapshot, if any, so it can stay on screen
// behind the loading overlay.
type Loading struct {
	Trigger  Trigger
	Previous *Snapshot
}

type Loaded struct {
	Snapshot Snapshot
}

type Failed struct {
	Err error
}

func (Idle) state()    {}
func (Loading) state() {}
func (Loaded) state()  {}
func (Failed) state()  {}

// Begin moves any state into Loading, carrying forward the snapshot on display
func Begin(current State, trigger Trigger) Loading {
	next := Loading{Trigger: trigger}
	switch s := current.(type) {
	case Loaded:
		snap := s.Snapshot
		next.Previous = &snap
	case Loading:
		next.Previous = s.Previous
	}
	return next
}

// Resolve turns the outcome of a load into the next state
func Resolve(snap Snapshot, err error) State {
	if err != nil {
		return Failed{Err: err}
	}
	return Loaded{Snapshot: snap}
}
