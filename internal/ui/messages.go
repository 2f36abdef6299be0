package ui

import (
	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Message types for async operations

// loadedMsg is sent when a dashboard load settles. seq identifies the load
// so results of superseded loads can be dropped.
type loadedMsg struct {
	seq      int
	snapshot dashboard.Snapshot
	err      error
}

// citiesListedMsg is sent when the city list has been read
type citiesListedMsg struct {
	cities []models.City
	err    error
}

// cityAddedMsg is sent after the current city was saved to the list
type cityAddedMsg struct {
	city models.City
	err  error
}

// cityDeletedMsg is sent after a city was removed from the list
type cityDeletedMsg struct {
	name string
	err  error
}
