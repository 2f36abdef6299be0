package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadTimeout bounds a whole load including the loading floor
const loadTimeout = 45 * time.Second

// loadCurrentLocation runs the mount flow in the background
func loadCurrentLocation(loader Loader, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snap, err := loader.LoadCurrentLocation(ctx)
		return loadedMsg{seq: seq, snapshot: snap, err: err}
	}
}

// loadCity runs the city selection flow in the background
func loadCity(loader Loader, seq int, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snap, err := loader.LoadCity(ctx, name)
		return loadedMsg{seq: seq, snapshot: snap, err: err}
	}
}

func listCities(store CityStore) tea.Cmd {
	return func() tea.Msg {
		cities, err := store.List()
		return citiesListedMsg{cities: cities, err: err}
	}
}

func addCity(store CityStore, name, country string) tea.Cmd {
	return func() tea.Msg {
		city, err := store.Add(name, country)
		return cityAddedMsg{city: city, err: err}
	}
}

func deleteCity(store CityStore, name string) tea.Cmd {
	return func() tea.Msg {
		return cityDeletedMsg{name: name, err: store.Delete(name)}
	}
}
