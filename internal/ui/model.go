package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ngmaloney/weather-terminal/internal/cities"
	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Loader runs the two dashboard load flows
type Loader interface {
	LoadCurrentLocation(ctx context.Context) (dashboard.Snapshot, error)
	LoadCity(ctx context.Context, name string) (dashboard.Snapshot, error)
}

// CityStore is the persisted list shown in the city modal
type CityStore interface {
	List() ([]models.City, error)
	Add(name, country string) (models.City, error)
	Delete(name string) error
}

// Options tweak a new Model
type Options struct {
	// InitialCity loads a named city instead of the current location
	InitialCity string
	// Units is the units flag sent upstream and picks the temperature suffix
	Units  string
	Logger zerolog.Logger
	Now    func() time.Time
}

// chromeHeight is the number of lines around the scrolling viewport
const chromeHeight = 6

// Model represents the application's state
type Model struct {
	width  int
	height int

	loader Loader
	store  CityStore
	opts   Options
	logger zerolog.Logger

	// view is the dashboard view state. seq numbers loads so that only the
	// latest one may resolve it.
	view dashboard.State
	seq  int

	spinner  spinner.Model
	viewport viewport.Model

	cities    []models.City
	cityList  list.Model
	modalOpen bool

	status    string
	statusErr bool
}

// NewModel creates a new application model with the first load pending
func NewModel(loader Loader, store CityStore, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Units == "" {
		opts.Units = "metric"
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	trigger := dashboard.TriggerMount
	if opts.InitialCity != "" {
		trigger = dashboard.TriggerCity
	}

	return Model{
		loader:   loader,
		store:    store,
		opts:     opts,
		logger:   opts.Logger,
		view:     dashboard.Begin(dashboard.Idle{}, trigger),
		seq:      1,
		spinner:  s,
		viewport: viewport.New(80, 20),
		cityList: createCityList(nil, "", 40, 20),
	}
}

// Init starts the first load and reads the city list
func (m Model) Init() tea.Cmd {
	load := loadCurrentLocation(m.loader, m.seq)
	if m.opts.InitialCity != "" {
		load = loadCity(m.loader, m.seq, m.opts.InitialCity)
	}
	return tea.Batch(m.spinner.Tick, load, listCities(m.store))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.cityList.SetSize(min(msg.Width-8, 60), max(msg.Height-8, 5))
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		if msg.seq != m.seq {
			m.logger.Debug().Int("seq", msg.seq).Int("current", m.seq).Msg("dropping stale load result")
			return m, nil
		}
		m.view = dashboard.Resolve(msg.snapshot, msg.err)
		if loaded, ok := m.view.(dashboard.Loaded); ok {
			m.refreshViewport()
			m.viewport.GotoTop()
			return m, m.cityList.SetItems(cityItems(m.cities, currentName(loaded.Snapshot)))
		}
		return m, nil

	case citiesListedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("City list unavailable: %v", msg.err), true)
			return m, nil
		}
		m.cities = msg.cities
		return m, m.cityList.SetItems(cityItems(m.cities, m.currentCity()))

	case cityAddedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Could not add city: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Added %s to the city list", msg.city.Name), false)
		return m, listCities(m.store)

	case cityDeletedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, cities.ErrBuiltin) {
				m.setStatus(fmt.Sprintf("%s is a built-in city", msg.name), true)
			} else {
				m.setStatus(fmt.Sprintf("Could not remove city: %v", msg.err), true)
			}
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Removed %s", msg.name), false)
		return m, listCities(m.store)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modalOpen {
			return m.handleCityModal(msg)
		}
		return m.handleKey(msg)
	}

	if m.modalOpen {
		var cmd tea.Cmd
		m.cityList, cmd = m.cityList.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey handles keyboard input outside the city modal
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "c":
		m.modalOpen = true
		m.status = ""
		return m, nil
	case "r":
		return m, m.startLoad(dashboard.TriggerMount, "")
	case "a":
		loaded, ok := m.view.(dashboard.Loaded)
		if !ok || loaded.Snapshot.Current == nil {
			return m, nil
		}
		cw := loaded.Snapshot.Current
		return m, addCity(m.store, cw.Name, cw.Sys.Country)
	}

	if _, ok := m.view.(dashboard.Failed); ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleCityModal handles keyboard input while the city list is open
func (m Model) handleCityModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing a filter owns every key
	if m.cityList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.cityList, cmd = m.cityList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.cityList.FilterState() == list.FilterApplied {
			m.cityList.ResetFilter()
			return m, nil
		}
		m.modalOpen = false
		return m, nil
	case "enter":
		item, ok := m.cityList.SelectedItem().(cityItem)
		if !ok {
			return m, nil
		}
		m.modalOpen = false
		return m, m.startLoad(dashboard.TriggerCity, item.city.Name)
	case "x":
		item, ok := m.cityList.SelectedItem().(cityItem)
		if !ok {
			return m, nil
		}
		return m, deleteCity(m.store, item.city.Name)
	}

	var cmd tea.Cmd
	m.cityList, cmd = m.cityList.Update(msg)
	return m, cmd
}

// startLoad supersedes any running load
func (m *Model) startLoad(trigger dashboard.Trigger, city string) tea.Cmd {
	m.seq++
	m.view = dashboard.Begin(m.view, trigger)
	m.status = ""

	m.logger.Info().Str("trigger", trigger.String()).Str("city", city).Int("seq", m.seq).Msg("starting load")

	load := loadCurrentLocation(m.loader, m.seq)
	if trigger == dashboard.TriggerCity {
		load = loadCity(m.loader, m.seq, city)
	}
	return tea.Batch(m.spinner.Tick, load)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	if isErr {
		m.logger.Warn().Msg(text)
	}
}

func (m *Model) refreshViewport() {
	if snap := m.snapshot(); snap != nil {
		m.viewport.SetContent(m.renderDashboard(*snap, m.viewport.Width))
	}
}

func (m Model) loading() bool {
	_, ok := m.view.(dashboard.Loading)
	return ok
}

// snapshot is the data on screen, including the one kept behind the overlay
func (m Model) snapshot() *dashboard.Snapshot {
	switch v := m.view.(type) {
	case dashboard.Loaded:
		return &v.Snapshot
	case dashboard.Loading:
		return v.Previous
	}
	return nil
}

func (m Model) currentCity() string {
	if snap := m.snapshot(); snap != nil {
		return currentName(*snap)
	}
	return ""
}

func currentName(snap dashboard.Snapshot) string {
	if snap.Current == nil {
		return ""
	}
	return snap.Current.Name
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.modalOpen {
		return m.viewCityModal()
	}

	switch v := m.view.(type) {
	case dashboard.Failed:
		return m.viewError(v.Err)
	case dashboard.Loading:
		if v.Previous == nil {
			return m.viewSplash()
		}
		return m.viewDashboard(*v.Previous, true)
	case dashboard.Loaded:
		return m.viewDashboard(v.Snapshot, false)
	}
	return m.viewSplash()
}
