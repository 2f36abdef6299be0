package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ngmaloney/weather-terminal/internal/cities"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/location"
	"github.com/ngmaloney/weather-terminal/internal/openweather"
)

// fakeOpenWeather serves the fixtures by endpoint path
func fakeOpenWeather(t *testing.T, failPath string) *httptest.Server {
	t.Helper()
	files := map[string]string{
		"/weather":       "owm_current.json",
		"/forecast":      "owm_forecast.json",
		"/air_pollution": "owm_air_pollution.json",
		"/uvi":           "owm_uvi.json",
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == failPath {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"message":"bad gateway"}`))
			return
		}
		name, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
		if err != nil {
			t.Errorf("reading fixture: %v", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	t.Cleanup(server.Close)
	return server
}

func newIntegrationModel(t *testing.T, server *httptest.Server, locator location.Provider) Model {
	t.Helper()
	client := openweather.NewClient(config.OpenWeather{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Units:   "metric",
		Lang:    "tr",
		Timeout: 5 * time.Second,
	}, nil, zerolog.Nop())

	assembler := dashboard.NewAssembler(client, locator, 10*time.Millisecond, zerolog.Nop())
	store := cities.NewRepository(filepath.Join(t.TempDir(), "cities.db"))
	return newTestModel(assembler, store)
}

// TestIntegration_MountAndSelectCity tests the complete workflow
func TestIntegration_MountAndSelectCity(t *testing.T) {
	server := fakeOpenWeather(t, "")
	m := newIntegrationModel(t, server, location.NewStatic(41.01, 28.95))

	// Mount load
	msg := loadCurrentLocation(m.loader, m.seq)()
	m, _ = update(t, m, msg)

	loaded, ok := m.view.(dashboard.Loaded)
	if !ok {
		t.Fatalf("after mount view = %#v, want Loaded", m.view)
	}
	if loaded.Snapshot.Current.Name != "Istanbul" || len(loaded.Snapshot.Forecast.List) != 40 {
		t.Errorf("unexpected snapshot %+v", loaded.Snapshot.Current)
	}

	// City list from SQLite
	m, _ = update(t, m, listCities(m.store)())
	if got := len(m.cityList.Items()); got != 10 {
		t.Fatalf("city list has %d items, want 10", got)
	}

	// Select Ankara
	m, _ = update(t, m, keyRune('c'))
	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modalOpen {
		t.Fatal("modal should close on selection")
	}

	start := time.Now()
	msg = loadCity(m.loader, m.seq, "Ankara")()
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("city load took %v, want at least the loading floor", elapsed)
	}
	m, _ = update(t, m, msg)

	if _, ok := m.view.(dashboard.Loaded); !ok {
		t.Fatalf("after city view = %#v, want Loaded", m.view)
	}
	if !strings.Contains(m.renderDashboard(*m.snapshot(), 100), "UV Index") {
		t.Error("expected UV section in dashboard")
	}
}

func TestIntegration_JoinFailureShowsError(t *testing.T) {
	server := fakeOpenWeather(t, "/air_pollution")
	m := newIntegrationModel(t, server, location.NewStatic(41.01, 28.95))

	m, _ = update(t, m, loadCurrentLocation(m.loader, m.seq)())

	failed, ok := m.view.(dashboard.Failed)
	if !ok {
		t.Fatalf("view = %#v, want Failed", m.view)
	}
	if !strings.Contains(m.View(), "Weather data unavailable") {
		t.Errorf("error view = %q", m.View())
	}
	if strings.Contains(m.View(), "Istanbul") {
		t.Error("no partial data should be rendered")
	}
	if !strings.Contains(failed.Err.Error(), "bad gateway") {
		t.Errorf("cause should keep the upstream message, got %v", failed.Err)
	}
}

func TestIntegration_PermissionDenied(t *testing.T) {
	server := fakeOpenWeather(t, "")
	m := newIntegrationModel(t, server, location.Denied{})

	m, _ = update(t, m, loadCurrentLocation(m.loader, m.seq)())

	if !strings.Contains(m.View(), "Location permission denied") {
		t.Errorf("view = %q", m.View())
	}
}
