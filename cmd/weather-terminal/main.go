package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/ngmaloney/weather-terminal/internal/cities"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/httplog"
	"github.com/ngmaloney/weather-terminal/internal/location"
	"github.com/ngmaloney/weather-terminal/internal/logger"
	"github.com/ngmaloney/weather-terminal/internal/metrics"
	"github.com/ngmaloney/weather-terminal/internal/openweather"
	"github.com/ngmaloney/weather-terminal/internal/ui"
)

func main() {
	city := flag.String("city", "", "Load a city by name instead of the current location (e.g., Izmir)")
	lat := flag.Float64("lat", 0, "Latitude of the current location (requires --lon)")
	lon := flag.Float64("lon", 0, "Longitude of the current location (requires --lat)")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["lat"] != set["lon"] {
		fmt.Println("Error: --lat and --lon must be given together.")
		os.Exit(1)
	}

	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if set["lat"] {
		cfg.Location.Mode = config.LocationModeStatic
		cfg.Location.Lat = *lat
		cfg.Location.Lon = *lon
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(cfg, *city); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, city string) error {
	log := logger.NewLogger(cfg.LogsPath, "weather-terminal")
	traces := httplog.NewFileLogger(logger.RotatingWriter(cfg.HTTPLogsPath))
	defer func() { _ = traces.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("weather_terminal")
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics listener stopped")
			}
		}()
	}

	httpClient := &http.Client{
		Transport: httplog.NewRoundTripper(traces),
		Timeout:   cfg.OpenWeather.Timeout,
	}

	var gateway openweather.Gateway = openweather.NewClient(cfg.OpenWeather, httpClient, log)
	gateway = openweather.NewInstrumentedGateway(gateway, m)
	gateway = openweather.NewRateLimitedGateway(gateway, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	gateway = openweather.NewBreakerGateway("openweather", openweather.BreakerConfig{
		Interval:     cfg.Breaker.Interval,
		Timeout:      cfg.Breaker.Timeout,
		RepeatNumber: cfg.Breaker.RepeatNumber,
	}, gateway)

	locator, err := location.New(cfg.Location, httpClient, log)
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = database.DBPath()
	}
	if err := database.EnsureSchema(dbPath); err != nil {
		return fmt.Errorf("preparing city list: %w", err)
	}

	assembler := dashboard.NewAssembler(gateway, locator, cfg.MinLoading, log, dashboard.WithObserver(m))

	log.Info().
		Str("location_mode", cfg.Location.Mode).
		Str("city", city).
		Str("units", cfg.OpenWeather.Units).
		Msg("starting")

	model := ui.NewModel(assembler, cities.NewRepository(dbPath), ui.Options{
		InitialCity: city,
		Units:       cfg.OpenWeather.Units,
		Logger:      log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
