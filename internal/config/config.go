package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Location modes
const (
	LocationModeIP     = "ip"
	LocationModeStatic = "static"
	LocationModeOff    = "off"
)

type OpenWeather struct {
	APIKey  string        `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	BaseURL string        `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	Units   string        `envconfig:"OPENWEATHER_UNITS" default:"metric"`
	Lang    string        `envconfig:"OPENWEATHER_LANG" default:"tr"`
	Timeout time.Duration `envconfig:"OPENWEATHER_TIMEOUT" default:"30s"`
}

type Location struct {
	Mode     string  `envconfig:"WEATHER_LOCATION_MODE" default:"ip"`
	Lat      float64 `envconfig:"WEATHER_LOCATION_LAT" default:"0"`
	Lon      float64 `envconfig:"WEATHER_LOCATION_LON" default:"0"`
	IPAPIURL string  `envconfig:"IPAPI_URL" default:"http://ip-api.com/json"`
}

type Breaker struct {
	Interval     time.Duration `envconfig:"BREAKER_INTERVAL" default:"30s"`
	Timeout      time.Duration `envconfig:"BREAKER_TIMEOUT" default:"10s"`
	RepeatNumber uint32        `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type RateLimit struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"1"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"4"`
}

type Config struct {
	OpenWeather OpenWeather
	Location    Location
	Breaker     Breaker
	RateLimit   RateLimit

	// MinLoading is the floor applied to city loads so the loading
	// overlay is visible even when the API answers instantly.
	MinLoading time.Duration `envconfig:"WEATHER_MIN_LOADING" default:"1500ms"`

	DBPath       string `envconfig:"WEATHER_DB_PATH" default:""`
	LogsPath     string `envconfig:"LOGS_PATH" default:"log/weather-terminal.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"log/http.log"`
	MetricsAddr  string `envconfig:"METRICS_ADDR" default:""`
}

// NewConfig reads the configuration from the environment
func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot express with tags
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenWeather.APIKey) == "" {
		return fmt.Errorf("OPENWEATHER_API_KEY must not be empty")
	}
	switch c.Location.Mode {
	case LocationModeIP, LocationModeStatic, LocationModeOff:
	default:
		return fmt.Errorf("invalid WEATHER_LOCATION_MODE %q: want ip, static or off", c.Location.Mode)
	}
	if c.Location.Mode == LocationModeStatic {
		if c.Location.Lat < -90 || c.Location.Lat > 90 || c.Location.Lon < -180 || c.Location.Lon > 180 {
			return fmt.Errorf("static location out of range: %.4f, %.4f", c.Location.Lat, c.Location.Lon)
		}
	}
	if c.MinLoading < 0 {
		return fmt.Errorf("WEATHER_MIN_LOADING must not be negative")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit must allow at least one request")
	}
	return nil
}
