package location

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Provider is the device location boundary: a permission prompt followed by
// a one-shot position read.
type Provider interface {
	RequestPermission(ctx context.Context) (bool, error)
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

// New builds the provider selected by cfg.Mode
func New(cfg config.Location, httpClient *http.Client, logger zerolog.Logger) (Provider, error) {
	switch cfg.Mode {
	case config.LocationModeIP:
		return NewIPAPI(cfg.IPAPIURL, httpClient, logger), nil
	case config.LocationModeStatic:
		return NewStatic(cfg.Lat, cfg.Lon), nil
	case config.LocationModeOff:
		return Denied{}, nil
	default:
		return nil, fmt.Errorf("unknown location mode %q", cfg.Mode)
	}
}
