package location

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Static always grants permission and reports fixed coordinates
type Static struct {
	coords models.Coordinates
}

func NewStatic(lat, lon float64) *Static {
	return &Static{coords: models.Coordinates{Lat: lat, Lon: lon}}
}

func (s *Static) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (s *Static) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	return s.coords, nil
}

// Denied refuses permission, as when the user has switched location off
type Denied struct{}

func (Denied) RequestPermission(ctx context.Context) (bool, error) {
	return false, nil
}

func (Denied) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, ErrPermissionDenied
}
