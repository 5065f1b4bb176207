package ports

import (
	"context"
	"errors"

	"isin-grid-service/internal/domain"
)

// ErrSatelliteNotFound is returned by catalog implementations when a named
// satellite has no preset.
var ErrSatelliteNotFound = errors.New("satellite not found")

// Port: a boundary for resolving satellite presets from a data source.
type SatelliteCatalog interface {
	// Return all known satellite presets.
	ListSatellites(ctx context.Context) ([]domain.SatellitePreset, error)
	// Return the grid row count for a named satellite.
	GetRows(ctx context.Context, name string) (int, error)
}
