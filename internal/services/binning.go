package services

import (
	"context"
	"errors"
	"fmt"

	"isin-grid-service/internal/domain"
	"isin-grid-service/internal/platform/obs"
	"isin-grid-service/internal/ports"
)

// GridSelector chooses which grid a query runs against: a named satellite
// preset resolved through the catalog, or a caller-supplied custom row count.
// Exactly one of the two should be set; a named satellite wins when both are.
type GridSelector struct {
	Satellite string
	Rows      int
}

// BinningService answers bin queries against grids resolved from satellite
// presets or custom resolutions. It is safe for concurrent use.
type BinningService struct {
	catalog ports.SatelliteCatalog
	grids   *GridRegistry
}

func NewBinningService(catalog ports.SatelliteCatalog) *BinningService {
	return &BinningService{
		catalog: catalog,
		grids:   NewGridRegistry(),
	}
}

// resolveGrid maps a selector to a shared grid instance.
func (s *BinningService) resolveGrid(ctx context.Context, sel GridSelector) (*domain.Grid, error) {
	if sel.Satellite != "" {
		if s.catalog == nil {
			return nil, errors.New("resolve grid: no satellite catalog configured")
		}

		rows, err := s.catalog.GetRows(ctx, sel.Satellite)
		if err != nil {
			return nil, fmt.Errorf("resolve grid: satellite %q: %w", sel.Satellite, err)
		}
		return s.grids.Get(rows)
	}

	rows, err := domain.CustomRows(sel.Rows)
	if err != nil {
		return nil, fmt.Errorf("resolve grid: %w", err)
	}
	return s.grids.Get(rows)
}

// LookupBins maps coordinate pairs to bin ids on the selected grid.
func (s *BinningService) LookupBins(
	ctx context.Context,
	sel GridSelector,
	lons []float64,
	lats []float64,
) (_ []int, err error) {
	defer obs.Time(ctx, "binning.LookupBins")(&err)

	g, err := s.resolveGrid(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("lookup bins: %w", err)
	}

	bins, err := g.LonLatToBin(lons, lats)
	if err != nil {
		return nil, fmt.Errorf("lookup bins: %w", err)
	}
	return bins, nil
}

// BinCenters returns the center coordinates of the given bins.
func (s *BinningService) BinCenters(
	ctx context.Context,
	sel GridSelector,
	bins []int,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "binning.BinCenters")(&err)

	g, err := s.resolveGrid(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("bin centers: %w", err)
	}

	centers, err := g.BinToLonLat(bins)
	if err != nil {
		return nil, fmt.Errorf("bin centers: %w", err)
	}
	return centers, nil
}

// BinBounds returns the rectangular extents of the given bins.
func (s *BinningService) BinBounds(
	ctx context.Context,
	sel GridSelector,
	bins []int,
) (_ []domain.Bounds, err error) {
	defer obs.Time(ctx, "binning.BinBounds")(&err)

	g, err := s.resolveGrid(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("bin bounds: %w", err)
	}

	bounds, err := g.BinToBounds(bins)
	if err != nil {
		return nil, fmt.Errorf("bin bounds: %w", err)
	}
	return bounds, nil
}

// ListSatellites returns the catalog's presets.
func (s *BinningService) ListSatellites(ctx context.Context) ([]domain.SatellitePreset, error) {
	if s.catalog == nil {
		return nil, errors.New("list satellites: no satellite catalog configured")
	}

	presets, err := s.catalog.ListSatellites(ctx)
	if err != nil {
		return nil, fmt.Errorf("list satellites: %w", err)
	}
	return presets, nil
}
