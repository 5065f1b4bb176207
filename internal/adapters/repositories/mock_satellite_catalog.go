package repositories

import (
	"context"
	"fmt"
	"sort"

	"isin-grid-service/internal/domain"
	"isin-grid-service/internal/ports"
)

// In-memory SatelliteCatalog for tests and offline runs.
type MockSatelliteCatalog struct {
	rows map[string]int
}

func NewMockSatelliteCatalog(rows map[string]int) *MockSatelliteCatalog {
	m := make(map[string]int, len(rows))
	for name, r := range rows {
		m[name] = r
	}
	return &MockSatelliteCatalog{rows: m}
}

func (c *MockSatelliteCatalog) ListSatellites(ctx context.Context) ([]domain.SatellitePreset, error) {
	presets := make([]domain.SatellitePreset, 0, len(c.rows))
	for name, r := range c.rows {
		presets = append(presets, domain.SatellitePreset{Name: name, Rows: r})
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

func (c *MockSatelliteCatalog) GetRows(ctx context.Context, name string) (int, error) {
	r, ok := c.rows[name]
	if !ok {
		return 0, fmt.Errorf("mock catalog: satellite %q: %w", name, ports.ErrSatelliteNotFound)
	}
	return r, nil
}
