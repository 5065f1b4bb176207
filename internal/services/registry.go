package services

import (
	"fmt"
	"sync"

	"isin-grid-service/internal/domain"
)

// GridRegistry memoizes one grid per row count. Grid construction is
// O(rows) and the result is immutable, so every resolution is built once
// and shared by all subsequent queries. The lock guards only the map;
// queries against a returned grid need no synchronization.
type GridRegistry struct {
	mu    sync.RWMutex
	grids map[int]*domain.Grid
}

func NewGridRegistry() *GridRegistry {
	return &GridRegistry{grids: make(map[int]*domain.Grid)}
}

// Get returns the grid for the given row count, building it on first use.
func (r *GridRegistry) Get(rows int) (*domain.Grid, error) {
	r.mu.RLock()
	g, ok := r.grids[rows]
	r.mu.RUnlock()
	if ok {
		return g, nil
	}

	g, err := domain.NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("grid registry: build grid rows=%d: %w", rows, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have built the same grid while we were; keep the
	// first one so callers always share a single table per resolution.
	if existing, ok := r.grids[rows]; ok {
		return existing, nil
	}
	r.grids[rows] = g
	return g, nil
}
