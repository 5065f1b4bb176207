package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"isin-grid-service/internal/domain"
	"isin-grid-service/internal/ports"
)

// SQLite-backed implementation of the SatelliteCatalog port.
type SqliteSatelliteRepository struct{ DB *sql.DB }

func NewSqliteSatelliteRepository(db *sql.DB) *SqliteSatelliteRepository {
	return &SqliteSatelliteRepository{DB: db}
}

// Return all satellite presets stored in the database.
func (s *SqliteSatelliteRepository) ListSatellites(ctx context.Context) ([]domain.SatellitePreset, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite satellite repository: DB is nil")
	}

	query := `
	SELECT
		name,
		num_rows
	FROM satellites
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list satellites: query satellites table: %w", err)
	}
	defer rows.Close()

	presets := make([]domain.SatellitePreset, 0, 8)
	for rows.Next() {
		var name string
		var numRows int
		if err := rows.Scan(&name, &numRows); err != nil {
			return nil, fmt.Errorf("list satellites: scan row: %w", err)
		}
		presets = append(presets, domain.SatellitePreset{Name: name, Rows: numRows})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list satellites: row iteration: %w", err)
	}

	return presets, nil
}

// Return the grid row count for a named satellite.
func (s *SqliteSatelliteRepository) GetRows(ctx context.Context, name string) (int, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite satellite repository: DB is nil")
	}

	query := `
	SELECT num_rows
	FROM satellites
	WHERE name = ?;
	`

	var numRows int
	err := s.DB.QueryRowContext(ctx, query, name).Scan(&numRows)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("get rows: satellite %q: %w", name, ports.ErrSatelliteNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("get rows: query satellites table: %w", err)
	}

	return numRows, nil
}
