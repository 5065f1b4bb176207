package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"isin-grid-service/internal/domain"
)

// Initialize the Postgres schema and built-in presets. Mirrors InitSchema
// but with Postgres placeholders and conflict handling.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSatellitesQuery := `
	CREATE TABLE IF NOT EXISTS satellites (
		name TEXT PRIMARY KEY,
		num_rows INTEGER NOT NULL
	);
	`

	if _, err := tx.ExecContext(ctx, createSatellitesQuery); err != nil {
		return fmt.Errorf("init postgres schema: create satellites table: %w", err)
	}

	insertBuiltin := `
	INSERT INTO satellites (name, num_rows)
	VALUES ($1, $2)
	ON CONFLICT (name) DO NOTHING;
	`
	stmt, err := tx.PrepareContext(ctx, insertBuiltin)
	if err != nil {
		return fmt.Errorf("init postgres schema: prepare builtin insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range domain.BuiltinSatellites() {
		if _, err := stmt.ExecContext(ctx, p.Name, p.Rows); err != nil {
			return fmt.Errorf("init postgres schema: insert builtin %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate Postgres with extra satellite presets from a JSON file.
func SeedPostgresFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed satellites: read %q: %w", jsonPath, err)
	}

	var data []SatelliteSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed satellites: parse json: %w", err)
	}

	rows := make([]SatelliteSeed, 0, len(data))
	for i, item := range data {
		name := strings.ToLower(strings.TrimSpace(item.Name))
		if name == "" {
			return fmt.Errorf("seed satellites: item at index %d: name cannot be empty", i+1)
		}

		numRows, err := domain.CustomRows(item.NumRows)
		if err != nil {
			return fmt.Errorf("seed satellites: item %q: %w", name, err)
		}
		rows = append(rows, SatelliteSeed{Name: name, NumRows: numRows})
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed satellites: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO satellites (name, num_rows)
	VALUES ($1, $2)
	ON CONFLICT (name) DO UPDATE
	SET num_rows = EXCLUDED.num_rows;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed satellites: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.ExecContext(ctx, p.Name, p.NumRows); err != nil {
			return fmt.Errorf("seed satellites: insert name=%q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed satellites: commit tx: %w", err)
	}

	return nil
}
