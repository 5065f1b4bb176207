package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"isin-grid-service/internal/domain"
)

// Initialize the SQLite database schema and the built-in instrument presets.
// Built-ins are inserted with OR IGNORE so a deployment can override a name
// by seeding it afterwards.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSatellitesQuery := `
	CREATE TABLE IF NOT EXISTS satellites (
		name TEXT PRIMARY KEY,
		num_rows INTEGER NOT NULL
	);
	`

	if _, err := tx.Exec(createSatellitesQuery); err != nil {
		return fmt.Errorf("init schema: create satellites table: %w", err)
	}

	insertBuiltin := `
	INSERT OR IGNORE INTO satellites (name, num_rows)
	VALUES (?, ?);
	`
	stmt, err := tx.Prepare(insertBuiltin)
	if err != nil {
		return fmt.Errorf("init schema: prepare builtin insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range domain.BuiltinSatellites() {
		if _, err := stmt.Exec(p.Name, p.Rows); err != nil {
			return fmt.Errorf("init schema: insert builtin %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SatelliteSeed struct {
	Name    string `json:"name"`
	NumRows int    `json:"num_rows"`
}

// Populate the database with extra satellite presets from a JSON file.
// Seeded row counts must satisfy the same divisibility rule as custom
// resolutions.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
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

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed satellites: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO satellites (
		name,
		num_rows
	)
	VALUES (?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed satellites: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.Name, p.NumRows); err != nil {
			return fmt.Errorf("seed satellites: insert name=%q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed satellites: commit tx: %w", err)
	}

	return nil
}
