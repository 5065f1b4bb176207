package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"isin-grid-service/internal/adapters/repositories"
	"isin-grid-service/internal/api"
	"isin-grid-service/internal/config"
	"isin-grid-service/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQLite satellite catalog behind its port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/satellites.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and built-in presets on startup for local runs;
	// the seed file adds any site-specific instruments.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	catalog := repositories.NewSqliteSatelliteRepository(db)
	svc := services.NewBinningService(catalog)
	router := api.NewRouter(svc)

	// Write timeout leaves room for large batch bin queries (response size,
	// not computation, dominates).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		// Extra presets are optional; built-ins are inserted with the schema.
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("seed file not found path=%q, using built-in presets only", seedPath)
			return nil
		}
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
