package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"strings"

	"isin-grid-service/internal/adapters/repositories"
	"isin-grid-service/internal/config"
	"isin-grid-service/internal/domain"
	"isin-grid-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	seedPath := config.Get("SEED_PATH", "data/seeds/satellites.json")
	if err := initAndSeed(ctx, db, seedPath); err != nil {
		log.Fatal(err)
	}

	demoLookup()
}

func initAndSeed(ctx context.Context, db *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(ctx, db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding satellite presets...")
	if err := repositories.SeedPostgresFromJSON(ctx, db, seedPath); err != nil {
		// Extra presets are optional; built-ins are inserted with the schema.
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("seed file not found path=%q, using built-in presets only", seedPath)
			return nil
		}
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}

// demoLookup prints a SeaWiFS sample bin so a fresh deployment can be
// eyeballed against the published grid numbers.
func demoLookup() {
	grid, err := domain.NewGrid(2160)
	if err != nil {
		log.Fatal(err)
	}

	const binnum = 367

	bounds, err := grid.BinToBounds([]int{binnum})
	if err != nil {
		log.Fatal(err)
	}
	centers, err := grid.BinToLonLat([]int{binnum})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("SeaWiFS grid bin=%d north=%v south=%v west=%v east=%v",
		binnum, bounds[0].North, bounds[0].South, bounds[0].West, bounds[0].East)
	log.Printf("SeaWiFS grid bin=%d lon=%v lat=%v", binnum, centers[0].Lon, centers[0].Lat)

	roundTrip, err := grid.LonLatToBin([]float64{centers[0].Lon}, []float64{centers[0].Lat})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("round trip lon=%v lat=%v bin=%d", centers[0].Lon, centers[0].Lat, roundTrip[0])
}
