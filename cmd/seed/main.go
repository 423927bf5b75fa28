// Seeds the restaurant catalog from a JSON file. The serving API never
// writes restaurants; this is the out-of-band loader.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/dinerate/dinerate-backend/internal/config"
	"github.com/dinerate/dinerate-backend/internal/database"
	"github.com/dinerate/dinerate-backend/internal/logging"
	"github.com/dinerate/dinerate-backend/internal/models"
	"github.com/dinerate/dinerate-backend/internal/store"
	"github.com/google/uuid"
)

func main() {
	logging.Setup()

	file := flag.String("file", "seed/restaurants.json", "path to the restaurant catalog JSON")
	flag.Parse()

	cfg := config.Load()
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		slog.Error("failed to read seed file", "path", *file, "error", err)
		os.Exit(1)
	}

	var restaurants []models.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		slog.Error("failed to parse seed file", "path", *file, "error", err)
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	catalog := store.NewGormRestaurants(database.DB)
	ctx := context.Background()

	seeded := 0
	for i := range restaurants {
		r := &restaurants[i]
		if r.RestaurantID == "" {
			r.RestaurantID = uuid.NewString()
		}
		if err := catalog.Upsert(ctx, r); err != nil {
			slog.Error("failed to seed restaurant", "name", r.Name, "error", err)
			os.Exit(1)
		}
		seeded++
	}

	slog.Info("catalog seeded", "count", seeded, "file", *file)
}
