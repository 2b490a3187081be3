package main

import (
	"context"
	"log"
	"time"

	"github.com/Jidetireni/invoice-dashboard/factory"
	"github.com/Jidetireni/invoice-dashboard/internal/config"
)

func main() {

	cfg := config.New()
	if !cfg.IsDev {
		log.Fatal("Seeding is only allowed in development environment")
	}

	f, cleanup, err := factory.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize seeder: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := f.Services.Seeder.Seed(ctx)
	if err != nil {
		cancel()
		cleanup()
		log.Fatalf("Failed to seed database: %v", err)
	}

	for _, step := range result.Steps {
		f.Logger.Info().
			Str("step", step.Step).
			Int("processed", step.Processed).
			Int64("inserted", step.Inserted).
			Msg("step summary")
	}
}
