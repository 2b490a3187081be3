package factory

import (
	"context"

	"github.com/Jidetireni/invoice-dashboard/internal/config"
	"github.com/Jidetireni/invoice-dashboard/internal/helpers"
	"github.com/Jidetireni/invoice-dashboard/internal/middleware"
	"github.com/Jidetireni/invoice-dashboard/internal/placeholder"
	"github.com/Jidetireni/invoice-dashboard/internal/services/seeder"
	"github.com/Jidetireni/invoice-dashboard/pkg/database"
	"github.com/Jidetireni/invoice-dashboard/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Services struct {
	Seeder *seeder.Seeder
}

type Factory struct {
	Logger     *logger.Logger
	Router     *chi.Mux
	Services   *Services
	Middleware *middleware.Middleware
}

// New wires the application. No connection is opened here: the seeder
// connects once per invocation.
func New(cfg *config.Config) (*Factory, func(), error) {
	log := logger.New(cfg)

	connect := func(ctx context.Context) (*database.PostgresDB, func(), error) {
		return database.New(ctx, cfg.Database.URL, cfg.Database.SSLMode)
	}

	seedService := seeder.New(
		connect,
		helpers.BcryptHasher{},
		placeholder.Dataset(),
		log,
		seeder.Options{
			Cost:        cfg.Seed.BcryptCost,
			Concurrency: cfg.Seed.Concurrency,
		},
	)

	return &Factory{
		Logger: log,
		Router: chi.NewRouter(),
		Services: &Services{
			Seeder: seedService,
		},
		Middleware: middleware.New(log),
	}, func() {}, nil
}
