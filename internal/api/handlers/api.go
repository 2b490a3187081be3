package handlers

import (
	"context"

	"github.com/Jidetireni/invoice-dashboard/factory"
	"github.com/Jidetireni/invoice-dashboard/internal/config"
	"github.com/Jidetireni/invoice-dashboard/internal/services/seeder"
	"github.com/Jidetireni/invoice-dashboard/pkg/logger"
)

var _ Seeder = (*seeder.Seeder)(nil)

type Seeder interface {
	Seed(ctx context.Context) (*seeder.Result, error)
}

type Handlers struct {
	config *config.Config
	logger *logger.Logger
	seeder Seeder
}

func NewHandlers(factory *factory.Factory, config *config.Config) *Handlers {
	return &Handlers{
		config: config,
		logger: factory.Logger,
		seeder: factory.Services.Seeder,
	}
}
