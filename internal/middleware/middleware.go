package middleware

import (
	"github.com/Jidetireni/invoice-dashboard/pkg/logger"
)

type Middleware struct {
	Logger *logger.Logger
}

func New(logger *logger.Logger) *Middleware {
	return &Middleware{Logger: logger}
}
