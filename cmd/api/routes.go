package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) router() {
	r := s.Factory.Router

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.Factory.Middleware.LoggerMiddleware)

	r.NotFound(s.Handlers.NotFound)
	r.MethodNotAllowed(s.Handlers.MethodNotAllowed)

	r.Get("/seed", s.Handlers.Seed)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", s.Handlers.HealthCheckHandler)
	})
}
