package main

import (
	"net/http"
	"time"

	"github.com/Jidetireni/invoice-dashboard/factory"
	"github.com/Jidetireni/invoice-dashboard/internal/api/handlers"
	"github.com/Jidetireni/invoice-dashboard/internal/config"
)

type Server struct {
	Config   *config.Config
	Factory  factory.Factory
	Handlers *handlers.Handlers
}

func NewServer() (*Server, func(), error) {
	cfg := config.New()

	factory, cleanup, err := factory.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	handlers := handlers.NewHandlers(factory, cfg)

	server := &Server{
		Config:   cfg,
		Factory:  *factory,
		Handlers: handlers,
	}

	server.router()
	return server, cleanup, nil
}

func (s *Server) Start() error {
	s.Factory.Logger.Info().
		Str("addr", "http://localhost:"+s.Config.Server.Port).
		Msg("server running")

	// Seeding hashes every password at the configured cost, so the write
	// timeout has to cover a full run.
	srv := &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      s.Factory.Router,
		WriteTimeout: time.Second * 50,
		ReadTimeout:  time.Second * 30,
		IdleTimeout:  time.Minute,
	}

	return srv.ListenAndServe()
}
