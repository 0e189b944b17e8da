package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/stefpopov/go-wine-cellar/internal/config"
	handler "github.com/stefpopov/go-wine-cellar/internal/handler/http"
	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/push"
)

type server struct {
	httpServer *httpServer
	hub        *push.Hub
	logger     *logger.Logger
}

// NewServer assembles the transport server around the HTTP handler and the
// push hub. The hub's run loop lives exactly as long as the server does.
func NewServer(handlers *handler.Handler, hub *push.Hub, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handlers.Init(), cfg, logger),
		hub:        hub,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go s.hub.Run(ctx)

	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
