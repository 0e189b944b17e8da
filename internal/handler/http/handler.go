// Package http exposes the wine API and the push WebSocket endpoint.
package http

import (
	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/push"
	"github.com/stefpopov/go-wine-cellar/internal/service"
)

type Handler struct {
	service service.WineService
	hub     *push.Hub

	logger *logger.Logger
}

func NewHandler(wines service.WineService, hub *push.Hub, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		service: wines,
		hub:     hub,
		logger:  logger,
	}
}
