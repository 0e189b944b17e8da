package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	router.Route("/wines", func(r chi.Router) {
		r.Use(h.withLogging)
		r.Get("/", h.listWines)
		r.Post("/", h.createWine)
		r.Get("/{id}", h.getWine)
		r.Put("/{id}", h.updateWine)
		r.Delete("/{id}", h.deleteWine)
	})

	// kept outside withLogging: the logging writer wrapper would hide the
	// Hijacker needed for the websocket upgrade
	router.Get("/ws", h.serveWS)

	return router
}
