package http

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get(config.CallbackPath, h.authCallback)
	router.Get("/healthz", h.health)
	router.Get("/version", h.getVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
