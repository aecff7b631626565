package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/version", h.getServerVersion)

	// sync protocol
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)

		r.With(withGZip).Get("/login", h.login)
		r.With(withGZip).Get("/md5sum", h.manifest)
		r.Get("/eggs/{name}", h.bundle)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
