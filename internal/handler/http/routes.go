package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/", h.welcome)
	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.createItem)
			r.Get("/", h.listItems)
			r.Get("/{itemID}", h.getItem)
			r.Put("/{itemID}", h.updateItem)
			r.Delete("/{itemID}", h.deleteItem)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.createUser)
			r.Get("/", h.listUsers)
			r.Get("/username/{username}", h.getUserByUsername)
			r.Get("/{userID}", h.getUser)
		})

		r.Route("/audit", func(r chi.Router) {
			r.Post("/", h.recordAudit)
			r.Get("/", h.listAuditLogs)
			r.Delete("/clear", h.clearAuditLogs)
		})

		r.Get("/stats", h.getStats)
	})

	return router
}
