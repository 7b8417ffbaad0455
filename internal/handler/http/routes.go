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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getAppInfo)
	})

	// routes behind JWT authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/credentials", func(r chi.Router) {
			r.Get("/", h.listCredentials)
			r.Post("/", h.createCredential)
			r.Get("/{id}", h.getCredential)
			r.Put("/{id}", h.updateCredential)
			r.Delete("/{id}", h.deleteCredential)
			r.Post("/{id}/favorite", h.toggleCredentialFavorite)
		})

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{id}", h.getNote)
			r.Put("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
			r.Post("/{id}/favorite", h.toggleNoteFavorite)
		})

		r.Get("/api/dashboard", h.getDashboard)
		r.Get("/api/activity", h.getActivity)
		r.Get("/api/export/credentials", h.exportCredentials)
	})

	return router
}
