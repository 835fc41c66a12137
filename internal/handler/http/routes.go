package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/magic-link", h.magicLink)
		r.Post("/api/auth/magic-link/verify", h.magicVerify)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/session", h.session)

		r.Get("/api/market/instruments", h.instruments)
		r.Get("/api/market/instruments/{id}", h.instrument)
		r.Get("/api/market/chart/{id}", h.chart)
		r.Get("/api/market/quote", h.quote)
	})

	// per-user routes behind the bearer check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/portfolio/balances", h.balances)
		r.Get("/api/portfolio/history", h.history)
		r.Post("/api/portfolio/swap", h.swap)

		r.Get("/api/settings", h.settings)
		r.Put("/api/settings", h.updateSettings)
	})

	return router
}
