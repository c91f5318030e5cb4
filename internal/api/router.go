package api

import (
	_ "exchweb/docs"
	"exchweb/internal/session"
	"exchweb/internal/web/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

// NewRouter splits the surface into a public part (login, logout, health,
// swagger) and a guarded part behind the session cookie. Unauthenticated
// requests to guarded routes are redirected to /login with the original
// path preserved.
func NewRouter(h *handler.Handler, sessions *session.Manager) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Group(func(r chi.Router) {
		r.Use(sessions.RedirectIfAuthed)
		r.Get("/login", h.LoginPage)
	})
	router.Post("/login", h.Login)
	router.Post("/logout", h.Logout)

	router.Group(func(r chi.Router) {
		r.Use(sessions.RequireAuth)
		r.Get("/", h.ExchangePage)
		r.Get("/history", h.HistoryPage)

		r.Get("/api/exchange-rates", h.ExchangeRates)
		r.Get("/api/wallets", h.Wallets)
		r.Get("/api/form", h.GetForm)
		r.Put("/api/form", h.UpdateForm)
		r.Post("/api/form/exchange", h.SubmitExchange)
		r.Get("/api/notifications", h.Notifications)
		r.Delete("/api/notifications/{id}", h.DismissNotification)
	})
	return router
}
