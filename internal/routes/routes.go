package routes

import (
	"net/http"

	"listingadmin/internal/config"
	"listingadmin/internal/handlers"
	"listingadmin/internal/logger"
	"listingadmin/internal/middleware"
	"listingadmin/internal/services/auth"
	"listingadmin/internal/services/feedback"
	"listingadmin/internal/services/listing"
	"listingadmin/internal/services/websocket"
	"listingadmin/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Services are the long-lived dependencies the handlers are built from.
type Services struct {
	Auth     *auth.Service
	Listings *listing.Service
	Notifier *feedback.Notifier
	Hub      *websocket.HubService
	Renderer *web.Renderer
}

// SetupRoutes registers pages, the listings API, the feedback endpoints and
// the health check. Pages redirect to the login form without a session; the
// API answers 401 unless cfg.PublicAPI is set.
func SetupRoutes(svc Services, cfg *config.Config, logger *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)

	// Public
	r.Get("/", handlers.LoginPageHandler(svc.Auth, svc.Renderer, logger))
	r.Post("/login", handlers.LoginHandler(svc.Auth, svc.Renderer, cfg, logger))
	r.Get("/api/health", handlers.HealthHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.LoadSession(svc.Auth))
		logout := handlers.LogoutHandler(svc.Auth, svc.Notifier, cfg, logger)
		r.Get("/logout", logout)
		r.Post("/logout", logout)
	})

	// Pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(svc.Auth))
		r.Get("/dashboard", handlers.DashboardHandler(svc.Listings, svc.Notifier, svc.Renderer, logger))
		r.Get("/edit/{id}", handlers.EditPageHandler(svc.Listings, svc.Renderer, logger))
		r.Post("/edit/{id}", handlers.EditSubmitHandler(svc.Listings, svc.Notifier, svc.Renderer, logger))
	})

	// API
	r.Group(func(r chi.Router) {
		if cfg.PublicAPI {
			r.Use(middleware.LoadSession(svc.Auth))
		} else {
			r.Use(middleware.RequireAPISession(svc.Auth))
		}
		r.HandleFunc("/api/listings", handlers.ListingsHandler(svc.Listings, svc.Notifier, logger))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAPISession(svc.Auth))
		r.Get("/api/feedback", handlers.FeedbackHandler(svc.Notifier))
		r.Get("/ws/feedback", handlers.FeedbackWebsocketHandler(svc.Hub, logger))
	})

	return r
}
