package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/whisper-dev/whisper/backend/internal/setup"
	mw "github.com/whisper-dev/whisper/shared/middleware"
	"github.com/whisper-dev/whisper/shared/middleware/metrics"
)

// New creates the chi router with all routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints combined in that group
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()
	cfg := deps.Config.Public

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeadersWithCSP(cfg.SecureCookies, mw.APIContentSecurityPolicy))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.RateLimit(deps.LoginLimiter, mw.GetIP)) // by IP
				r.Use(mw.GlobalRateLimit(deps.GlobalLimiter))
				r.Post("/login", h.Login)
				r.Post("/register", h.Register)
			})
			r.Post("/logout", h.Logout)
			r.With(authMw.NeedAuth()).Get("/me", h.Me)
		})

		r.With(authMw.NeedAuth()).Get("/recipients", h.Recipients)

		r.Route("/messages", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authMw.OptionalAuth())
				r.Get("/", h.GetMessages)
				r.Get("/{id}", h.GetMessage)
			})
			r.Group(func(r chi.Router) {
				r.Use(authMw.NeedAuth())
				r.Use(mw.RateLimit(deps.WriteLimiter, mw.GetUserIDFromContext)) // per user
				r.Post("/", h.CreateMessage)
				r.Post("/{id}/replies", h.CreateReply)
				r.Post("/{id}/like", h.LikeMessage)
				r.Delete("/{id}", h.DeleteMessage)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authMw.OptionalAuth())
				r.Get("/", h.GetNotifications)
				r.Post("/", h.CreateNotification)
			})
			r.Post("/{id}/read", h.MarkNotificationRead)
			r.Post("/{id}/view", h.ViewNotification)
			r.Group(func(r chi.Router) {
				r.Use(authMw.NeedAuth())
				r.Post("/read_all", h.MarkAllNotificationsRead)
				r.Delete("/", h.ClearNotifications)
			})
		})

		r.Get("/alerts", h.GetAlerts)

		r.Get("/settings/language", h.GetLanguage)
		r.Put("/settings/language", h.SetLanguage)
		r.Get("/translations", h.GetTranslations)
	})

	return r
}
