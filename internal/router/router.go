package router

import (
	"github.com/alexca-social/alexca/internal/setup"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexca-social/alexca/internal/middleware/metrics"
)

func SetupRouter(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/v1/health", deps.Handler.Health)

	// Public routes
	r.Post("/v1/auth/login", deps.Handler.Login)
	r.Get("/v1/languages", deps.Handler.GetLanguages)
	r.Get("/v1/avatars/{seed}", deps.Handler.GetAvatar)

	// Session-bound routes
	r.Group(func(r chi.Router) {
		r.Use(deps.Middlew.Require())

		r.Post("/v1/auth/logout", deps.Handler.Logout)

		r.Get("/v1/feed", deps.Handler.GetFeed)
		r.Post("/v1/feed/posts", deps.Handler.CreatePost)
		r.Post("/v1/feed/posts/{post}/like", deps.Handler.ToggleLike)
		r.Post("/v1/feed/posts/{post}/comments", deps.Handler.AddComment)

		r.Get("/v1/chats", deps.Handler.GetContacts)
		r.Post("/v1/chats/{contact}/select", deps.Handler.SelectChat)
		r.Get("/v1/chats/active", deps.Handler.ActiveChat)
		r.Post("/v1/chats/messages", deps.Handler.SendMessage)

		r.Get("/v1/notifications", deps.Handler.GetNotifications)

		r.Get("/v1/profile", deps.Handler.GetProfile)
		r.Put("/v1/profile", deps.Handler.UpdateProfile)
	})

	return r
}
