package api

import (
	"log/slog"
	"net/http"

	"github.com/DucTam2411/blog-server/internal/api/handlers"
	"github.com/DucTam2411/blog-server/internal/api/middleware"
	"github.com/DucTam2411/blog-server/internal/service"
	"github.com/DucTam2411/blog-server/internal/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, sessions *session.Manager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, sessions, logger)
	postHandler := handlers.NewPostHandler(services.Post, logger)
	profileHandler := handlers.NewProfileHandler(services.Profile, logger)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Every route sees the resolved session user; protected groups
		// additionally require one.
		r.Use(middleware.CurrentUser(sessions))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Get("/me", authHandler.Me)
			})
		})

		// Public post routes
		r.Get("/posts", postHandler.List)
		r.Get("/posts/{id}", postHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Post("/posts", postHandler.Create)
			r.Delete("/posts/{id}", postHandler.Delete)

			r.Get("/profile", profileHandler.GetOwn)
			r.Get("/profiles/{id}", profileHandler.Get)
			r.Put("/profiles/{id}", profileHandler.Update)
		})
	})

	return r
}
