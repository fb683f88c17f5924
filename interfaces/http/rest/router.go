// Package rest wires the HTTP surface of the service: routing, middleware
// and handlers.
package rest

import (
	"net/http"

	"proplist-backend/infrastructure/di"
	"proplist-backend/interfaces/http/rest/handlers"
	"proplist-backend/interfaces/http/rest/middleware"
	"proplist-backend/pkg/common"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the full route tree from the wired container.
func NewRouter(c *di.Container) http.Handler {
	authHandler := handlers.NewAuthHandler(c.AuthService, c.Logger)
	propertyHandler := handlers.NewPropertyHandler(c.PropertyService, c.Logger)
	favoriteHandler := handlers.NewFavoriteHandler(c.FavoriteService, c.Logger)
	recommendationHandler := handlers.NewRecommendationHandler(c.RecommendationService, c.Logger)
	authenticator := middleware.NewAuthenticator(c.JWTValidator, c.Logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(c.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/properties", func(r chi.Router) {
			// Search and filter serve anonymous traffic.
			r.Post("/search", propertyHandler.Search)
			r.Post("/filter", propertyHandler.Filter)

			r.Group(func(r chi.Router) {
				r.Use(authenticator.RequireAuth)
				r.Post("/", propertyHandler.Create)
				r.Get("/{id}", propertyHandler.Get)
				r.Put("/{id}", propertyHandler.Update)
				r.Delete("/{id}", propertyHandler.Delete)
			})
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Use(authenticator.RequireAuth)
			r.Post("/", favoriteHandler.Add)
			r.Get("/", favoriteHandler.List)
			r.Delete("/", favoriteHandler.Remove)
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Use(authenticator.RequireAuth)
			r.Get("/search", recommendationHandler.LookupRecipient)
			r.Post("/", recommendationHandler.Recommend)
			r.Get("/received", recommendationHandler.Received)
		})
	})

	return r
}
