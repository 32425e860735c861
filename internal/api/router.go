package api

import (
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"github.com/verseworks/poem-service/internal/api/recovery"
	"github.com/verseworks/poem-service/internal/auth"
	"github.com/verseworks/poem-service/internal/services"
	"github.com/verseworks/poem-service/internal/store"
)

// NewRouter creates the HTTP router with all API routes. The route shapes
// mirror the public surface the web front end consumes.
func NewRouter(st store.Store, tokens *auth.TokenManager, allowedOrigin string, cookieTTL time.Duration) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares. The front end sends the session cookie cross
	// origin, so CORS must allow credentials for the configured origin.
	router.Use(recovery.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// Domain services
	catalogService := services.NewCatalogService(st)
	sessionService := services.NewSessionService(st, tokens)

	// Handlers
	healthHandler := NewHealthHandler()
	catalogHandler := NewCatalogHandler(catalogService)
	sessionHandler := NewSessionHandler(sessionService, cookieTTL)

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// User endpoints
	router.HandleFunc("/users", sessionHandler.ListUsers).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", sessionHandler.GetUser).Methods("GET")

	// Catalog read endpoints
	router.HandleFunc("/recommended-poems", catalogHandler.RecommendedPoems).Methods("GET")
	router.HandleFunc("/poems/{id:[0-9]+}", catalogHandler.GetPoem).Methods("GET")
	router.HandleFunc("/poem-preview/{id:[0-9]+}", catalogHandler.GetPoemPreview).Methods("GET")
	router.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET")
	router.HandleFunc("/categories/{slug}", catalogHandler.GetThematicView).Methods("GET")
	router.HandleFunc("/authors", catalogHandler.ListAuthors).Methods("GET")
	router.HandleFunc("/authors/{id:[0-9]+}", catalogHandler.GetAuthor).Methods("GET")

	// Catalog creation endpoints
	router.HandleFunc("/new-poem", catalogHandler.CreatePoem).Methods("POST")
	router.HandleFunc("/new-author", catalogHandler.CreateAuthor).Methods("POST")
	router.HandleFunc("/new-category", catalogHandler.CreateCategory).Methods("POST")

	// Session endpoints
	router.HandleFunc("/login", sessionHandler.Login).Methods("POST")
	router.HandleFunc("/registration", sessionHandler.Register).Methods("POST")
	router.HandleFunc("/me", sessionHandler.Me).Methods("GET")
	router.HandleFunc("/logout", sessionHandler.Logout).Methods("GET")

	return router
}
