package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sulta24/backend-hw1/app"
	"github.com/sulta24/backend-hw1/handlers"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	healthHandler := handlers.NewHealthHandler(deps.DB.DB, deps.Logger)

	// Health check endpoints
	r.Get("/healthz", healthHandler.HandleHealth)
	r.Get("/readyz", healthHandler.HandleReadiness)

	// Public routes
	r.Post("/register/", handlers.RegisterHandler(deps))
	r.Post("/token", handlers.TokenHandler(deps))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)

		r.Get("/me/", handlers.MeHandler(deps))
		r.Post("/create_task/", handlers.CreateTaskHandler(deps))
		r.Get("/get_tasks/", handlers.ListTasksHandler(deps))

		r.Get("/tasks/{id}", handlers.GetTaskHandler(deps))
		r.Put("/tasks/{id}", handlers.UpdateTaskHandler(deps))
		r.Delete("/tasks/{id}", handlers.DeleteTaskHandler(deps))
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
