package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskio-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskio-api/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: app.config.CORS.AllowedMethods,
		AllowedHeaders: app.config.CORS.AllowedHeaders,
		ExposedHeaders: []string{apiMiddleware.TraceHeader},
	}).Handler)
	if rl := app.config.RateLimit; rl.Enabled {
		r.Use(apiMiddleware.NewRateLimiter(rl.RequestsPerSecond, rl.Burst).Middleware)
	}

	// Set before Route so the API subrouter inherits them
	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.MethodNotAllowedHandler)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	taskLogHandler := api.NewTaskLogHandler(app.taskLogService, app.logger)

	r.Route(app.config.Server.APIPrefix, func(r chi.Router) {
		r.Get("/health", api.HealthHandler)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)
			r.Get("/{id}", taskHandler.GetTask)
			r.Put("/{id}", taskHandler.UpdateTask)
			r.Delete("/{id}", taskHandler.DeleteTask)

			r.Get("/{id}/logs", taskLogHandler.ListLogs)
			r.Post("/{id}/logs", taskLogHandler.CreateLog)
		})

		r.Route("/logs", func(r chi.Router) {
			r.Get("/{id}", taskLogHandler.GetLog)
			r.Put("/{id}", taskLogHandler.UpdateLog)
			r.Delete("/{id}", taskLogHandler.DeleteLog)
		})
	})

	return r
}
