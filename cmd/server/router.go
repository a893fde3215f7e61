package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/avatar-api/internal/api"
	apiMiddleware "github.com/phrazzld/avatar-api/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/phrazzld/avatar-api/docs"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.MetricsMiddleware(app.metrics))

	skillHandler := api.NewSkillHandler(app.skillService, app.logger)
	characterHandler := api.NewCharacterHandler(app.characterService, app.logger)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/skills", skillHandler.ListSkills)
		r.Get("/skills/{id}", skillHandler.GetSkill)
		r.Get("/characters", characterHandler.ListCharacters)
		r.Get("/characters/{id}", characterHandler.GetCharacter)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
