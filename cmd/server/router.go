package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tutor-api/internal/api"
	apiMiddleware "github.com/phrazzld/tutor-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	contentHandler, err := api.NewContentHandler(app.content, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create content handler: %w", err)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/lesson/generate", contentHandler.GenerateLesson)
		r.Post("/chat", contentHandler.Chat)
		r.Post("/image/analyze", contentHandler.AnalyzeImage)
		r.Post("/quiz/generate", contentHandler.GenerateQuiz)
		r.Post("/diagram/generate", contentHandler.GenerateDiagram)
		r.Get("/ai/status", contentHandler.Status)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r, nil
}
