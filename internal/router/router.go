// Package router sets up all HTTP routes and middleware chains for the
// preview server. It organizes routes into the JSON editor API and the
// public rendering surface.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"funnelpress/internal/handlers"
	"funnelpress/internal/middleware"
	"funnelpress/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(preview *handlers.Preview, funnels *handlers.Funnels) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Editor JSON API.
	r.Route("/api/funnels", func(r chi.Router) {
		r.Get("/", funnels.List)
		r.Post("/", funnels.Create)

		r.Route("/{funnelID}", func(r chi.Router) {
			r.Get("/", funnels.Get)
			r.Put("/", funnels.Update)
			r.Delete("/", funnels.Delete)

			r.Get("/customization", funnels.GetCustomization)
			r.Put("/customization", funnels.PutCustomization)
			r.Post("/events", funnels.Events)

			r.Get("/case-studies", funnels.ListCaseStudies)
			r.Post("/case-studies", funnels.PutCaseStudy)
			r.Delete("/case-studies/{caseStudyID}", funnels.DeleteCaseStudy)
		})
	})

	// Theme catalog and compiled stylesheets.
	r.Get("/themes", preview.Themes)
	r.Get("/themes/{id}", preview.ThemeCSS)

	// Rendered pages: editor previews and live pages by slug.
	r.Get("/preview/{funnelID}", preview.Funnel)
	r.Get("/p/{slug}", preview.Page)

	// Editor overlay assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
