// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"funnelpress/internal/cache"
	"funnelpress/internal/models"
	"funnelpress/internal/renderer"
	"funnelpress/internal/store"
	"funnelpress/internal/theme"
)

// Preview groups the handlers that serve rendered pages and compiled
// stylesheets. Live pages and previews check the L2 Valkey caches before
// invoking the renderer and store results on miss; editing-mode previews
// always render fresh.
type Preview struct {
	funnels        store.FunnelStore
	customizations store.CustomizationStore
	caseStudies    store.CaseStudyStore
	renderer       *renderer.Renderer
	themes         *theme.Catalog
	previewCache   *cache.PreviewCache
	cssCache       *cache.CSSCache
}

// NewPreview creates a Preview handler group. The caches may be backed by
// a nil client when Valkey is not configured.
func NewPreview(funnels store.FunnelStore, customizations store.CustomizationStore, caseStudies store.CaseStudyStore, r *renderer.Renderer, themes *theme.Catalog, previewCache *cache.PreviewCache, cssCache *cache.CSSCache) *Preview {
	return &Preview{
		funnels:        funnels,
		customizations: customizations,
		caseStudies:    caseStudies,
		renderer:       r,
		themes:         themes,
		previewCache:   previewCache,
		cssCache:       cssCache,
	}
}

// Funnel renders a funnel preview by id. Query parameters select the
// viewport (desktop or mobile) and whether editor hooks are emitted
// (editing=1).
func (p *Preview) Funnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	funnelID, err := uuid.Parse(chi.URLParam(r, "funnelID"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	funnel, err := p.funnels.FindByID(funnelID)
	if err != nil {
		slog.Error("find funnel failed", "error", err, "funnel", funnelID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if funnel == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	viewport := models.Viewport(r.URL.Query().Get("viewport"))
	if !viewport.Valid() {
		viewport = models.ViewportDesktop
	}
	editing := r.URL.Query().Get("editing") == "1"

	doc, err := p.customizations.Get(funnelID)
	if err != nil {
		slog.Error("load customization failed", "error", err, "funnel", funnelID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Editing previews are never cached: the editor re-requests after
	// every applied event and must see its own writes.
	key := cache.PreviewKey(funnelID, viewport, doc)
	if !editing {
		if cached, ok := p.previewCache.Get(ctx, key); ok {
			writeHTML(w, cached)
			return
		}
	}

	studies, err := p.caseStudies.ListByFunnel(funnelID)
	if err != nil {
		slog.Error("list case studies failed", "error", err, "funnel", funnelID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := p.renderer.Render(renderer.Request{
		Funnel:        funnel,
		Customization: doc,
		CaseStudies:   studies,
		Viewport:      viewport,
		Editing:       editing,
	})
	if err != nil {
		slog.Error("preview render failed", "error", err, "funnel", funnelID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if !editing {
		p.previewCache.Set(ctx, key, html)
	}
	writeHTML(w, html)
}

// Page renders the live page for a funnel by its public slug: desktop
// viewport, no editor hooks.
func (p *Preview) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	funnel, err := p.funnels.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find funnel by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if funnel == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	doc, err := p.customizations.Get(funnel.ID)
	if err != nil {
		slog.Error("load customization failed", "error", err, "funnel", funnel.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	key := cache.PreviewKey(funnel.ID, models.ViewportDesktop, doc)
	if cached, ok := p.previewCache.Get(ctx, key); ok {
		writeHTML(w, cached)
		return
	}

	studies, err := p.caseStudies.ListByFunnel(funnel.ID)
	if err != nil {
		slog.Error("list case studies failed", "error", err, "funnel", funnel.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := p.renderer.Render(renderer.Request{
		Funnel:        funnel,
		Customization: doc,
		CaseStudies:   studies,
		Viewport:      models.ViewportDesktop,
	})
	if err != nil {
		slog.Error("page render failed", "error", err, "funnel", funnel.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.previewCache.Set(ctx, key, html)
	writeHTML(w, html)
}

// ThemeCSS serves the compiled stylesheet of one theme. The {id} route
// parameter carries a ".css" suffix so the URL works as a plain
// stylesheet link.
func (p *Preview) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idParam := strings.TrimSuffix(chi.URLParam(r, "id"), ".css")
	themeID, err := uuid.Parse(idParam)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	th, ok := p.themes.Get(themeID)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	key := cache.CSSKey(themeID, nil)
	if css, ok := p.cssCache.Get(ctx, key); ok {
		writeCSS(w, css)
		return
	}

	css := theme.GenerateCSS(th, nil)
	p.cssCache.Set(ctx, key, css)
	writeCSS(w, css)
}

// Themes lists the theme catalog as JSON: id, name, flags and tags, but
// not the full config.
func (p *Preview) Themes(w http.ResponseWriter, r *http.Request) {
	type themeSummary struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		IsDefault bool      `json:"isDefault"`
		IsPublic  bool      `json:"isPublic"`
		Tags      []string  `json:"tags,omitempty"`
	}
	list := p.themes.List()
	out := make([]themeSummary, 0, len(list))
	for _, th := range list {
		out = append(out, themeSummary{
			ID:        th.ID,
			Name:      th.Name,
			IsDefault: th.IsDefault,
			IsPublic:  th.IsPublic,
			Tags:      th.Tags,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

func writeCSS(w http.ResponseWriter, css string) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(css))
}
