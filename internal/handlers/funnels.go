// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"funnelpress/internal/cache"
	"funnelpress/internal/editor"
	"funnelpress/internal/models"
	"funnelpress/internal/registry"
	"funnelpress/internal/slug"
	"funnelpress/internal/store"
	"funnelpress/internal/theme"
)

// Funnels groups the JSON API handlers the editor frontend drives:
// funnel CRUD, the customization document and the editor event stream.
type Funnels struct {
	funnels        store.FunnelStore
	customizations store.CustomizationStore
	caseStudies    store.CaseStudyStore
	registry       *registry.Registry
	themes         *theme.Catalog
	previewCache   *cache.PreviewCache
}

// NewFunnels creates a Funnels handler group.
func NewFunnels(funnels store.FunnelStore, customizations store.CustomizationStore, caseStudies store.CaseStudyStore, reg *registry.Registry, themes *theme.Catalog, previewCache *cache.PreviewCache) *Funnels {
	return &Funnels{
		funnels:        funnels,
		customizations: customizations,
		caseStudies:    caseStudies,
		registry:       reg,
		themes:         themes,
		previewCache:   previewCache,
	}
}

// funnelRequest is the create/update payload.
type funnelRequest struct {
	Name           string            `json:"name" validate:"required,max=200"`
	Slug           string            `json:"slug" validate:"omitempty,max=200"`
	TemplateID     string            `json:"templateId" validate:"required,max=100"`
	ThemeID        string            `json:"themeId" validate:"omitempty,uuid"`
	Content        map[string]string `json:"content"`
	ThemeOverrides json.RawMessage   `json:"themeOverrides"`
	VideoURL       string            `json:"videoUrl" validate:"omitempty,url,max=500"`
	LogoURL        string            `json:"logoUrl" validate:"omitempty,url,max=500"`
}

// apply copies the payload onto a funnel record, filling derived values.
func (req *funnelRequest) apply(f *models.Funnel, themes *theme.Catalog) string {
	f.Name = strings.TrimSpace(req.Name)
	f.Slug = req.Slug
	if f.Slug == "" {
		f.Slug = slug.Generate(f.Name)
	}
	f.TemplateID = req.TemplateID
	f.Content = req.Content
	if f.Content == nil {
		f.Content = make(map[string]string)
	}
	f.ThemeOverrides = req.ThemeOverrides
	f.VideoURL = req.VideoURL
	f.LogoURL = req.LogoURL

	if req.ThemeID == "" {
		if def, ok := themes.Default(); ok {
			f.ThemeID = def.ID
		}
		return ""
	}
	themeID, err := uuid.Parse(req.ThemeID)
	if err != nil {
		return "themeId is not a valid UUID"
	}
	if _, ok := themes.Get(themeID); !ok {
		return "themeId does not reference a known theme"
	}
	f.ThemeID = themeID
	return ""
}

// Create registers a new funnel.
func (h *Funnels) Create(w http.ResponseWriter, r *http.Request) {
	var req funnelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if h.registry.Fields(req.TemplateID) == nil {
		respondError(w, http.StatusUnprocessableEntity, "templateId does not reference a known template")
		return
	}

	f := &models.Funnel{}
	if msg := req.apply(f, h.themes); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if err := h.funnels.Create(f); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	slog.Info("funnel created", "id", f.ID, "slug", f.Slug, "template", f.TemplateID)
	respondJSON(w, http.StatusCreated, f)
}

// List returns all funnels.
func (h *Funnels) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.funnels.List()
	if err != nil {
		slog.Error("list funnels failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Get returns one funnel by id.
func (h *Funnels) Get(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// Update replaces a funnel's editable attributes.
func (h *Funnels) Update(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}

	var req funnelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if h.registry.Fields(req.TemplateID) == nil {
		respondError(w, http.StatusUnprocessableEntity, "templateId does not reference a known template")
		return
	}
	if msg := req.apply(f, h.themes); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if err := h.funnels.Update(f); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	h.previewCache.InvalidateFunnel(r.Context(), f.ID)
	respondJSON(w, http.StatusOK, f)
}

// Delete removes a funnel together with its customization document and
// case studies.
func (h *Funnels) Delete(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := h.funnels.Delete(f.ID); err != nil {
		slog.Error("delete funnel failed", "error", err, "funnel", f.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := h.customizations.Delete(f.ID); err != nil {
		slog.Warn("delete customization failed", "error", err, "funnel", f.ID)
	}
	h.previewCache.InvalidateFunnel(r.Context(), f.ID)
	slog.Info("funnel deleted", "id", f.ID, "slug", f.Slug)
	w.WriteHeader(http.StatusNoContent)
}

// GetCustomization returns the funnel's customization document, falling
// back to a fresh default document when none is stored yet.
func (h *Funnels) GetCustomization(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	doc, err := h.customizations.Get(f.ID)
	if err != nil {
		slog.Error("load customization failed", "error", err, "funnel", f.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if doc == nil {
		doc = models.NewCustomizationState()
	}
	respondJSON(w, http.StatusOK, doc)
}

// PutCustomization replaces the funnel's customization document.
func (h *Funnels) PutCustomization(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	doc := &models.CustomizationState{}
	if err := decodeJSON(r, doc); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.customizations.Save(f.ID, doc); err != nil {
		slog.Error("save customization failed", "error", err, "funnel", f.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.previewCache.InvalidateFunnel(r.Context(), f.ID)
	respondJSON(w, http.StatusOK, doc)
}

// editorEvent is one interaction reported by the editor frontend. The
// server owns the customization document, so size and spacing changes
// arrive as events and are applied through the editing session.
type editorEvent struct {
	Type     string  `json:"type" validate:"required,oneof=spacing textSize buttonSize logoSize fieldEdit"`
	Viewport string  `json:"viewport" validate:"omitempty,oneof=desktop mobile"`
	TargetID string  `json:"targetId" validate:"required_unless=Type logoSize,omitempty,max=200"`
	Value    float64 `json:"value"`
	Text     string  `json:"text" validate:"omitempty,max=100000"`
}

// Events applies a single editor event to the funnel's customization
// document (or content, for field edits) and persists the result.
func (h *Funnels) Events(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}

	var ev editorEvent
	if err := decodeJSON(r, &ev); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	doc, err := h.customizations.Get(f.ID)
	if err != nil {
		slog.Error("load customization failed", "error", err, "funnel", f.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	session := editor.NewSession(doc, f.Content, editor.NopEvents{})
	if ev.Viewport != "" {
		session.SetViewport(models.Viewport(ev.Viewport))
	}

	switch ev.Type {
	case "spacing":
		session.ApplySpacing(ev.TargetID, ev.Value)
	case "textSize":
		session.ApplyTextSize(ev.TargetID, ev.Value)
	case "buttonSize":
		session.ApplyButtonSize(ev.TargetID, ev.Value)
	case "logoSize":
		session.ApplyLogoSize(ev.Value)
	case "fieldEdit":
		session.ApplyFieldEdit(ev.TargetID, ev.Text)
		if err := h.funnels.Update(f); err != nil {
			slog.Error("persist field edit failed", "error", err, "funnel", f.ID)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	if err := h.customizations.Save(f.ID, session.Document()); err != nil {
		slog.Error("save customization failed", "error", err, "funnel", f.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.previewCache.InvalidateFunnel(r.Context(), f.ID)
	respondJSON(w, http.StatusOK, session.Document())
}

// caseStudyRequest is the create/update payload for one proof record.
type caseStudyRequest struct {
	ID       string `json:"id" validate:"omitempty,uuid"`
	Title    string `json:"title" validate:"required,max=300"`
	Quote    string `json:"quote" validate:"omitempty,max=2000"`
	Author   string `json:"author" validate:"omitempty,max=200"`
	Company  string `json:"company" validate:"omitempty,max=200"`
	Result   string `json:"result" validate:"omitempty,max=300"`
	VideoURL string `json:"videoUrl" validate:"omitempty,url,max=500"`
}

// ListCaseStudies returns a funnel's case studies.
func (h *Funnels) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	items, err := h.caseStudies.ListByFunnel(f.ID)
	if err != nil {
		slog.Error("list case studies failed", "error", err, "funnel", f.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// PutCaseStudy inserts or replaces a case study.
func (h *Funnels) PutCaseStudy(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	var req caseStudyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	cs := models.CaseStudy{
		Title:    strings.TrimSpace(req.Title),
		Quote:    req.Quote,
		Author:   req.Author,
		Company:  req.Company,
		Result:   req.Result,
		VideoURL: req.VideoURL,
	}
	if req.ID != "" {
		csID, err := uuid.Parse(req.ID)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "id is not a valid UUID")
			return
		}
		cs.ID = csID
	}
	if err := h.caseStudies.Put(f.ID, cs); err != nil {
		slog.Error("save case study failed", "error", err, "funnel", f.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.previewCache.InvalidateFunnel(r.Context(), f.ID)
	respondJSON(w, http.StatusOK, cs)
}

// DeleteCaseStudy removes one case study.
func (h *Funnels) DeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	csID, err := uuid.Parse(chi.URLParam(r, "caseStudyID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	if err := h.caseStudies.Delete(f.ID, csID); err != nil {
		slog.Error("delete case study failed", "error", err, "funnel", f.ID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.previewCache.InvalidateFunnel(r.Context(), f.ID)
	w.WriteHeader(http.StatusNoContent)
}

// load resolves the {funnelID} route parameter. On failure it writes the
// error response and returns ok=false.
func (h *Funnels) load(w http.ResponseWriter, r *http.Request) (*models.Funnel, bool) {
	funnelID, err := uuid.Parse(chi.URLParam(r, "funnelID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	f, err := h.funnels.FindByID(funnelID)
	if err != nil {
		slog.Error("find funnel failed", "error", err, "funnel", funnelID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	if f == nil {
		respondError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	return f, true
}
