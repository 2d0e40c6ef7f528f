// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package renderer assembles funnel pages: it resolves template fields,
// compiles the selected theme into a scoped stylesheet, applies the
// per-viewport customization document and executes the embedded page
// template. In editing mode the output carries the data attributes the
// editor overlay binds to; in live mode it is a plain static page.
package renderer

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"funnelpress/internal/editor"
	"funnelpress/internal/markdown"
	"funnelpress/internal/models"
	"funnelpress/internal/registry"
	"funnelpress/internal/styles"
	"funnelpress/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateFuncs are the helpers available inside page templates.
var templateFuncs = template.FuncMap{
	// videoEmbed resolves a watch-page URL to its embed form, or empty
	// when the URL is not a recognized provider.
	"videoEmbed": func(raw string) string {
		embedURL, ok := EmbedURL(raw)
		if !ok {
			return ""
		}
		return embedURL
	},
}

// Renderer renders funnel pages from embedded template sources. Compiled
// templates are held in an L1 cache so repeated renders skip parsing.
type Renderer struct {
	registry *registry.Registry
	themes   *theme.Catalog
	fonts    *styles.Groups
	cache    *templateCache
}

// New creates a renderer over the given catalogs.
func New(reg *registry.Registry, themes *theme.Catalog, fonts *styles.Groups) *Renderer {
	return &Renderer{
		registry: reg,
		themes:   themes,
		fonts:    fonts,
		cache:    newTemplateCache(),
	}
}

// Invalidate drops one compiled template from the L1 cache.
func (r *Renderer) Invalidate(templateID string) {
	r.cache.invalidate(templateID)
}

// InvalidateAll clears the L1 template cache.
func (r *Renderer) InvalidateAll() {
	r.cache.invalidateAll()
}

// Request carries everything one render needs. Customization may be nil
// (a fresh document is assumed); CaseStudies may be empty.
type Request struct {
	Funnel        *models.Funnel
	Customization *models.CustomizationState
	CaseStudies   []models.CaseStudy
	Viewport      models.Viewport
	Editing       bool
}

// Render produces the complete page HTML for a request.
func (r *Renderer) Render(req Request) ([]byte, error) {
	if req.Funnel == nil {
		return nil, fmt.Errorf("render: nil funnel")
	}
	fields := r.registry.Fields(req.Funnel.TemplateID)
	if fields == nil {
		return nil, fmt.Errorf("render: unknown template %q", req.Funnel.TemplateID)
	}

	doc := req.Customization
	if doc == nil {
		doc = models.NewCustomizationState()
	}
	viewport := req.Viewport
	if !viewport.Valid() {
		viewport = models.ViewportDesktop
	}

	th, ok := r.themes.Get(req.Funnel.ThemeID)
	if !ok {
		th, ok = r.themes.Default()
		if !ok {
			return nil, fmt.Errorf("render: no themes registered")
		}
		slog.Warn("funnel references unknown theme, using default",
			"funnel", req.Funnel.ID, "theme", req.Funnel.ThemeID, "fallback", th.Name)
	}

	var overrides *theme.Overrides
	if len(req.Funnel.ThemeOverrides) > 0 {
		overrides = &theme.Overrides{}
		if err := json.Unmarshal(req.Funnel.ThemeOverrides, overrides); err != nil {
			slog.Warn("malformed theme overrides ignored", "funnel", req.Funnel.ID, "error", err)
			overrides = nil
		}
	}

	session := editor.NewSession(doc, req.Funnel.Content, nil)
	session.SetViewport(viewport)
	session.SetEditing(req.Editing)

	data := &pageData{
		funnel:      req.Funnel,
		fields:      fields,
		session:     session,
		styles:      r.fonts.ResolveFunnelStyles(doc),
		themeID:     th.ID.String(),
		themeCSS:    template.CSS(theme.GenerateCSS(th, overrides)),
		caseStudies: req.CaseStudies,
		page:        1,
	}

	tmpl, err := r.compile(req.Funnel.TemplateID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", req.Funnel.TemplateID, err)
	}
	return buf.Bytes(), nil
}

// compile parses an embedded template source, consulting the L1 cache.
func (r *Renderer) compile(templateID string) (*template.Template, error) {
	if tmpl := r.cache.get(templateID); tmpl != nil {
		return tmpl, nil
	}
	name := templateID + ".html"
	tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("compile template %s: %w", templateID, err)
	}
	r.cache.put(templateID, tmpl)
	return tmpl, nil
}

// pageData is the execution context of one render. Templates read it
// exclusively through its exported methods.
type pageData struct {
	funnel      *models.Funnel
	fields      []registry.Field
	session     *editor.Session
	styles      styles.FunnelStyles
	themeID     string
	themeCSS    template.CSS
	caseStudies []models.CaseStudy
	page        int
}

// FunnelName returns the page title.
func (d *pageData) FunnelName() string { return d.funnel.Name }

// ThemeID keys the data-theme scope attribute.
func (d *pageData) ThemeID() string { return d.themeID }

// ThemeCSS is the compiled, already-scoped stylesheet.
func (d *pageData) ThemeCSS() template.CSS { return d.themeCSS }

// PageBackground and PageText expose the two-tone style-service pair for
// the parts of the page outside the theme scope.
func (d *pageData) PageBackground() string { return d.styles.Background }
func (d *pageData) PageText() string       { return d.styles.Text }

// Editing reports whether editor hooks are rendered.
func (d *pageData) Editing() bool { return d.session.Editing() }

// Year feeds the footer.
func (d *pageData) Year() int { return time.Now().Year() }

// HasLogo / LogoURL / LogoHeight drive the resizable logo slot.
func (d *pageData) HasLogo() bool   { return d.funnel.LogoURL != "" }
func (d *pageData) LogoURL() string { return d.funnel.LogoURL }
func (d *pageData) LogoHeight() float64 {
	return editor.NewLogoResizer(d.session).Height()
}

// CaseStudies returns the social-proof records for the proof section.
func (d *pageData) CaseStudies() []models.CaseStudy { return d.caseStudies }

// Field resolves a field id to its display HTML. Long-text fields render
// Markdown; everything else is escaped plain text. Unknown ids degrade to
// empty output, never an execution error.
func (d *pageData) Field(id string) template.HTML {
	value := registry.FieldValue(id, d.funnel.Content, d.fields)
	if value == "" {
		return ""
	}
	for _, f := range d.fields {
		if f.ID == id && f.Kind == registry.FieldLongText {
			html, err := markdown.ToHTML(value)
			if err != nil {
				slog.Warn("markdown conversion failed, rendering as text", "field", id, "error", err)
				break
			}
			return template.HTML(html)
		}
	}
	return template.HTML(template.HTMLEscapeString(value))
}

// FieldText resolves a field id to its raw display text.
func (d *pageData) FieldText(id string) string {
	return registry.FieldValue(id, d.funnel.Content, d.fields)
}

// TextStyle builds the inline style of a text element: role styles from
// the resolution service plus the per-viewport font size and its derived
// line height.
func (d *pageData) TextStyle(fieldID, role string) (template.CSS, error) {
	style, el, err := d.roleStyle(fieldID, styles.Role(role))
	if err != nil {
		return "", err
	}
	css := fmt.Sprintf("font-family:%s;color:%s;font-weight:%s;font-size:%gpx;line-height:%gpx",
		style["fontFamily"], style["color"], style["fontWeight"], el.FontSize(), el.LineHeight())
	return template.CSS(css), nil
}

// CTAStyle builds the CTA button's inline style, including its
// independent scale transform.
func (d *pageData) CTAStyle(fieldID string) (template.CSS, error) {
	style, el, err := d.roleStyle(fieldID, styles.RoleCTA)
	if err != nil {
		return "", err
	}
	cta := editor.NewCTAButton(d.session, fieldID, models.DefaultCTASize)
	css := fmt.Sprintf("font-family:%s;color:%s;font-weight:%s;font-size:%gpx;line-height:%gpx;transform:scale(%g);transform-origin:center",
		style["fontFamily"], style["color"], style["fontWeight"], el.FontSize(), el.LineHeight(), cta.Scale()/100)
	return template.CSS(css), nil
}

// roleStyle resolves role styling plus the element used for size lookup.
func (d *pageData) roleStyle(fieldID string, role styles.Role) (map[string]string, *editor.EditableElement, error) {
	style, err := styles.TextElementStyle(role, d.styles, nil)
	if err != nil {
		return nil, nil, err
	}
	el := editor.NewEditableElement(d.session, fieldID, defaultSizeFor(role))
	return style, el, nil
}

// defaultSizeFor maps a role to its default font size in pixels.
func defaultSizeFor(role styles.Role) float64 {
	switch role {
	case styles.RoleHeading:
		return models.DefaultHeadingSize
	case styles.RoleSubheading:
		return models.DefaultSubheadingSize
	case styles.RoleCTA:
		return models.DefaultCTASize
	default:
		return models.DefaultBodySize
	}
}

// SpacerView is the template-facing state of one adjustable whitespace
// block.
type SpacerView struct {
	ID     string
	Height float64
}

// Spacer resolves the spacer after the named component: its deterministic
// id and the stored-or-default height for the active viewport.
func (d *pageData) Spacer(afterComponent string) *SpacerView {
	id := editor.SpacerID(d.funnel.TemplateID, d.page, afterComponent)
	return &SpacerView{
		ID:     id,
		Height: d.session.Document().SpacerHeight(id, d.session.Viewport(), models.DefaultSpacerHeight),
	}
}

// VideoView is the template-facing state of the video slot.
type VideoView struct {
	Present bool
	Embed   string
	Invalid bool
}

// Video resolves the funnel's video URL into an embed target, or marks it
// invalid so the template shows the explicit placeholder.
func (d *pageData) Video() VideoView {
	if d.funnel.VideoURL == "" {
		return VideoView{}
	}
	embed, ok := EmbedURL(d.funnel.VideoURL)
	if !ok {
		return VideoView{Present: true, Invalid: true}
	}
	return VideoView{Present: true, Embed: embed}
}

// InvalidVideoText is the placeholder shown for unrecognized video URLs.
func (d *pageData) InvalidVideoText() string { return InvalidVideoMessage }

// FieldAttr emits the editor binding attributes for a field in editing
// mode and nothing in live mode.
func (d *pageData) FieldAttr(fieldID string, kind string) template.HTMLAttr {
	if !d.session.Editing() {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`data-field=%q data-kind=%q`, fieldID, kind))
}

// SpacerAttr emits the editor binding attribute for a spacer in editing
// mode.
func (d *pageData) SpacerAttr(sv *SpacerView) template.HTMLAttr {
	if !d.session.Editing() {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`data-spacer=%q`, sv.ID))
}
