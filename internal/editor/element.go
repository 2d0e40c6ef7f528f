// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import "funnelpress/internal/models"

// lineHeightRatio derives rendered line height from the resolved font
// size. Line height is never stored independently.
const lineHeightRatio = 1.5

// ButtonSizeKey is the single key under which the CTA scale percentage is
// stored in the per-viewport buttonSizes maps.
const ButtonSizeKey = "ctaText"

// EditableElement is a clickable text or CTA button slot. A click never
// mutates text; it only emits a selection event so the host's settings
// surface knows which field is active.
type EditableElement struct {
	session *Session

	FieldID     string
	Kind        ElementKind
	IsCTA       bool
	DefaultSize float64 // font size in px used when none is stored
}

// NewEditableElement creates a text element for a field.
func NewEditableElement(session *Session, fieldID string, defaultSize float64) *EditableElement {
	return &EditableElement{
		session:     session,
		FieldID:     fieldID,
		Kind:        ElementText,
		DefaultSize: defaultSize,
	}
}

// NewCTAButton creates the CTA button element, which additionally carries
// an independent scale percentage.
func NewCTAButton(session *Session, fieldID string, defaultSize float64) *EditableElement {
	return &EditableElement{
		session:     session,
		FieldID:     fieldID,
		Kind:        ElementButton,
		IsCTA:       true,
		DefaultSize: defaultSize,
	}
}

// Click emits the selection event in editing mode. Live pages ignore it.
func (e *EditableElement) Click() {
	if !e.session.Editing() {
		return
	}
	e.session.sink.OnElementClick(e.FieldID, e.Kind, e.IsCTA)
}

// FontSize resolves the element's font size for the active viewport:
// the stored per-field value, else the element default.
func (e *EditableElement) FontSize() float64 {
	if px, ok := e.session.Document().TextSizes.Get(e.session.Viewport(), e.FieldID); ok {
		return px
	}
	return e.DefaultSize
}

// LineHeight is always derived from the resolved font size.
func (e *EditableElement) LineHeight() float64 {
	return lineHeightRatio * e.FontSize()
}

// Scale returns the CTA scale percentage for the active viewport. Non-CTA
// elements always render at 100.
func (e *EditableElement) Scale() float64 {
	if !e.IsCTA {
		return models.DefaultButtonScale
	}
	if pct, ok := e.session.Document().ButtonSizes.Get(e.session.Viewport(), ButtonSizeKey); ok {
		return pct
	}
	return models.DefaultButtonScale
}
