// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import "funnelpress/internal/models"

// Session is one in-memory editing session over a single customization
// document. It owns the active viewport, the editing flag, the pointer bus
// and the outbound event sink. Exactly one session edits a document at a
// time; the engine runs on a single-threaded UI event loop, so Session
// itself takes no locks.
type Session struct {
	doc      *models.CustomizationState
	content  map[string]string
	viewport models.Viewport
	editing  bool
	bus      *PointerBus
	sink     Events
}

// NewSession starts an editing session. A nil document gets a fresh one;
// a nil sink is replaced with NopEvents. content is the funnel's field
// content map and may be nil for sessions that only adjust sizing.
func NewSession(doc *models.CustomizationState, content map[string]string, sink Events) *Session {
	if doc == nil {
		doc = models.NewCustomizationState()
	}
	if sink == nil {
		sink = NopEvents{}
	}
	return &Session{
		doc:      doc,
		content:  content,
		viewport: models.ViewportDesktop,
		editing:  true,
		bus:      NewPointerBus(),
		sink:     sink,
	}
}

// Document returns the customization document the session edits.
func (s *Session) Document() *models.CustomizationState { return s.doc }

// Bus returns the session's pointer bus. The host feeds document-level
// pointer move/up samples into it while a drag is active.
func (s *Session) Bus() *PointerBus { return s.bus }

// Viewport returns the active viewport.
func (s *Session) Viewport() models.Viewport { return s.viewport }

// SetViewport switches the active viewport. Stored values for the other
// viewport are left exactly as they are: each viewport's state is fully
// independent and survives any number of toggles. Invalid viewports are
// ignored.
func (s *Session) SetViewport(v models.Viewport) {
	if v.Valid() {
		s.viewport = v
	}
}

// Editing reports whether primitives respond to pointer interaction.
func (s *Session) Editing() bool { return s.editing }

// SetEditing toggles between editor mode and live rendering mode.
func (s *Session) SetEditing(editing bool) { s.editing = editing }

// ApplySpacing stores a spacer height for the active viewport, clamped to
// the default drag bounds, and reports the change. Called by the host's
// settings surface; interactive drags go through Spacer instead.
func (s *Session) ApplySpacing(spacerID string, px float64) {
	px = clamp(px, DefaultSpacerMin, DefaultSpacerMax)
	s.doc.SetSpacerHeight(spacerID, s.viewport, px, models.DefaultSpacerHeight)
	s.sink.OnSpacingChange(spacerID, s.viewport, px)
}

// ApplyTextSize stores a per-field font size for the active viewport and
// reports the change. Called by the host's settings surface.
func (s *Session) ApplyTextSize(fieldID string, px float64) {
	s.doc.TextSizes.Set(s.viewport, fieldID, px)
	s.sink.OnTextSizeChange(fieldID, s.viewport, px)
}

// ApplyButtonSize stores a CTA scale percentage for the active viewport
// and reports the change.
func (s *Session) ApplyButtonSize(fieldID string, percent float64) {
	s.doc.ButtonSizes.Set(s.viewport, fieldID, percent)
	s.sink.OnButtonSizeChange(fieldID, s.viewport, percent)
}

// ApplyLogoSize stores the logo height for the active viewport and reports
// the change.
func (s *Session) ApplyLogoSize(px float64) {
	s.doc.LogoSize = s.doc.LogoSize.With(s.viewport, px)
	s.sink.OnLogoSizeChange(s.viewport, px)
}

// ApplyFieldEdit overwrites a field's content value and reports the edit.
// The selection-to-edit flow is a mediator: a click on an element only
// emits OnElementClick; the external settings panel calls back into
// ApplyFieldEdit with the new text.
func (s *Session) ApplyFieldEdit(fieldID, value string) {
	if s.content != nil {
		s.content[fieldID] = value
	}
	s.sink.OnFieldEdit(fieldID, value)
}
