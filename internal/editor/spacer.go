// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"fmt"

	"funnelpress/internal/models"
	"funnelpress/internal/slug"
)

// State is the interaction state of a primitive.
type State string

const (
	StateIdle     State = "idle"
	StateHovered  State = "hovered"
	StateDragging State = "dragging"
)

// Spacer sizing bounds applied when the config leaves them zero.
const (
	DefaultSpacerMin = 0.0
	DefaultSpacerMax = 300.0
)

// SpacerID derives the stable identifier of the adjustable whitespace after
// a named component on a given page of a template. The id is deterministic,
// so the same spacer maps to the same stored value across sessions.
func SpacerID(templateID string, pageNumber int, afterComponent string) string {
	return fmt.Sprintf("%s-p%d-%s", templateID, pageNumber, slug.Generate(afterComponent))
}

// SpacerConfig describes one spacer call site.
type SpacerConfig struct {
	ID            string
	DefaultHeight float64 // used until the operator first drags this spacer
	MinHeight     float64
	MaxHeight     float64
}

// Spacer is the draggable vertical-whitespace primitive. While dragging it
// holds a scoped subscription on the session's pointer bus; the
// subscription is released on pointer-up or Close, whichever comes first.
type Spacer struct {
	cfg     SpacerConfig
	session *Session

	state        State
	startY       float64
	startSpacing float64
	sub          *Subscription
}

// NewSpacer creates a spacer primitive bound to an editing session.
func NewSpacer(session *Session, cfg SpacerConfig) *Spacer {
	if cfg.DefaultHeight == 0 {
		cfg.DefaultHeight = models.DefaultSpacerHeight
	}
	if cfg.MaxHeight == 0 {
		cfg.MaxHeight = DefaultSpacerMax
	}
	return &Spacer{cfg: cfg, session: session, state: StateIdle}
}

// State returns the current interaction state.
func (sp *Spacer) State() State { return sp.state }

// Height returns the spacer's height for the active viewport: the stored
// value when the operator has dragged it before, the call-site default
// otherwise. In live rendering mode this is all the primitive does.
func (sp *Spacer) Height() float64 {
	return sp.session.Document().SpacerHeight(sp.cfg.ID, sp.session.Viewport(), sp.cfg.DefaultHeight)
}

// PointerEnter moves idle -> hovered. Ignored outside editing mode.
func (sp *Spacer) PointerEnter() {
	if !sp.session.Editing() {
		return
	}
	if sp.state == StateIdle {
		sp.state = StateHovered
	}
}

// PointerLeave moves hovered -> idle. A drag in progress is unaffected:
// the document-level listeners keep following the pointer wherever it goes.
func (sp *Spacer) PointerLeave() {
	if sp.state == StateHovered {
		sp.state = StateIdle
	}
}

// PointerDown starts a drag from the hovered state, capturing the start
// pointer Y and the spacing value at that instant, then subscribing to
// document-level move/up events.
func (sp *Spacer) PointerDown(ev PointerEvent) {
	if !sp.session.Editing() || sp.state != StateHovered {
		return
	}
	sp.state = StateDragging
	sp.startY = ev.Y
	sp.startSpacing = sp.Height()
	sp.sub = sp.session.Bus().Subscribe(sp.drag, sp.drop)
}

// drag recomputes the spacing from the vertical pointer delta, clamps it
// to the configured bounds, stores it for the active viewport and emits a
// change event. Every move emits — no throttling or batching.
func (sp *Spacer) drag(ev PointerEvent) {
	if sp.state != StateDragging {
		return
	}
	spacing := clamp(sp.startSpacing+(ev.Y-sp.startY), sp.cfg.MinHeight, sp.cfg.MaxHeight)
	vp := sp.session.Viewport()
	sp.session.Document().SetSpacerHeight(sp.cfg.ID, vp, spacing, sp.cfg.DefaultHeight)
	sp.session.sink.OnSpacingChange(sp.cfg.ID, vp, spacing)
}

// drop ends the drag on a document-level pointer-up. It fires even when
// the pointer has long left the spacer's own box.
func (sp *Spacer) drop(PointerEvent) {
	sp.state = StateIdle
	sp.sub.Release()
	sp.sub = nil
}

// Close tears the primitive down, releasing the drag subscription if one
// is still active. Hosts must call this when the spacer unmounts so a
// mid-drag unmount cannot leak a document-level listener.
func (sp *Spacer) Close() {
	sp.sub.Release()
	sp.sub = nil
	sp.state = StateIdle
}

// clamp bounds v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
