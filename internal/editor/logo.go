// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import "funnelpress/internal/models"

// MinLogoHeight is the smallest height the logo can be dragged to. There
// is no upper bound; the operator owns the layout consequences.
const MinLogoHeight = 20.0

// LogoResizer drags the logo's rendered height via horizontal pointer
// movement. Aspect ratio is preserved at render time through "contain"
// scaling, so height is the only stored dimension. Same idle/hovered/
// dragging shape as Spacer, same scoped-subscription discipline.
type LogoResizer struct {
	session *Session

	state       State
	startX      float64
	startHeight float64
	sub         *Subscription
}

// NewLogoResizer creates the logo primitive for a session.
func NewLogoResizer(session *Session) *LogoResizer {
	return &LogoResizer{session: session, state: StateIdle}
}

// State returns the current interaction state.
func (lr *LogoResizer) State() State { return lr.state }

// Height returns the logo height for the active viewport, falling back to
// the default when the stored value is absent.
func (lr *LogoResizer) Height() float64 {
	h := lr.session.Document().LogoSize.For(lr.session.Viewport())
	if h <= 0 {
		return models.DefaultLogoHeight
	}
	return h
}

// ShowHint reports whether the transient resize affordance is visible:
// only while hovered and not yet dragging.
func (lr *LogoResizer) ShowHint() bool { return lr.state == StateHovered }

// PointerEnter moves idle -> hovered in editing mode.
func (lr *LogoResizer) PointerEnter() {
	if !lr.session.Editing() {
		return
	}
	if lr.state == StateIdle {
		lr.state = StateHovered
	}
}

// PointerLeave moves hovered -> idle unless a drag is in progress.
func (lr *LogoResizer) PointerLeave() {
	if lr.state == StateHovered {
		lr.state = StateIdle
	}
}

// PointerDown starts a resize drag, capturing the start pointer X and the
// height at that instant.
func (lr *LogoResizer) PointerDown(ev PointerEvent) {
	if !lr.session.Editing() || lr.state != StateHovered {
		return
	}
	lr.state = StateDragging
	lr.startX = ev.X
	lr.startHeight = lr.Height()
	lr.sub = lr.session.Bus().Subscribe(lr.drag, lr.drop)
}

// drag maps the horizontal delta to a new height, clamped below at
// MinLogoHeight, stores it for the active viewport and emits the change.
func (lr *LogoResizer) drag(ev PointerEvent) {
	if lr.state != StateDragging {
		return
	}
	h := lr.startHeight + (ev.X - lr.startX)
	if h < MinLogoHeight {
		h = MinLogoHeight
	}
	vp := lr.session.Viewport()
	doc := lr.session.Document()
	doc.LogoSize = doc.LogoSize.With(vp, h)
	lr.session.sink.OnLogoSizeChange(vp, h)
}

// drop ends the drag on document-level pointer-up.
func (lr *LogoResizer) drop(PointerEvent) {
	lr.state = StateIdle
	lr.sub.Release()
	lr.sub = nil
}

// Close releases any active drag subscription on teardown.
func (lr *LogoResizer) Close() {
	lr.sub.Release()
	lr.sub = nil
	lr.state = StateIdle
}
