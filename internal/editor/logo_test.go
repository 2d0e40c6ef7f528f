// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"testing"

	"funnelpress/internal/models"
)

// TestLogoResizeHorizontalDelta maps pointer X movement to height.
func TestLogoResizeHorizontalDelta(t *testing.T) {
	rec := newRecorder()
	s := NewSession(nil, nil, rec)
	lr := NewLogoResizer(s)

	if got := lr.Height(); got != models.DefaultLogoHeight {
		t.Fatalf("initial height = %v, want %v", got, models.DefaultLogoHeight)
	}

	lr.PointerEnter()
	lr.PointerDown(PointerEvent{X: 200})
	s.Bus().Move(PointerEvent{X: 240})
	s.Bus().Up(PointerEvent{X: 240})

	if got := lr.Height(); got != models.DefaultLogoHeight+40 {
		t.Errorf("height = %v, want %v", got, models.DefaultLogoHeight+40)
	}
	if len(rec.logoSizes) == 0 || rec.logoSizes[len(rec.logoSizes)-1] != models.DefaultLogoHeight+40 {
		t.Errorf("logo size events = %v", rec.logoSizes)
	}
}

// TestLogoMinimumHeight verifies the 20px floor and the absence of a
// ceiling.
func TestLogoMinimumHeight(t *testing.T) {
	s := NewSession(nil, nil, nil)
	lr := NewLogoResizer(s)

	lr.PointerEnter()
	lr.PointerDown(PointerEvent{X: 0})
	s.Bus().Move(PointerEvent{X: -5000})
	s.Bus().Up(PointerEvent{X: -5000})
	if got := lr.Height(); got != MinLogoHeight {
		t.Errorf("height after huge negative drag = %v, want %v", got, MinLogoHeight)
	}

	lr.PointerEnter()
	lr.PointerDown(PointerEvent{X: 0})
	s.Bus().Move(PointerEvent{X: 5000})
	s.Bus().Up(PointerEvent{X: 5000})
	if got := lr.Height(); got != MinLogoHeight+5000 {
		t.Errorf("height after huge positive drag = %v, want unbounded %v", got, MinLogoHeight+5000)
	}
}

// TestLogoHintVisibility shows the help affordance only while
// hovered-not-dragging.
func TestLogoHintVisibility(t *testing.T) {
	s := NewSession(nil, nil, nil)
	lr := NewLogoResizer(s)

	if lr.ShowHint() {
		t.Error("hint visible while idle")
	}
	lr.PointerEnter()
	if !lr.ShowHint() {
		t.Error("hint hidden while hovered")
	}
	lr.PointerDown(PointerEvent{X: 0})
	if lr.ShowHint() {
		t.Error("hint visible while dragging")
	}
	s.Bus().Up(PointerEvent{X: 0})
	if lr.ShowHint() {
		t.Error("hint visible after drag ended")
	}
}

// TestLogoViewportIsolation resizes per viewport and checks independence.
func TestLogoViewportIsolation(t *testing.T) {
	s := NewSession(nil, nil, nil)
	lr := NewLogoResizer(s)

	lr.PointerEnter()
	lr.PointerDown(PointerEvent{X: 0})
	s.Bus().Move(PointerEvent{X: 32})
	s.Bus().Up(PointerEvent{X: 32}) // desktop: 80

	s.SetViewport(models.ViewportMobile)
	lr.PointerEnter()
	lr.PointerDown(PointerEvent{X: 0})
	s.Bus().Move(PointerEvent{X: -8})
	s.Bus().Up(PointerEvent{X: -8}) // mobile: 40

	if got := lr.Height(); got != 40 {
		t.Errorf("mobile height = %v, want 40", got)
	}
	s.SetViewport(models.ViewportDesktop)
	if got := lr.Height(); got != 80 {
		t.Errorf("desktop height after toggle = %v, want 80", got)
	}
}

// TestLogoCloseMidDrag releases the subscription on teardown.
func TestLogoCloseMidDrag(t *testing.T) {
	s := NewSession(nil, nil, nil)
	lr := NewLogoResizer(s)

	lr.PointerEnter()
	lr.PointerDown(PointerEvent{X: 0})
	if s.Bus().Active() != 1 {
		t.Fatalf("active subscriptions = %d, want 1", s.Bus().Active())
	}
	lr.Close()
	if s.Bus().Active() != 0 {
		t.Errorf("active subscriptions after Close = %d, want 0", s.Bus().Active())
	}
}
