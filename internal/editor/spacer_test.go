// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"testing"

	"funnelpress/internal/models"
)

// recorder captures every emitted event for assertions.
type recorder struct {
	spacing []struct {
		id string
		vp models.Viewport
		px float64
	}
	textSizes  map[string]float64
	logoSizes  []float64
	clicks     []string
	fieldEdits map[string]string
}

func newRecorder() *recorder {
	return &recorder{textSizes: make(map[string]float64), fieldEdits: make(map[string]string)}
}

func (r *recorder) OnSpacingChange(id string, vp models.Viewport, px float64) {
	r.spacing = append(r.spacing, struct {
		id string
		vp models.Viewport
		px float64
	}{id, vp, px})
}
func (r *recorder) OnTextSizeChange(id string, _ models.Viewport, px float64)  { r.textSizes[id] = px }
func (r *recorder) OnButtonSizeChange(string, models.Viewport, float64)        {}
func (r *recorder) OnLogoSizeChange(_ models.Viewport, px float64)             { r.logoSizes = append(r.logoSizes, px) }
func (r *recorder) OnElementClick(id string, _ ElementKind, _ bool)            { r.clicks = append(r.clicks, id) }
func (r *recorder) OnFieldEdit(id, value string)                               { r.fieldEdits[id] = value }

// TestSpacerID verifies spacer ids are deterministic and distinct per page.
func TestSpacerID(t *testing.T) {
	a := SpacerID("trigger-template-1", 1, "heading")
	b := SpacerID("trigger-template-1", 1, "heading")
	c := SpacerID("trigger-template-1", 2, "heading")

	if a != b {
		t.Errorf("same inputs produced different ids: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different pages produced the same id: %q", a)
	}
	if d := SpacerID("trigger-template-1", 1, "ctaButton"); d == a {
		t.Errorf("different components produced the same id: %q", d)
	}
}

// TestSpacerStateTransitions walks the idle/hovered/dragging machine.
func TestSpacerStateTransitions(t *testing.T) {
	s := NewSession(nil, nil, nil)
	sp := NewSpacer(s, SpacerConfig{ID: "sp-1"})

	if sp.State() != StateIdle {
		t.Fatalf("initial state = %s, want idle", sp.State())
	}

	sp.PointerEnter()
	if sp.State() != StateHovered {
		t.Fatalf("after enter = %s, want hovered", sp.State())
	}

	sp.PointerLeave()
	if sp.State() != StateIdle {
		t.Fatalf("after leave = %s, want idle", sp.State())
	}

	// Pointer-down only starts a drag from hovered.
	sp.PointerDown(PointerEvent{Y: 100})
	if sp.State() != StateIdle {
		t.Fatalf("down from idle = %s, want idle", sp.State())
	}

	sp.PointerEnter()
	sp.PointerDown(PointerEvent{Y: 100})
	if sp.State() != StateDragging {
		t.Fatalf("down from hovered = %s, want dragging", sp.State())
	}

	// Leaving the element mid-drag does not end the drag.
	sp.PointerLeave()
	if sp.State() != StateDragging {
		t.Fatalf("leave while dragging = %s, want dragging", sp.State())
	}

	// Document-level pointer-up ends it even with the pointer elsewhere.
	s.Bus().Up(PointerEvent{Y: 900})
	if sp.State() != StateIdle {
		t.Fatalf("after up = %s, want idle", sp.State())
	}
}

// TestSpacerClamp drags far past both bounds and checks the stored value
// is clamped to [0, 300] from a default of 48.
func TestSpacerClamp(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{name: "minus 1000 clamps to floor", delta: -1000, want: 0},
		{name: "plus 1000 clamps to ceiling", delta: 1000, want: 300},
		{name: "small delta passes through", delta: 10, want: 58},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := newRecorder()
			s := NewSession(nil, nil, rec)
			sp := NewSpacer(s, SpacerConfig{
				ID:            "sp-clamp",
				DefaultHeight: 48,
				MinHeight:     0,
				MaxHeight:     300,
			})

			sp.PointerEnter()
			sp.PointerDown(PointerEvent{Y: 500})
			s.Bus().Move(PointerEvent{Y: 500 + tc.delta})
			s.Bus().Up(PointerEvent{Y: 500 + tc.delta})

			if got := sp.Height(); got != tc.want {
				t.Errorf("height after drag = %v, want %v", got, tc.want)
			}
			if len(rec.spacing) == 0 {
				t.Fatal("no spacing events emitted")
			}
			last := rec.spacing[len(rec.spacing)-1]
			if last.px != tc.want || last.id != "sp-clamp" || last.vp != models.ViewportDesktop {
				t.Errorf("last event = %+v, want (sp-clamp, desktop, %v)", last, tc.want)
			}
		})
	}
}

// TestSpacerEmitsEveryMove verifies the unthrottled change stream.
func TestSpacerEmitsEveryMove(t *testing.T) {
	rec := newRecorder()
	s := NewSession(nil, nil, rec)
	sp := NewSpacer(s, SpacerConfig{ID: "sp-stream", DefaultHeight: 48})

	sp.PointerEnter()
	sp.PointerDown(PointerEvent{Y: 0})
	for i := 1; i <= 5; i++ {
		s.Bus().Move(PointerEvent{Y: float64(i)})
	}
	s.Bus().Up(PointerEvent{Y: 5})

	if len(rec.spacing) != 5 {
		t.Errorf("emitted %d spacing events, want 5 (one per move)", len(rec.spacing))
	}
}

// TestSpacerLazyCreation verifies the document entry appears only on first
// drag, seeded with the default on the untouched viewport.
func TestSpacerLazyCreation(t *testing.T) {
	s := NewSession(nil, nil, nil)
	sp := NewSpacer(s, SpacerConfig{ID: "sp-lazy", DefaultHeight: 48})

	if _, ok := s.Document().UniversalSpacers["sp-lazy"]; ok {
		t.Fatal("entry exists before any drag")
	}
	if got := sp.Height(); got != 48 {
		t.Fatalf("default height = %v, want 48", got)
	}

	sp.PointerEnter()
	sp.PointerDown(PointerEvent{Y: 0})
	s.Bus().Move(PointerEvent{Y: 20})
	s.Bus().Up(PointerEvent{Y: 20})

	pair, ok := s.Document().UniversalSpacers["sp-lazy"]
	if !ok {
		t.Fatal("entry missing after drag")
	}
	if pair.Desktop != 68 {
		t.Errorf("desktop = %v, want 68", pair.Desktop)
	}
	if pair.Mobile != 48 {
		t.Errorf("mobile seeded = %v, want default 48", pair.Mobile)
	}
}

// TestSpacerViewportIsolation drags on both viewports and checks neither
// write leaks into the other.
func TestSpacerViewportIsolation(t *testing.T) {
	s := NewSession(nil, nil, nil)
	sp := NewSpacer(s, SpacerConfig{ID: "sp-iso", DefaultHeight: 48})

	sp.PointerEnter()
	sp.PointerDown(PointerEvent{Y: 0})
	s.Bus().Move(PointerEvent{Y: 52})
	s.Bus().Up(PointerEvent{Y: 52})
	// desktop now 100

	s.SetViewport(models.ViewportMobile)
	sp.PointerEnter()
	sp.PointerDown(PointerEvent{Y: 0})
	s.Bus().Move(PointerEvent{Y: -18})
	s.Bus().Up(PointerEvent{Y: -18})
	// mobile now 30

	if got := sp.Height(); got != 30 {
		t.Errorf("mobile height = %v, want 30", got)
	}
	s.SetViewport(models.ViewportDesktop)
	if got := sp.Height(); got != 100 {
		t.Errorf("desktop height after toggle = %v, want 100", got)
	}
}

// TestSpacerCloseMidDragReleasesListener covers the unmount-mid-drag
// failure mode: Close must release the document-level subscription.
func TestSpacerCloseMidDragReleasesListener(t *testing.T) {
	rec := newRecorder()
	s := NewSession(nil, nil, rec)
	sp := NewSpacer(s, SpacerConfig{ID: "sp-close", DefaultHeight: 48})

	sp.PointerEnter()
	sp.PointerDown(PointerEvent{Y: 0})
	if s.Bus().Active() != 1 {
		t.Fatalf("active subscriptions = %d, want 1", s.Bus().Active())
	}

	sp.Close()
	if s.Bus().Active() != 0 {
		t.Errorf("active subscriptions after Close = %d, want 0", s.Bus().Active())
	}

	before := len(rec.spacing)
	s.Bus().Move(PointerEvent{Y: 100})
	if len(rec.spacing) != before {
		t.Error("released subscription still fired")
	}
}

// TestSpacerNonEditingMode verifies the primitive degrades to a plain
// block in live rendering mode.
func TestSpacerNonEditingMode(t *testing.T) {
	s := NewSession(nil, nil, nil)
	s.SetEditing(false)
	sp := NewSpacer(s, SpacerConfig{ID: "sp-live", DefaultHeight: 64})

	sp.PointerEnter()
	if sp.State() != StateIdle {
		t.Errorf("state after enter in live mode = %s, want idle", sp.State())
	}
	sp.PointerDown(PointerEvent{Y: 0})
	if sp.State() != StateIdle || s.Bus().Active() != 0 {
		t.Error("live mode must not start drags")
	}
	if got := sp.Height(); got != 64 {
		t.Errorf("height = %v, want call-site default 64", got)
	}
}
