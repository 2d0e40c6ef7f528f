// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor implements the live-editing primitives that turn a static
// funnel page into an in-place visual editor: draggable spacers, a
// resizable logo, and clickable text/button elements. Each primitive runs
// a small idle/hovered/dragging state machine whose per-viewport size
// state lives in the funnel's customization document. The engine itself
// performs no I/O; every change is reported through the Events sink and
// persisted by the host application.
package editor

import "funnelpress/internal/models"

// ElementKind tags a clickable element in a selection event.
type ElementKind string

const (
	ElementText   ElementKind = "text"
	ElementButton ElementKind = "button"
)

// Events is the outbound change contract between the editing engine and
// the host application. All callbacks are implicitly scoped to the active
// viewport via the models.Viewport argument; the host persists them back
// into the customization document, which is re-read on next render.
type Events interface {
	OnSpacingChange(spacerID string, viewport models.Viewport, px float64)
	OnTextSizeChange(fieldID string, viewport models.Viewport, px float64)
	OnButtonSizeChange(fieldID string, viewport models.Viewport, percent float64)
	OnLogoSizeChange(viewport models.Viewport, px float64)
	OnElementClick(fieldID string, kind ElementKind, isCTA bool)
	OnFieldEdit(fieldID string, value string)
}

// NopEvents discards every event. Useful for non-editing renders and tests
// that only care about document state.
type NopEvents struct{}

func (NopEvents) OnSpacingChange(string, models.Viewport, float64)    {}
func (NopEvents) OnTextSizeChange(string, models.Viewport, float64)   {}
func (NopEvents) OnButtonSizeChange(string, models.Viewport, float64) {}
func (NopEvents) OnLogoSizeChange(models.Viewport, float64)           {}
func (NopEvents) OnElementClick(string, ElementKind, bool)            {}
func (NopEvents) OnFieldEdit(string, string)                          {}
