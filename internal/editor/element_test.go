// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"testing"

	"funnelpress/internal/models"
)

// TestElementClickEmitsSelection verifies a click emits a selection event
// and mutates nothing.
func TestElementClickEmitsSelection(t *testing.T) {
	rec := newRecorder()
	content := map[string]string{"heading": "Hello"}
	s := NewSession(nil, content, rec)

	el := NewEditableElement(s, "heading", models.DefaultHeadingSize)
	el.Click()

	if len(rec.clicks) != 1 || rec.clicks[0] != "heading" {
		t.Errorf("clicks = %v, want [heading]", rec.clicks)
	}
	if content["heading"] != "Hello" {
		t.Error("click mutated content")
	}

	s.SetEditing(false)
	el.Click()
	if len(rec.clicks) != 1 {
		t.Error("click emitted outside editing mode")
	}
}

// TestElementFontSizeAndLineHeight checks stored-vs-default resolution and
// the fixed 1.5x line-height derivation.
func TestElementFontSizeAndLineHeight(t *testing.T) {
	s := NewSession(nil, nil, nil)
	el := NewEditableElement(s, "subheading", models.DefaultSubheadingSize)

	if got := el.FontSize(); got != models.DefaultSubheadingSize {
		t.Errorf("default font size = %v, want %v", got, models.DefaultSubheadingSize)
	}
	if got := el.LineHeight(); got != 1.5*models.DefaultSubheadingSize {
		t.Errorf("line height = %v, want %v", got, 1.5*models.DefaultSubheadingSize)
	}

	s.ApplyTextSize("subheading", 40)
	if got := el.FontSize(); got != 40 {
		t.Errorf("stored font size = %v, want 40", got)
	}
	if got := el.LineHeight(); got != 60 {
		t.Errorf("derived line height = %v, want 60", got)
	}
}

// TestTextSizeViewportIsolation is the canonical toggle scenario: desktop
// 60, mobile 20, desktop still 60.
func TestTextSizeViewportIsolation(t *testing.T) {
	s := NewSession(nil, nil, nil)
	el := NewEditableElement(s, "heading", models.DefaultHeadingSize)

	s.ApplyTextSize("heading", 60)

	s.SetViewport(models.ViewportMobile)
	s.ApplyTextSize("heading", 20)
	if got := el.FontSize(); got != 20 {
		t.Errorf("mobile size = %v, want 20", got)
	}

	s.SetViewport(models.ViewportDesktop)
	if got := el.FontSize(); got != 60 {
		t.Errorf("desktop size after toggle = %v, want 60", got)
	}
}

// TestCTAButtonScale verifies the independent scale percentage and that
// plain text elements ignore it.
func TestCTAButtonScale(t *testing.T) {
	s := NewSession(nil, nil, nil)
	cta := NewCTAButton(s, "ctaText", models.DefaultCTASize)
	text := NewEditableElement(s, "heading", models.DefaultHeadingSize)

	if got := cta.Scale(); got != models.DefaultButtonScale {
		t.Errorf("default scale = %v, want %v", got, models.DefaultButtonScale)
	}

	s.ApplyButtonSize(ButtonSizeKey, 130)
	if got := cta.Scale(); got != 130 {
		t.Errorf("scale = %v, want 130", got)
	}
	if got := text.Scale(); got != models.DefaultButtonScale {
		t.Errorf("text element scale = %v, want %v", got, models.DefaultButtonScale)
	}

	// Scale is per viewport like everything else.
	s.SetViewport(models.ViewportMobile)
	if got := cta.Scale(); got != models.DefaultButtonScale {
		t.Errorf("mobile scale = %v, want untouched default", got)
	}
}

// TestApplyFieldEdit verifies the mediator flow: the settings surface
// writes content through the session, and the edit is reported.
func TestApplyFieldEdit(t *testing.T) {
	rec := newRecorder()
	content := map[string]string{"heading": "Old"}
	s := NewSession(nil, content, rec)

	s.ApplyFieldEdit("heading", "New headline")

	if content["heading"] != "New headline" {
		t.Errorf("content = %q, want overwritten value", content["heading"])
	}
	if rec.fieldEdits["heading"] != "New headline" {
		t.Errorf("fieldEdits = %v", rec.fieldEdits)
	}
}
