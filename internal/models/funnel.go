// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Funnel is one marketing page instance: a chosen template, its editable
// content, the selected theme and any per-funnel theme overrides. The
// content map is created from the template's placeholders at instantiation
// and mutated field-by-field afterwards; fields are overwritten, never
// deleted.
type Funnel struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	TemplateID string    `json:"template_id"`

	// Content maps field id -> current value for the template's fields.
	Content map[string]string `json:"content"`

	ThemeID uuid.UUID `json:"theme_id"`

	// ThemeOverrides is an optional partial theme document stored as raw
	// JSON; the theme package owns its shape and merge semantics.
	ThemeOverrides json.RawMessage `json:"theme_overrides,omitempty"`

	VideoURL string `json:"video_url,omitempty"`
	LogoURL  string `json:"logo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CaseStudy is a social-proof record shown on funnel pages. Supplied by the
// host application; the rendering engine only reads it.
type CaseStudy struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Quote    string    `json:"quote"`
	Author   string    `json:"author"`
	Company  string    `json:"company,omitempty"`
	Result   string    `json:"result,omitempty"`
	VideoURL string    `json:"video_url,omitempty"`
}
