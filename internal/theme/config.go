// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme defines the design-token configuration model for funnel
// pages, the per-funnel override merge, and the compiler that turns a
// configuration into a scoped stylesheet.
package theme

import (
	"time"

	"github.com/google/uuid"
)

// Config is the complete design-token set of one theme, grouped into seven
// categories. The JSON encoding is the persisted wire shape.
type Config struct {
	Colors     Colors     `json:"colors"`
	Typography Typography `json:"typography"`
	Spacing    Spacing    `json:"spacing"`
	Animations Animations `json:"animations"`
	Borders    Borders    `json:"borders"`
	Shadows    Shadows    `json:"shadows"`
	Effects    Effects    `json:"effects"`
}

// Colors holds the theme palette.
type Colors struct {
	Primary    string     `json:"primary" validate:"omitempty,hexcolor"`
	Secondary  string     `json:"secondary" validate:"omitempty,hexcolor"`
	Accent     string     `json:"accent" validate:"omitempty,hexcolor"`
	Background Background `json:"background"`
	Text       TextColors `json:"text"`
	Border     string     `json:"border"`
	Shadow     string     `json:"shadow"`
}

// Background holds the three background surfaces of a page.
type Background struct {
	Main    string `json:"main"`
	Alt     string `json:"alt"`
	Overlay string `json:"overlay"`
}

// TextColors holds the four text tones.
type TextColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Muted     string `json:"muted"`
	Inverse   string `json:"inverse"`
}

// SizePair is a desktop/mobile token pair. Values are CSS lengths.
type SizePair struct {
	Desktop string `json:"desktop"`
	Mobile  string `json:"mobile"`
}

// Typography holds font stacks, the responsive type scale, weights and
// line heights.
type Typography struct {
	Fonts       Fonts       `json:"fonts"`
	Sizes       TypeSizes   `json:"sizes"`
	Weights     Weights     `json:"weights"`
	LineHeights LineHeights `json:"lineHeights"`
}

// Fonts holds the three font-family stacks of a theme.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Accent  string `json:"accent"`
}

// TypeSizes is the six-step type scale, each step a desktop/mobile pair.
type TypeSizes struct {
	Hero  SizePair `json:"hero"`
	H1    SizePair `json:"h1"`
	H2    SizePair `json:"h2"`
	H3    SizePair `json:"h3"`
	Body  SizePair `json:"body"`
	Small SizePair `json:"small"`
}

// Weights holds the five font weights as CSS values.
type Weights struct {
	Light    string `json:"light"`
	Normal   string `json:"normal"`
	Medium   string `json:"medium"`
	Semibold string `json:"semibold"`
	Bold     string `json:"bold"`
}

// LineHeights holds the three line-height steps.
type LineHeights struct {
	Tight   string `json:"tight"`
	Normal  string `json:"normal"`
	Relaxed string `json:"relaxed"`
}

// Spacing holds the section/element responsive pairs plus three fixed steps.
type Spacing struct {
	Section SizePair `json:"section"`
	Element SizePair `json:"element"`
	Tight   string   `json:"tight"`
	Normal  string   `json:"normal"`
	Loose   string   `json:"loose"`
}

// Animations holds entrance, hover and transition tokens.
type Animations struct {
	Entrances   Entrances   `json:"entrances"`
	Hover       Hover       `json:"hover"`
	Transitions Transitions `json:"transitions"`
}

// Entrances are CSS animation shorthands for the three fixed keyframe sets.
type Entrances struct {
	FadeIn  string `json:"fadeIn"`
	SlideUp string `json:"slideUp"`
	ScaleIn string `json:"scaleIn"`
}

// Hover are CSS declarations applied by hover-effect helper classes.
type Hover struct {
	Lift  string `json:"lift"`
	Glow  string `json:"glow"`
	Scale string `json:"scale"`
}

// Transitions are timing tokens plus the shared easing function.
type Transitions struct {
	Fast   string `json:"fast"`
	Normal string `json:"normal"`
	Slow   string `json:"slow"`
	Easing string `json:"easing"`
}

// Borders holds the radius scale and the single border width token.
type Borders struct {
	Radius Radii  `json:"radius"`
	Width  string `json:"width"`
}

// Radii is the five-step border radius scale.
type Radii struct {
	None   string `json:"none"`
	Small  string `json:"sm"`
	Medium string `json:"md"`
	Large  string `json:"lg"`
	Full   string `json:"full"`
}

// Shadows is the five-step elevation scale.
type Shadows struct {
	None   string `json:"none"`
	Small  string `json:"sm"`
	Medium string `json:"md"`
	Large  string `json:"lg"`
	Glow   string `json:"glow"`
}

// Effects holds the remaining visual tokens.
type Effects struct {
	Blur    string `json:"blur"`
	Opacity string `json:"opacity"`
}

// Theme is a named token bundle. A funnel selects one theme; the theme
// itself is immutable once fetched, only its per-funnel overrides vary.
type Theme struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Config    Config    `json:"config"`
	IsDefault bool      `json:"is_default"`
	IsPublic  bool      `json:"is_public"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
