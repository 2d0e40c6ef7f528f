// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ThemeMode selects the two-tone light or dark rendering of a funnel page.
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// Default sizing applied when a customization document has no stored value
// for an element yet.
const (
	DefaultLogoHeight     = 48.0
	DefaultButtonScale    = 100.0
	DefaultSpacerHeight   = 48.0
	DefaultHeadingSize    = 48.0
	DefaultSubheadingSize = 24.0
	DefaultBodySize       = 18.0
	DefaultCTASize        = 18.0
)

// CustomizationState is the persisted customization document for one funnel
// page: every operator-adjustable size, spacing, theme and text value,
// round-tripped as JSON to and from the host application's store. The
// rendering engine treats it as the single source of truth and never talks
// to storage itself.
type CustomizationState struct {
	TextSizes        ViewportSizes            `json:"textSizes"`
	ButtonSizes      ViewportSizes            `json:"buttonSizes"`
	LogoSize         ViewportValue            `json:"logoSize"`
	UniversalSpacers map[string]ViewportValue `json:"universalSpacers"`

	FontGroup string    `json:"fontGroup" validate:"omitempty,max=64"`
	ThemeMode ThemeMode `json:"themeMode" validate:"omitempty,oneof=light dark"`

	// Free-form page text that lives outside the template field schema
	// (footer line, section headings, CTA label and similar).
	PageText map[string]string `json:"pageText,omitempty"`
}

// NewCustomizationState returns a document with empty per-viewport maps and
// the default logo height on both viewports.
func NewCustomizationState() *CustomizationState {
	return &CustomizationState{
		UniversalSpacers: make(map[string]ViewportValue),
		LogoSize:         ViewportValue{Desktop: DefaultLogoHeight, Mobile: DefaultLogoHeight},
		FontGroup:        "professional",
		ThemeMode:        ThemeModeLight,
		PageText:         make(map[string]string),
	}
}

// SpacerHeight returns the stored spacer height for (spacerID, viewport),
// or the given default when the operator has never dragged that spacer.
func (c *CustomizationState) SpacerHeight(spacerID string, v Viewport, def float64) float64 {
	if c == nil || c.UniversalSpacers == nil {
		return def
	}
	pair, ok := c.UniversalSpacers[spacerID]
	if !ok {
		return def
	}
	return pair.For(v)
}

// SetSpacerHeight stores a spacer height for one viewport. On first write
// the entry is lazily created with the default on the untouched viewport,
// so that a later save persists a sensible pair.
func (c *CustomizationState) SetSpacerHeight(spacerID string, v Viewport, value, def float64) {
	if c.UniversalSpacers == nil {
		c.UniversalSpacers = make(map[string]ViewportValue)
	}
	pair, ok := c.UniversalSpacers[spacerID]
	if !ok {
		pair = ViewportValue{Desktop: def, Mobile: def}
	}
	c.UniversalSpacers[spacerID] = pair.With(v, value)
}
