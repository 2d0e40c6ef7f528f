// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package styles

import (
	"fmt"

	"funnelpress/internal/models"
)

// Role is one of the four semantic text roles a funnel page styles.
type Role string

const (
	RoleHeading    Role = "heading"
	RoleSubheading Role = "subheading"
	RoleBody       Role = "body"
	RoleCTA        Role = "cta"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleHeading, RoleSubheading, RoleBody, RoleCTA:
		return true
	}
	return false
}

// FunnelStyles is the resolved style selection for one funnel: a font
// stack per role plus the two-tone background/text pair.
type FunnelStyles struct {
	Fonts      FontGroup `json:"fonts"`
	Background string    `json:"background"`
	Text       string    `json:"text"`
}

// Two-tone palette for the light/dark flag. This service is deliberately
// not themeable beyond that flag; full palettes belong to the theme
// compiler.
const (
	lightBackground = "#ffffff"
	lightText       = "#111827"
	darkBackground  = "#0a0a0a"
	darkText        = "#f9fafb"
	ctaText         = "#ffffff"
)

// Resolve maps a customization document to concrete funnel styles. A nil
// document yields the defaults (professional group, light mode).
func (g *Groups) ResolveFunnelStyles(c *models.CustomizationState) FunnelStyles {
	name := ""
	dark := false
	if c != nil {
		name = c.FontGroup
		dark = c.ThemeMode == models.ThemeModeDark
	}

	fs := FunnelStyles{
		Fonts:      g.Resolve(name),
		Background: lightBackground,
		Text:       lightText,
	}
	if dark {
		fs.Background = darkBackground
		fs.Text = darkText
	}
	return fs
}

// roleWeights is the fixed per-role font-weight / line-height table.
var roleWeights = map[Role]struct {
	weight     string
	lineHeight string
}{
	RoleHeading:    {"700", "1.2"},
	RoleSubheading: {"600", "1.4"},
	RoleBody:       {"400", "1.6"},
	RoleCTA:        {"600", "1.2"},
}

// TextElementStyle builds the inline style values for one text role:
// font family and color from the resolved funnel styles (cta text is
// always white), weight and line-height from the fixed table, and caller
// overrides applied last so they win over everything. Unknown roles are
// rejected; silently producing half-empty styles for a typo'd role has
// bitten us before.
func TextElementStyle(role Role, fs FunnelStyles, overrides map[string]string) (map[string]string, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown text role %q", role)
	}

	family := fs.Fonts.Body
	color := fs.Text
	switch role {
	case RoleHeading:
		family = fs.Fonts.Heading
	case RoleSubheading:
		family = fs.Fonts.Subheading
	case RoleCTA:
		family = fs.Fonts.CTA
		color = ctaText
	}

	rw := roleWeights[role]
	style := map[string]string{
		"fontFamily": family,
		"color":      color,
		"fontWeight": rw.weight,
		"lineHeight": rw.lineHeight,
	}
	for k, v := range overrides {
		style[k] = v
	}
	return style, nil
}
