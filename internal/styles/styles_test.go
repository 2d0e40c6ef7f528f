// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package styles

import (
	"strings"
	"testing"

	"funnelpress/internal/models"
)

// TestResolveFunnelStyles covers font-group selection and the light/dark
// two-tone pair.
func TestResolveFunnelStyles(t *testing.T) {
	g := DefaultGroups()

	tests := []struct {
		name        string
		doc         *models.CustomizationState
		wantHeading string // substring of the heading stack
		wantBg      string
	}{
		{
			name:        "nil document uses defaults",
			doc:         nil,
			wantHeading: "Inter",
			wantBg:      "#ffffff",
		},
		{
			name:        "classic group",
			doc:         &models.CustomizationState{FontGroup: "classic"},
			wantHeading: "Playfair Display",
			wantBg:      "#ffffff",
		},
		{
			name:        "unknown group falls back silently",
			doc:         &models.CustomizationState{FontGroup: "comic-sans-deluxe"},
			wantHeading: "Inter",
			wantBg:      "#ffffff",
		},
		{
			name:        "dark mode",
			doc:         &models.CustomizationState{ThemeMode: models.ThemeModeDark},
			wantHeading: "Inter",
			wantBg:      "#0a0a0a",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := g.ResolveFunnelStyles(tc.doc)
			if !strings.Contains(fs.Fonts.Heading, tc.wantHeading) {
				t.Errorf("heading stack %q does not contain %q", fs.Fonts.Heading, tc.wantHeading)
			}
			if fs.Background != tc.wantBg {
				t.Errorf("background = %q, want %q", fs.Background, tc.wantBg)
			}
		})
	}
}

// TestTextElementStyleTable pins the fixed per-role weight/line-height
// table and the role-appropriate colors.
func TestTextElementStyleTable(t *testing.T) {
	g := DefaultGroups()
	fs := g.ResolveFunnelStyles(&models.CustomizationState{FontGroup: "classic"})

	tests := []struct {
		role       Role
		weight     string
		lineHeight string
		color      string
	}{
		{RoleHeading, "700", "1.2", fs.Text},
		{RoleSubheading, "600", "1.4", fs.Text},
		{RoleBody, "400", "1.6", fs.Text},
		{RoleCTA, "600", "1.2", "#ffffff"},
	}

	for _, tc := range tests {
		t.Run(string(tc.role), func(t *testing.T) {
			style, err := TextElementStyle(tc.role, fs, nil)
			if err != nil {
				t.Fatalf("TextElementStyle(%s): %v", tc.role, err)
			}
			if style["fontWeight"] != tc.weight {
				t.Errorf("fontWeight = %q, want %q", style["fontWeight"], tc.weight)
			}
			if style["lineHeight"] != tc.lineHeight {
				t.Errorf("lineHeight = %q, want %q", style["lineHeight"], tc.lineHeight)
			}
			if style["color"] != tc.color {
				t.Errorf("color = %q, want %q", style["color"], tc.color)
			}
		})
	}
}

// TestTextElementStyleClassicHeadingFont verifies the end-to-end font-group
// scenario: classic -> heading family contains Playfair Display.
func TestTextElementStyleClassicHeadingFont(t *testing.T) {
	g := DefaultGroups()
	fs := g.ResolveFunnelStyles(&models.CustomizationState{FontGroup: "classic"})

	style, err := TextElementStyle(RoleHeading, fs, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(style["fontFamily"], "Playfair Display") {
		t.Errorf("fontFamily = %q, want it to contain Playfair Display", style["fontFamily"])
	}
}

// TestTextElementStyleOverridesWin verifies caller overrides are applied
// last, over both base values and the fixed table.
func TestTextElementStyleOverridesWin(t *testing.T) {
	fs := DefaultGroups().ResolveFunnelStyles(nil)

	style, err := TextElementStyle(RoleCTA, fs, map[string]string{
		"color":      "#123456",
		"fontWeight": "900",
		"fontSize":   "22px",
	})
	if err != nil {
		t.Fatal(err)
	}
	if style["color"] != "#123456" {
		t.Errorf("color = %q, want override #123456", style["color"])
	}
	if style["fontWeight"] != "900" {
		t.Errorf("fontWeight = %q, want override 900", style["fontWeight"])
	}
	if style["fontSize"] != "22px" {
		t.Errorf("fontSize = %q, want 22px", style["fontSize"])
	}
}

// TestTextElementStyleUnknownRole verifies unknown roles are rejected
// instead of producing undefined weight/line-height.
func TestTextElementStyleUnknownRole(t *testing.T) {
	fs := DefaultGroups().ResolveFunnelStyles(nil)
	if _, err := TextElementStyle("banner", fs, nil); err == nil {
		t.Error("expected error for unknown role, got nil")
	}
}
