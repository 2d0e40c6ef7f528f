// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Catalog is an injectable theme registry. The built-in themes are seeded
// by DefaultCatalog; hosts register additional themes at startup so new
// looks ship without touching the compiler.
type Catalog struct {
	mu     sync.RWMutex
	themes map[uuid.UUID]Theme
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{themes: make(map[uuid.UUID]Theme)}
}

// Register adds or replaces a theme. Themes with a zero ID are rejected.
func (c *Catalog) Register(t Theme) error {
	if t.ID == uuid.Nil {
		return fmt.Errorf("register theme %q: missing id", t.Name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.themes[t.ID] = t
	return nil
}

// Get returns the theme with the given id. The bool is false when unknown.
func (c *Catalog) Get(id uuid.UUID) (Theme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.themes[id]
	return t, ok
}

// Default returns the theme marked is_default, falling back to any theme
// when none is marked. The bool is false only for an empty catalog.
func (c *Catalog) Default() (Theme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var fallback *Theme
	for _, t := range c.themes {
		if t.IsDefault {
			return t, true
		}
		if fallback == nil {
			tt := t
			fallback = &tt
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Theme{}, false
}

// List returns all registered themes sorted by name.
func (c *Catalog) List() []Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Theme, 0, len(c.themes))
	for _, t := range c.themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Built-in theme ids are fixed so funnels referencing them stay stable
// across restarts.
var (
	MidnightID = uuid.MustParse("5f1c3a52-9f6e-4b0a-8a3d-3a1d2c4e6f80")
	DaylightID = uuid.MustParse("a7d9e1b4-2c35-47f8-9d60-1b8e5a7c9d21")
)

// DefaultCatalog returns a catalog seeded with the built-in themes.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	_ = c.Register(Midnight())
	_ = c.Register(Daylight())
	return c
}

// Midnight is the default dark theme: deep navy surfaces with a violet
// accent and glassy cards.
func Midnight() Theme {
	return Theme{
		ID:        MidnightID,
		Name:      "Midnight",
		IsDefault: true,
		IsPublic:  true,
		Tags:      []string{"dark", "glass"},
		Config: Config{
			Colors: Colors{
				Primary:   "#8b5cf6",
				Secondary: "#6366f1",
				Accent:    "#22d3ee",
				Background: Background{
					Main:    "#0b1020",
					Alt:     "#111a33",
					Overlay: "rgba(11, 16, 32, 0.7)",
				},
				Text: TextColors{
					Primary:   "#f8fafc",
					Secondary: "#cbd5e1",
					Muted:     "#64748b",
					Inverse:   "#0b1020",
				},
				Border: "rgba(148, 163, 184, 0.2)",
				Shadow: "rgba(2, 6, 23, 0.6)",
			},
			Typography: Typography{
				Fonts: Fonts{
					Heading: "'Inter', 'Helvetica Neue', Arial, sans-serif",
					Body:    "'Inter', 'Helvetica Neue', Arial, sans-serif",
					Accent:  "'JetBrains Mono', 'Courier New', monospace",
				},
				Sizes: TypeSizes{
					Hero:  SizePair{Desktop: "64px", Mobile: "40px"},
					H1:    SizePair{Desktop: "48px", Mobile: "32px"},
					H2:    SizePair{Desktop: "36px", Mobile: "28px"},
					H3:    SizePair{Desktop: "28px", Mobile: "22px"},
					Body:  SizePair{Desktop: "18px", Mobile: "16px"},
					Small: SizePair{Desktop: "14px", Mobile: "13px"},
				},
				Weights: Weights{
					Light: "300", Normal: "400", Medium: "500", Semibold: "600", Bold: "700",
				},
				LineHeights: LineHeights{Tight: "1.2", Normal: "1.5", Relaxed: "1.7"},
			},
			Spacing: Spacing{
				Section: SizePair{Desktop: "96px", Mobile: "56px"},
				Element: SizePair{Desktop: "32px", Mobile: "20px"},
				Tight:   "8px",
				Normal:  "16px",
				Loose:   "32px",
			},
			Animations: Animations{
				Entrances: Entrances{
					FadeIn:  "fadeIn 0.6s ease-out both",
					SlideUp: "slideUp 0.6s ease-out both",
					ScaleIn: "scaleIn 0.4s ease-out both",
				},
				Hover: Hover{
					Lift:  "translateY(-4px)",
					Glow:  "0 0 24px rgba(139, 92, 246, 0.45)",
					Scale: "scale(1.03)",
				},
				Transitions: Transitions{
					Fast: "150ms", Normal: "250ms", Slow: "400ms",
					Easing: "cubic-bezier(0.4, 0, 0.2, 1)",
				},
			},
			Borders: Borders{
				Radius: Radii{None: "0", Small: "6px", Medium: "12px", Large: "20px", Full: "9999px"},
				Width:  "1px",
			},
			Shadows: Shadows{
				None:   "none",
				Small:  "0 1px 2px rgba(2, 6, 23, 0.4)",
				Medium: "0 8px 24px rgba(2, 6, 23, 0.5)",
				Large:  "0 24px 64px rgba(2, 6, 23, 0.6)",
				Glow:   "0 0 40px rgba(139, 92, 246, 0.35)",
			},
			Effects: Effects{Blur: "16px", Opacity: "0.85"},
		},
	}
}

// Daylight is the light counterpart: warm white surfaces with an indigo
// accent.
func Daylight() Theme {
	return Theme{
		ID:       DaylightID,
		Name:     "Daylight",
		IsPublic: true,
		Tags:     []string{"light", "clean"},
		Config: Config{
			Colors: Colors{
				Primary:   "#4f46e5",
				Secondary: "#7c3aed",
				Accent:    "#0891b2",
				Background: Background{
					Main:    "#fafaf9",
					Alt:     "#f1f5f9",
					Overlay: "rgba(250, 250, 249, 0.8)",
				},
				Text: TextColors{
					Primary:   "#0f172a",
					Secondary: "#334155",
					Muted:     "#94a3b8",
					Inverse:   "#fafaf9",
				},
				Border: "rgba(15, 23, 42, 0.12)",
				Shadow: "rgba(15, 23, 42, 0.16)",
			},
			Typography: Typography{
				Fonts: Fonts{
					Heading: "'Sora', 'Helvetica Neue', Arial, sans-serif",
					Body:    "'Inter', 'Helvetica Neue', Arial, sans-serif",
					Accent:  "'JetBrains Mono', 'Courier New', monospace",
				},
				Sizes: TypeSizes{
					Hero:  SizePair{Desktop: "60px", Mobile: "38px"},
					H1:    SizePair{Desktop: "44px", Mobile: "30px"},
					H2:    SizePair{Desktop: "34px", Mobile: "26px"},
					H3:    SizePair{Desktop: "26px", Mobile: "21px"},
					Body:  SizePair{Desktop: "18px", Mobile: "16px"},
					Small: SizePair{Desktop: "14px", Mobile: "13px"},
				},
				Weights: Weights{
					Light: "300", Normal: "400", Medium: "500", Semibold: "600", Bold: "700",
				},
				LineHeights: LineHeights{Tight: "1.2", Normal: "1.5", Relaxed: "1.7"},
			},
			Spacing: Spacing{
				Section: SizePair{Desktop: "88px", Mobile: "52px"},
				Element: SizePair{Desktop: "28px", Mobile: "18px"},
				Tight:   "8px",
				Normal:  "16px",
				Loose:   "32px",
			},
			Animations: Animations{
				Entrances: Entrances{
					FadeIn:  "fadeIn 0.5s ease-out both",
					SlideUp: "slideUp 0.5s ease-out both",
					ScaleIn: "scaleIn 0.35s ease-out both",
				},
				Hover: Hover{
					Lift:  "translateY(-3px)",
					Glow:  "0 0 20px rgba(79, 70, 229, 0.3)",
					Scale: "scale(1.02)",
				},
				Transitions: Transitions{
					Fast: "150ms", Normal: "250ms", Slow: "400ms",
					Easing: "cubic-bezier(0.4, 0, 0.2, 1)",
				},
			},
			Borders: Borders{
				Radius: Radii{None: "0", Small: "6px", Medium: "10px", Large: "18px", Full: "9999px"},
				Width:  "1px",
			},
			Shadows: Shadows{
				None:   "none",
				Small:  "0 1px 2px rgba(15, 23, 42, 0.08)",
				Medium: "0 6px 20px rgba(15, 23, 42, 0.1)",
				Large:  "0 20px 48px rgba(15, 23, 42, 0.14)",
				Glow:   "0 0 32px rgba(79, 70, 229, 0.25)",
			},
			Effects: Effects{Blur: "12px", Opacity: "0.9"},
		},
	}
}
