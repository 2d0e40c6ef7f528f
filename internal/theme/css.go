// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"strings"
)

// Variable is one named custom property in the compiled style table.
type Variable struct {
	Name  string
	Value string
}

// mobileBreakpoint is the single responsive cutoff of the compiler.
const mobileBreakpoint = "768px"

// CSSVariables flattens a configuration into the ordered custom-property
// table the stylesheet is built from. Order is fixed so compilation is
// deterministic and output can be compared byte-for-byte.
func CSSVariables(cfg Config) []Variable {
	c, t, s := cfg.Colors, cfg.Typography, cfg.Spacing
	a, b, sh, e := cfg.Animations, cfg.Borders, cfg.Shadows, cfg.Effects

	return []Variable{
		{"--color-primary", c.Primary},
		{"--color-secondary", c.Secondary},
		{"--color-accent", c.Accent},
		{"--color-bg-main", c.Background.Main},
		{"--color-bg-alt", c.Background.Alt},
		{"--color-bg-overlay", c.Background.Overlay},
		{"--color-text-primary", c.Text.Primary},
		{"--color-text-secondary", c.Text.Secondary},
		{"--color-text-muted", c.Text.Muted},
		{"--color-text-inverse", c.Text.Inverse},
		{"--color-border", c.Border},
		{"--color-shadow", c.Shadow},

		{"--font-heading", t.Fonts.Heading},
		{"--font-body", t.Fonts.Body},
		{"--font-accent", t.Fonts.Accent},

		{"--text-hero", t.Sizes.Hero.Desktop},
		{"--text-hero-mobile", t.Sizes.Hero.Mobile},
		{"--text-h1", t.Sizes.H1.Desktop},
		{"--text-h1-mobile", t.Sizes.H1.Mobile},
		{"--text-h2", t.Sizes.H2.Desktop},
		{"--text-h2-mobile", t.Sizes.H2.Mobile},
		{"--text-h3", t.Sizes.H3.Desktop},
		{"--text-h3-mobile", t.Sizes.H3.Mobile},
		{"--text-body", t.Sizes.Body.Desktop},
		{"--text-body-mobile", t.Sizes.Body.Mobile},
		{"--text-small", t.Sizes.Small.Desktop},
		{"--text-small-mobile", t.Sizes.Small.Mobile},

		{"--weight-light", t.Weights.Light},
		{"--weight-normal", t.Weights.Normal},
		{"--weight-medium", t.Weights.Medium},
		{"--weight-semibold", t.Weights.Semibold},
		{"--weight-bold", t.Weights.Bold},

		{"--leading-tight", t.LineHeights.Tight},
		{"--leading-normal", t.LineHeights.Normal},
		{"--leading-relaxed", t.LineHeights.Relaxed},

		{"--space-section", s.Section.Desktop},
		{"--space-section-mobile", s.Section.Mobile},
		{"--space-element", s.Element.Desktop},
		{"--space-element-mobile", s.Element.Mobile},
		{"--space-tight", s.Tight},
		{"--space-normal", s.Normal},
		{"--space-loose", s.Loose},

		{"--animate-fade-in", a.Entrances.FadeIn},
		{"--animate-slide-up", a.Entrances.SlideUp},
		{"--animate-scale-in", a.Entrances.ScaleIn},
		{"--hover-lift", a.Hover.Lift},
		{"--hover-glow", a.Hover.Glow},
		{"--hover-scale", a.Hover.Scale},
		{"--transition-fast", a.Transitions.Fast},
		{"--transition-normal", a.Transitions.Normal},
		{"--transition-slow", a.Transitions.Slow},
		{"--easing", a.Transitions.Easing},

		{"--radius-none", b.Radius.None},
		{"--radius-sm", b.Radius.Small},
		{"--radius-md", b.Radius.Medium},
		{"--radius-lg", b.Radius.Large},
		{"--radius-full", b.Radius.Full},
		{"--border-width", b.Width},

		{"--shadow-none", sh.None},
		{"--shadow-sm", sh.Small},
		{"--shadow-md", sh.Medium},
		{"--shadow-lg", sh.Large},
		{"--shadow-glow", sh.Glow},

		{"--blur", e.Blur},
		{"--opacity", e.Opacity},
	}
}

// GenerateCSS compiles a theme (with optional per-funnel overrides) into a
// self-contained stylesheet. All rules are scoped under a [data-theme]
// attribute selector keyed by the theme id, so several themes can coexist
// in one document. The three entrance @keyframes are emitted once per
// theme block and are NOT namespaced by theme id — emitting the same theme
// twice in one document produces duplicate keyframe names (known, tracked
// for a future compiler revision).
func GenerateCSS(t Theme, overrides *Overrides) string {
	cfg := Merge(t.Config, overrides)
	scope := fmt.Sprintf("[data-theme=%q]", t.ID.String())

	var b strings.Builder

	// Variable table.
	b.WriteString(scope)
	b.WriteString(" {\n")
	for _, v := range CSSVariables(cfg) {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n\n")

	// Base surface: main background, full-bleed height.
	fmt.Fprintf(&b, `%s {
  background-color: var(--color-bg-main);
  min-height: 100vh;
}

`, scope)

	// Glass helpers built from the variable table.
	fmt.Fprintf(&b, `%[1]s .glass-card {
  background-color: var(--color-bg-overlay);
  backdrop-filter: blur(var(--blur));
  -webkit-backdrop-filter: blur(var(--blur));
  border: var(--border-width) solid var(--color-border);
  border-radius: var(--radius-lg);
  box-shadow: var(--shadow-md);
}

%[1]s .glass-overlay {
  background-color: var(--color-bg-overlay);
  backdrop-filter: blur(var(--blur));
  -webkit-backdrop-filter: blur(var(--blur));
  opacity: var(--opacity);
}

`, scope)

	// Typographic cascade: heading/body/accent stacks with forced colors.
	fmt.Fprintf(&b, `%[1]s h1, %[1]s h2, %[1]s h3, %[1]s h4, %[1]s h5, %[1]s h6 {
  font-family: var(--font-heading);
  color: var(--color-text-primary);
}

%[1]s p, %[1]s li, %[1]s span, %[1]s a, %[1]s button {
  font-family: var(--font-body);
  color: var(--color-text-secondary);
}

%[1]s code, %[1]s pre, %[1]s kbd {
  font-family: var(--font-accent);
}

`, scope)

	// Mobile breakpoint: exactly eight tokens swap to their mobile
	// counterparts. Everything else is considered acceptable unscaled.
	fmt.Fprintf(&b, `@media (max-width: %s) {
  %s {
    --text-hero: %s;
    --text-h1: %s;
    --text-h2: %s;
    --text-h3: %s;
    --text-body: %s;
    --text-small: %s;
    --space-section: %s;
    --space-element: %s;
  }
}

`, mobileBreakpoint, scope,
		cfg.Typography.Sizes.Hero.Mobile,
		cfg.Typography.Sizes.H1.Mobile,
		cfg.Typography.Sizes.H2.Mobile,
		cfg.Typography.Sizes.H3.Mobile,
		cfg.Typography.Sizes.Body.Mobile,
		cfg.Typography.Sizes.Small.Mobile,
		cfg.Spacing.Section.Mobile,
		cfg.Spacing.Element.Mobile,
	)

	// Entrance keyframes, emitted regardless of whether the theme's
	// components reference them.
	b.WriteString(`@keyframes fadeIn {
  from { opacity: 0; }
  to { opacity: 1; }
}

@keyframes slideUp {
  from { opacity: 0; transform: translateY(24px); }
  to { opacity: 1; transform: translateY(0); }
}

@keyframes scaleIn {
  from { opacity: 0; transform: scale(0.94); }
  to { opacity: 1; transform: scale(1); }
}
`)

	return b.String()
}
