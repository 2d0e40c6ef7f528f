// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"strings"
	"testing"
)

// TestCSSVariablesCount pins the size of the compiled variable table so an
// accidentally dropped token fails loudly.
func TestCSSVariablesCount(t *testing.T) {
	vars := CSSVariables(Midnight().Config)
	if len(vars) != 65 {
		t.Errorf("variable table has %d entries, want 65", len(vars))
	}
}

// TestCSSVariablesOrderStable verifies two flattenings of the same config
// produce the same names in the same order.
func TestCSSVariablesOrderStable(t *testing.T) {
	first := CSSVariables(Daylight().Config)
	second := CSSVariables(Daylight().Config)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestCSSVariablesUniqueNames guards against two tokens compiling to the
// same custom property.
func TestCSSVariablesUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range CSSVariables(Midnight().Config) {
		if seen[v.Name] {
			t.Errorf("duplicate variable name %s", v.Name)
		}
		seen[v.Name] = true
	}
}

// TestGenerateCSSIdempotent verifies byte-identical output for identical
// (theme, overrides) inputs across repeated calls.
func TestGenerateCSSIdempotent(t *testing.T) {
	th := Midnight()
	o := &Overrides{Colors: &ColorsOverride{Accent: strPtr("#ff00ff")}}

	first := GenerateCSS(th, o)
	second := GenerateCSS(th, o)
	if first != second {
		t.Error("GenerateCSS output differs across identical calls")
	}
}

// TestGenerateCSSScoping checks every rule is scoped under the theme's
// data attribute and the override value lands in the variable table.
func TestGenerateCSSScoping(t *testing.T) {
	th := Daylight()
	css := GenerateCSS(th, &Overrides{Colors: &ColorsOverride{Primary: strPtr("#101010")}})

	scope := fmt.Sprintf("[data-theme=%q]", th.ID.String())
	if !strings.Contains(css, scope+" {") {
		t.Errorf("missing scoped variable block %s", scope)
	}
	if !strings.Contains(css, "--color-primary: #101010;") {
		t.Error("override value not compiled into variable table")
	}
	if !strings.Contains(css, scope+" .glass-card {") {
		t.Error("missing glass-card helper")
	}
	if !strings.Contains(css, scope+" .glass-overlay {") {
		t.Error("missing glass-overlay helper")
	}
	if !strings.Contains(css, "min-height: 100vh;") {
		t.Error("missing full-bleed base rule")
	}
}

// TestGenerateCSSMobileBlock pins the responsive block to exactly the
// eight overridden tokens, each swapped to its mobile counterpart.
func TestGenerateCSSMobileBlock(t *testing.T) {
	th := Midnight()
	css := GenerateCSS(th, nil)

	start := strings.Index(css, "@media (max-width: 768px)")
	if start < 0 {
		t.Fatal("missing mobile breakpoint block")
	}
	end := strings.Index(css[start:], "}\n}")
	if end < 0 {
		t.Fatal("unterminated mobile block")
	}
	block := css[start : start+end]

	wantTokens := map[string]string{
		"--text-hero":     th.Config.Typography.Sizes.Hero.Mobile,
		"--text-h1":       th.Config.Typography.Sizes.H1.Mobile,
		"--text-h2":       th.Config.Typography.Sizes.H2.Mobile,
		"--text-h3":       th.Config.Typography.Sizes.H3.Mobile,
		"--text-body":     th.Config.Typography.Sizes.Body.Mobile,
		"--text-small":    th.Config.Typography.Sizes.Small.Mobile,
		"--space-section": th.Config.Spacing.Section.Mobile,
		"--space-element": th.Config.Spacing.Element.Mobile,
	}
	for name, val := range wantTokens {
		if !strings.Contains(block, fmt.Sprintf("%s: %s;", name, val)) {
			t.Errorf("mobile block missing %s: %s", name, val)
		}
	}
	if got := strings.Count(block, ";"); got != len(wantTokens) {
		t.Errorf("mobile block has %d declarations, want exactly %d", got, len(wantTokens))
	}
}

// TestGenerateCSSKeyframes verifies the three fixed entrance keyframes are
// emitted once per theme block.
func TestGenerateCSSKeyframes(t *testing.T) {
	css := GenerateCSS(Daylight(), nil)

	for _, name := range []string{"fadeIn", "slideUp", "scaleIn"} {
		decl := "@keyframes " + name
		if got := strings.Count(css, decl); got != 1 {
			t.Errorf("%s emitted %d times, want 1", decl, got)
		}
	}
}

// TestGenerateCSSBalancedBraces is a cheap syntactic sanity check on the
// emitted stylesheet.
func TestGenerateCSSBalancedBraces(t *testing.T) {
	css := GenerateCSS(Midnight(), nil)
	if open, closed := strings.Count(css, "{"), strings.Count(css, "}"); open != closed {
		t.Errorf("unbalanced braces: %d open, %d closed", open, closed)
	}
}
