// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package styles resolves a funnel's lightweight customization selection
// (font group + light/dark mode) into per-role style values used at render
// time. It is independent of the full theme compiler: a funnel can use
// this service without selecting a theme at all.
package styles

import (
	"sort"
	"sync"
)

// DefaultFontGroup is used when a customization names no group or an
// unknown one. Unknown names fall back silently; they are not rejected,
// so stale documents keep rendering.
const DefaultFontGroup = "professional"

// FontGroup maps the four semantic text roles to font-family stacks.
// Every stack ends in a generic fallback.
type FontGroup struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Body       string `json:"body"`
	CTA        string `json:"cta"`
}

// Groups is an injectable font-group catalog. DefaultGroups seeds the
// built-in set; hosts may register more at startup.
type Groups struct {
	mu     sync.RWMutex
	groups map[string]FontGroup
}

// NewGroups returns an empty catalog.
func NewGroups() *Groups {
	return &Groups{groups: make(map[string]FontGroup)}
}

// Register adds or replaces a named group.
func (g *Groups) Register(name string, fg FontGroup) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.groups[name] = fg
}

// Resolve returns the group for name, falling back to DefaultFontGroup
// when the name is empty or unknown.
func (g *Groups) Resolve(name string) FontGroup {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if fg, ok := g.groups[name]; ok {
		return fg
	}
	return g.groups[DefaultFontGroup]
}

// Names returns the registered group names, sorted.
func (g *Groups) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.groups))
	for name := range g.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultGroups returns the built-in font-group catalog.
func DefaultGroups() *Groups {
	g := NewGroups()
	g.Register("professional", FontGroup{
		Heading:    "'Inter', 'Helvetica Neue', Arial, sans-serif",
		Subheading: "'Inter', 'Helvetica Neue', Arial, sans-serif",
		Body:       "'Inter', 'Helvetica Neue', Arial, sans-serif",
		CTA:        "'Inter', 'Helvetica Neue', Arial, sans-serif",
	})
	g.Register("classic", FontGroup{
		Heading:    "'Playfair Display', Georgia, serif",
		Subheading: "'Playfair Display', Georgia, serif",
		Body:       "'Lora', Georgia, serif",
		CTA:        "'Lato', 'Helvetica Neue', sans-serif",
	})
	g.Register("modern", FontGroup{
		Heading:    "'Space Grotesk', 'Helvetica Neue', sans-serif",
		Subheading: "'Space Grotesk', 'Helvetica Neue', sans-serif",
		Body:       "'Work Sans', 'Helvetica Neue', sans-serif",
		CTA:        "'Space Grotesk', 'Helvetica Neue', sans-serif",
	})
	g.Register("elegant", FontGroup{
		Heading:    "'Cormorant Garamond', Georgia, serif",
		Subheading: "'Montserrat', 'Helvetica Neue', sans-serif",
		Body:       "'Montserrat', 'Helvetica Neue', sans-serif",
		CTA:        "'Montserrat', 'Helvetica Neue', sans-serif",
	})
	return g
}
