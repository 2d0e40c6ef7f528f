// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Viewport identifies which device class a size or spacing value belongs to.
// Desktop and mobile state is always stored independently; there is no
// conversion factor between the two.
type Viewport string

const (
	ViewportDesktop Viewport = "desktop"
	ViewportMobile  Viewport = "mobile"
)

// Valid reports whether v is one of the two known viewports.
func (v Viewport) Valid() bool {
	return v == ViewportDesktop || v == ViewportMobile
}

// ViewportValue holds one numeric value per viewport (pixels).
type ViewportValue struct {
	Desktop float64 `json:"desktop"`
	Mobile  float64 `json:"mobile"`
}

// For returns the value stored for the given viewport.
func (p ViewportValue) For(v Viewport) float64 {
	if v == ViewportMobile {
		return p.Mobile
	}
	return p.Desktop
}

// With returns a copy of p with the given viewport's value replaced.
// The other viewport's value is carried over unchanged.
func (p ViewportValue) With(v Viewport, value float64) ViewportValue {
	if v == ViewportMobile {
		p.Mobile = value
	} else {
		p.Desktop = value
	}
	return p
}

// ViewportSizes maps element identifiers to a numeric size, kept separately
// per viewport. Used for per-field text sizes and CTA button scale.
type ViewportSizes struct {
	Desktop map[string]float64 `json:"desktop"`
	Mobile  map[string]float64 `json:"mobile"`
}

// Get returns the stored size for (id, viewport). The second return value
// is false when no size has been stored yet.
func (s ViewportSizes) Get(v Viewport, id string) (float64, bool) {
	m := s.Desktop
	if v == ViewportMobile {
		m = s.Mobile
	}
	if m == nil {
		return 0, false
	}
	val, ok := m[id]
	return val, ok
}

// Set stores a size for (id, viewport), allocating the per-viewport map on
// first use. The other viewport's map is never touched.
func (s *ViewportSizes) Set(v Viewport, id string, value float64) {
	if v == ViewportMobile {
		if s.Mobile == nil {
			s.Mobile = make(map[string]float64)
		}
		s.Mobile[id] = value
		return
	}
	if s.Desktop == nil {
		s.Desktop = make(map[string]float64)
	}
	s.Desktop[id] = value
}
