// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug normalizes arbitrary names — funnel titles, template
// component names — into stable URL- and id-friendly slugs.
package slug

import (
	"regexp"
	"strings"
)

var (
	// camelBoundary finds lower-to-upper transitions in camelCase names.
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a slug from the given string. camelCase boundaries
// become hyphens so template component names slug cleanly.
// Example: "heroHeading" -> "hero-heading", "Hello, World! 2026" -> "hello-world-2026"
func Generate(s string) string {
	result := camelBoundary.ReplaceAllString(strings.TrimSpace(s), "$1-$2")
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
