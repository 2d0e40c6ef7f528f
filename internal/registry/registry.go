// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package registry declares the editable field schema of each page template
// and resolves field ids to display values. A template's field list is
// closed and versioned with the template id; changing it is a schema
// migration concern for the host application.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// FieldKind categorizes an editable content slot.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldLongText FieldKind = "longText"
	FieldHeading  FieldKind = "heading"
)

// Field is one named, typed editable content slot declared by a template.
type Field struct {
	ID          string    `json:"id"`
	Kind        FieldKind `json:"kind"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder"`
	Section     string    `json:"section"`
}

// Content maps field id to the current value for one funnel.
type Content = map[string]string

// Registry holds the field schemas of all known templates. Schemas are
// registered once at startup and treated as immutable afterwards.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string][]Field
}

// New returns an empty registry. Most callers want Default instead.
func New() *Registry {
	return &Registry{schemas: make(map[string][]Field)}
}

// Register adds a template's field list. Re-registering an id replaces the
// previous list. Returns an error on duplicate field ids inside the list.
func (r *Registry) Register(templateID string, fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.ID] {
			return fmt.Errorf("register template %s: duplicate field id %q", templateID, f.ID)
		}
		seen[f.ID] = true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[templateID] = append([]Field(nil), fields...)
	return nil
}

// Fields returns a copy of the field list for the template id, or nil when
// the template is unknown.
func (r *Registry) Fields(templateID string) []Field {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields, ok := r.schemas[templateID]
	if !ok {
		return nil
	}
	return append([]Field(nil), fields...)
}

// Templates returns the registered template ids, sorted.
func (r *Registry) Templates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.schemas))
	for id := range r.schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FieldValue resolves a field id to its display value: the content value if
// non-empty, else the field's placeholder, else the empty string. Unknown
// field ids degrade to "" — never an error. Rendering must keep working
// when content and schema drift apart.
func FieldValue(fieldID string, content Content, fields []Field) string {
	if v, ok := content[fieldID]; ok && v != "" {
		return v
	}
	for _, f := range fields {
		if f.ID == fieldID {
			return f.Placeholder
		}
	}
	return ""
}

// DefaultContent builds the initial content map for a template, seeding
// every field with its placeholder. Called once, at template selection.
func DefaultContent(fields []Field) Content {
	content := make(Content, len(fields))
	for _, f := range fields {
		content[f.ID] = f.Placeholder
	}
	return content
}
