// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"funnelpress/internal/models"
)

var (
	_ FunnelStore        = (*MemoryFunnelStore)(nil)
	_ CustomizationStore = (*MemoryCustomizationStore)(nil)
	_ CaseStudyStore     = (*MemoryCaseStudyStore)(nil)
)

// MemoryFunnelStore is a concurrency-safe in-memory FunnelStore. Records
// are copied on the way in and out so callers never share map state.
type MemoryFunnelStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.Funnel
	slugIDs map[string]uuid.UUID
}

// NewMemoryFunnelStore creates an empty in-memory funnel store.
func NewMemoryFunnelStore() *MemoryFunnelStore {
	return &MemoryFunnelStore{
		byID:    make(map[uuid.UUID]models.Funnel),
		slugIDs: make(map[string]uuid.UUID),
	}
}

// Create stores a new funnel. A zero ID is assigned; slugs must be
// unique.
func (s *MemoryFunnelStore) Create(f *models.Funnel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if _, exists := s.byID[f.ID]; exists {
		return fmt.Errorf("create funnel: id %s already exists", f.ID)
	}
	if other, taken := s.slugIDs[f.Slug]; taken && other != f.ID {
		return fmt.Errorf("create funnel: slug %q already exists", f.Slug)
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	s.byID[f.ID] = cloneFunnel(*f)
	s.slugIDs[f.Slug] = f.ID
	return nil
}

// FindByID retrieves a funnel by id. Returns nil if not found.
func (s *MemoryFunnelStore) FindByID(id uuid.UUID) (*models.Funnel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	out := cloneFunnel(f)
	return &out, nil
}

// FindBySlug retrieves a funnel by its public slug. Returns nil if not
// found.
func (s *MemoryFunnelStore) FindBySlug(slug string) (*models.Funnel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.slugIDs[slug]
	if !ok {
		return nil, nil
	}
	f := cloneFunnel(s.byID[id])
	return &f, nil
}

// List returns all funnels ordered by creation date descending.
func (s *MemoryFunnelStore) List() ([]models.Funnel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Funnel, 0, len(s.byID))
	for _, f := range s.byID {
		items = append(items, cloneFunnel(f))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].Slug < items[j].Slug
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Update replaces a stored funnel and bumps its update timestamp.
func (s *MemoryFunnelStore) Update(f *models.Funnel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.byID[f.ID]
	if !ok {
		return fmt.Errorf("update funnel: id %s not found", f.ID)
	}
	if other, taken := s.slugIDs[f.Slug]; taken && other != f.ID {
		return fmt.Errorf("update funnel: slug %q already exists", f.Slug)
	}
	if old.Slug != f.Slug {
		delete(s.slugIDs, old.Slug)
		s.slugIDs[f.Slug] = f.ID
	}
	f.UpdatedAt = time.Now().UTC()
	s.byID[f.ID] = cloneFunnel(*f)
	return nil
}

// Delete removes a funnel. Deleting an absent id is a no-op.
func (s *MemoryFunnelStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.byID[id]; ok {
		delete(s.slugIDs, f.Slug)
		delete(s.byID, id)
	}
	return nil
}

// cloneFunnel deep-copies the mutable parts of a funnel record.
func cloneFunnel(f models.Funnel) models.Funnel {
	if f.Content != nil {
		content := make(map[string]string, len(f.Content))
		for k, v := range f.Content {
			content[k] = v
		}
		f.Content = content
	}
	if f.ThemeOverrides != nil {
		f.ThemeOverrides = append(json.RawMessage(nil), f.ThemeOverrides...)
	}
	return f
}

// MemoryCustomizationStore is a concurrency-safe in-memory
// CustomizationStore. Documents are round-tripped through JSON on store
// and load, which both deep-copies them and keeps the stored shape
// identical to what a durable backend would hold.
type MemoryCustomizationStore struct {
	mu   sync.RWMutex
	docs map[uuid.UUID][]byte
}

// NewMemoryCustomizationStore creates an empty in-memory customization
// store.
func NewMemoryCustomizationStore() *MemoryCustomizationStore {
	return &MemoryCustomizationStore{docs: make(map[uuid.UUID][]byte)}
}

// Get loads the customization document for a funnel. Returns nil if none
// is stored.
func (s *MemoryCustomizationStore) Get(funnelID uuid.UUID) (*models.CustomizationState, error) {
	s.mu.RLock()
	raw, ok := s.docs[funnelID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	doc := &models.CustomizationState{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode customization for %s: %w", funnelID, err)
	}
	return doc, nil
}

// Save stores the customization document for a funnel, replacing any
// previous version.
func (s *MemoryCustomizationStore) Save(funnelID uuid.UUID, doc *models.CustomizationState) error {
	if doc == nil {
		return fmt.Errorf("save customization for %s: nil document", funnelID)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode customization for %s: %w", funnelID, err)
	}
	s.mu.Lock()
	s.docs[funnelID] = raw
	s.mu.Unlock()
	return nil
}

// Delete removes the stored document. Deleting an absent id is a no-op.
func (s *MemoryCustomizationStore) Delete(funnelID uuid.UUID) error {
	s.mu.Lock()
	delete(s.docs, funnelID)
	s.mu.Unlock()
	return nil
}

// MemoryCaseStudyStore is a concurrency-safe in-memory CaseStudyStore.
type MemoryCaseStudyStore struct {
	mu      sync.RWMutex
	byOwner map[uuid.UUID][]models.CaseStudy
}

// NewMemoryCaseStudyStore creates an empty in-memory case study store.
func NewMemoryCaseStudyStore() *MemoryCaseStudyStore {
	return &MemoryCaseStudyStore{byOwner: make(map[uuid.UUID][]models.CaseStudy)}
}

// ListByFunnel returns the funnel's case studies in insertion order.
func (s *MemoryCaseStudyStore) ListByFunnel(funnelID uuid.UUID) ([]models.CaseStudy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CaseStudy(nil), s.byOwner[funnelID]...), nil
}

// Put inserts a case study, or replaces it in place when the id already
// exists. A zero ID is assigned.
func (s *MemoryCaseStudyStore) Put(funnelID uuid.UUID, cs models.CaseStudy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	list := s.byOwner[funnelID]
	for i := range list {
		if list[i].ID == cs.ID {
			list[i] = cs
			return nil
		}
	}
	s.byOwner[funnelID] = append(list, cs)
	return nil
}

// Delete removes one case study. Absent ids are a no-op.
func (s *MemoryCaseStudyStore) Delete(funnelID, caseStudyID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.byOwner[funnelID]
	for i := range list {
		if list[i].ID == caseStudyID {
			s.byOwner[funnelID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}
