// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store defines the persistence boundary of the engine. The
// engine itself is storage-agnostic: hosts hand it implementations of
// these interfaces and keep ownership of durability, migration and
// multi-tenancy concerns. The in-memory implementations in this package
// back the standalone preview server and the test suites.
package store

import (
	"github.com/google/uuid"

	"funnelpress/internal/models"
)

// FunnelStore persists funnels. Find methods return (nil, nil) when the
// record does not exist.
type FunnelStore interface {
	Create(f *models.Funnel) error
	FindByID(id uuid.UUID) (*models.Funnel, error)
	FindBySlug(slug string) (*models.Funnel, error)
	List() ([]models.Funnel, error)
	Update(f *models.Funnel) error
	Delete(id uuid.UUID) error
}

// CustomizationStore persists the per-funnel customization document.
// Get returns (nil, nil) when the funnel has no stored document yet;
// callers fall back to a fresh default document.
type CustomizationStore interface {
	Get(funnelID uuid.UUID) (*models.CustomizationState, error)
	Save(funnelID uuid.UUID, doc *models.CustomizationState) error
	Delete(funnelID uuid.UUID) error
}

// CaseStudyStore persists the social-proof records shown in proof
// sections.
type CaseStudyStore interface {
	ListByFunnel(funnelID uuid.UUID) ([]models.CaseStudy, error)
	Put(funnelID uuid.UUID, cs models.CaseStudy) error
	Delete(funnelID, caseStudyID uuid.UUID) error
}
