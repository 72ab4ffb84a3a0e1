// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the Category store and its derived
// finders.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// CategoryStore persists categories.
type CategoryStore struct {
	*Store[domain.Category, uint]
}

// NewCategoryStore returns a CategoryStore keyed by id.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{Store: &Store[domain.Category, uint]{KeyColumn: "id"}}
}

// FindByName returns the category with the given name or ErrNotFound.
func (s *CategoryStore) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Category, error) {
	return s.first(ctx, db, "name = ?", name)
}

// FindByActive returns categories whose active flag equals active.
func (s *CategoryStore) FindByActive(ctx context.Context, db *gorm.DB, active bool) ([]domain.Category, error) {
	return s.where(ctx, db, "active = ?", active)
}

// SearchByName returns categories whose name contains term, ignoring case.
func (s *CategoryStore) SearchByName(ctx context.Context, db *gorm.DB, term string) ([]domain.Category, error) {
	return s.containing(ctx, db, "name", term)
}
