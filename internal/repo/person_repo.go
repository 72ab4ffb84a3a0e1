// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the Person store, keyed by the natural
// CIN key, and its derived finders.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// PersonStore persists persons.
type PersonStore struct {
	*Store[domain.Person, string]
}

// NewPersonStore returns a PersonStore keyed by cin.
func NewPersonStore() *PersonStore {
	return &PersonStore{Store: &Store[domain.Person, string]{KeyColumn: "cin"}}
}

// FindByEmail returns the person with the given email or ErrNotFound.
func (s *PersonStore) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Person, error) {
	return s.first(ctx, db, "email = ?", email)
}

// FindByPhoneNumber returns the person with the given phone number or ErrNotFound.
func (s *PersonStore) FindByPhoneNumber(ctx context.Context, db *gorm.DB, phone string) (*domain.Person, error) {
	return s.first(ctx, db, "phone_number = ?", phone)
}

// SearchByLastName returns persons whose last name contains term, ignoring case.
func (s *PersonStore) SearchByLastName(ctx context.Context, db *gorm.DB, term string) ([]domain.Person, error) {
	return s.containing(ctx, db, "last_name", term)
}

// FindBornBetween returns persons born within [from, to], both inclusive.
func (s *PersonStore) FindBornBetween(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.Person, error) {
	return s.where(ctx, db, "date_of_birth BETWEEN ? AND ?", from, to)
}
