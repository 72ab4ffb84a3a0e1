// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the User store, its derived finders and
// the helper that detaches users from an address.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// UserStore persists users. Reads preload the address and the posts
// (ordered by id) so responses can expose addressId and postIds.
type UserStore struct {
	*Store[domain.User, uint]
}

// NewUserStore returns a UserStore keyed by id.
func NewUserStore() *UserStore {
	return &UserStore{Store: &Store[domain.User, uint]{
		KeyColumn: "id",
		Scope: func(db *gorm.DB) *gorm.DB {
			return db.Preload("Address").Preload("Posts", func(db *gorm.DB) *gorm.DB {
				return db.Order("posts.id")
			})
		},
	}}
}

// FindByEmail returns the user with the given email or ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	return s.first(ctx, db, "email = ?", email)
}

// FindByAgeBetween returns users whose age is within [minAge, maxAge].
func (s *UserStore) FindByAgeBetween(ctx context.Context, db *gorm.DB, minAge, maxAge int) ([]domain.User, error) {
	return s.where(ctx, db, "age BETWEEN ? AND ?", minAge, maxAge)
}

// SearchByName returns users whose name contains term, ignoring case.
func (s *UserStore) SearchByName(ctx context.Context, db *gorm.DB, term string) ([]domain.User, error) {
	return s.containing(ctx, db, "name", term)
}

// DetachAddress clears address_id on every user referencing addressID.
func (s *UserStore) DetachAddress(ctx context.Context, db *gorm.DB, addressID uint) error {
	return db.WithContext(ctx).Model(&domain.User{}).
		Where("address_id = ?", addressID).
		Update("address_id", nil).Error
}
