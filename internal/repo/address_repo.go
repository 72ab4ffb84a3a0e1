// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the Address store and its derived
// finders.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// AddressStore persists addresses.
type AddressStore struct {
	*Store[domain.Address, uint]
}

// NewAddressStore returns an AddressStore keyed by id.
func NewAddressStore() *AddressStore {
	return &AddressStore{Store: &Store[domain.Address, uint]{KeyColumn: "id"}}
}

// FindByCity returns addresses whose city equals city exactly.
func (s *AddressStore) FindByCity(ctx context.Context, db *gorm.DB, city string) ([]domain.Address, error) {
	return s.where(ctx, db, "city = ?", city)
}

// FindByZipCode returns addresses with the given zip code.
func (s *AddressStore) FindByZipCode(ctx context.Context, db *gorm.DB, zip string) ([]domain.Address, error) {
	return s.where(ctx, db, "zip_code = ?", zip)
}
