package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// AddressRepo defines the repository contract required by AddressService.
type AddressRepo interface {
	Repository[domain.Address, uint]
	FindByCity(ctx context.Context, db *gorm.DB, city string) ([]domain.Address, error)
	FindByZipCode(ctx context.Context, db *gorm.DB, zip string) ([]domain.Address, error)
}

// AddressDetacher clears user references to an address.
type AddressDetacher interface {
	DetachAddress(ctx context.Context, db *gorm.DB, addressID uint) error
}

// AddressService manages postal addresses.
type AddressService struct {
	*CRUDService[domain.Address, uint]
	Store AddressRepo
}

// NewAddressService wires an AddressService. Deleting an address first
// detaches every user that references it.
func NewAddressService(db *gorm.DB, r AddressRepo, users AddressDetacher) *AddressService {
	crud := NewCRUDService[domain.Address, uint](db, r, "Address", "id",
		func(a *domain.Address) uint { return a.ID },
		func(dst, src *domain.Address) {
			dst.Street = src.Street
			dst.City = src.City
			dst.ZipCode = src.ZipCode
		})
	crud.Columns = map[string]string{
		"id":        "id",
		"street":    "street",
		"city":      "city",
		"zipCode":   "zip_code",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	crud.BeforeDelete = func(ctx context.Context, tx *gorm.DB, id uint) error {
		return users.DetachAddress(ctx, tx, id)
	}
	return &AddressService{CRUDService: crud, Store: r}
}

// FindByCity returns the addresses in city.
func (s *AddressService) FindByCity(ctx context.Context, city string) ([]domain.Address, error) {
	return s.Store.FindByCity(ctx, s.DB, city)
}

// FindByZipCode returns the addresses with the given zip code.
func (s *AddressService) FindByZipCode(ctx context.Context, zip string) ([]domain.Address, error) {
	return s.Store.FindByZipCode(ctx, s.DB, zip)
}
