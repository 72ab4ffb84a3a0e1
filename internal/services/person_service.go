package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// PersonRepo defines the repository contract required by PersonService.
type PersonRepo interface {
	Repository[domain.Person, string]
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Person, error)
	FindByPhoneNumber(ctx context.Context, db *gorm.DB, phone string) (*domain.Person, error)
	SearchByLastName(ctx context.Context, db *gorm.DB, term string) ([]domain.Person, error)
	FindBornBetween(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.Person, error)
}

// PersonService manages persons, keyed by CIN.
type PersonService struct {
	*CRUDService[domain.Person, string]
	Store PersonRepo
}

// NewPersonService wires a PersonService. Creating a person whose CIN is
// already stored fails with ErrBadRequest instead of overwriting it.
//
// Other entities leave uniqueness to the database. The CIN is the
// client-supplied primary key, so saving a duplicate would update the
// existing row rather than violate a constraint.
func NewPersonService(db *gorm.DB, r PersonRepo) *PersonService {
	crud := NewCRUDService[domain.Person, string](db, r, "Person", "cin",
		func(p *domain.Person) string { return p.CIN },
		func(dst, src *domain.Person) {
			dst.FirstName = src.FirstName
			dst.LastName = src.LastName
			dst.DateOfBirth = src.DateOfBirth
			dst.PhoneNumber = src.PhoneNumber
			dst.Email = src.Email
		})
	crud.Columns = map[string]string{
		"cin":         "cin",
		"firstName":   "first_name",
		"lastName":    "last_name",
		"dateOfBirth": "date_of_birth",
		"phoneNumber": "phone_number",
		"email":       "email",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	}
	crud.Prepare = func(ctx context.Context, tx *gorm.DB, incoming, existing *domain.Person) error {
		if existing != nil {
			return nil
		}
		incoming.CIN = strings.TrimSpace(incoming.CIN)
		if incoming.CIN == "" {
			return InvalidArgument("Person cin must not be null")
		}
		taken, err := r.ExistsByID(ctx, tx, incoming.CIN)
		if err != nil {
			return err
		}
		if taken {
			return BadRequest("Person already exists with cin: %s", incoming.CIN)
		}
		return nil
	}
	return &PersonService{CRUDService: crud, Store: r}
}

// FindByEmail returns the person with the given email.
func (s *PersonService) FindByEmail(ctx context.Context, email string) (*domain.Person, error) {
	p, err := s.Store.FindByEmail(ctx, s.DB, email)
	return notFoundIfMissing(p, err, "Person", "email", email)
}

// FindByPhoneNumber returns the person with the given phone number.
func (s *PersonService) FindByPhoneNumber(ctx context.Context, phone string) (*domain.Person, error) {
	p, err := s.Store.FindByPhoneNumber(ctx, s.DB, phone)
	return notFoundIfMissing(p, err, "Person", "phoneNumber", phone)
}

// SearchByLastName returns the persons whose last name contains term.
func (s *PersonService) SearchByLastName(ctx context.Context, term string) ([]domain.Person, error) {
	return s.Store.SearchByLastName(ctx, s.DB, term)
}

// FindBornBetween returns the persons born within [from, to].
func (s *PersonService) FindBornBetween(ctx context.Context, from, to time.Time) ([]domain.Person, error) {
	return s.Store.FindBornBetween(ctx, s.DB, from, to)
}
