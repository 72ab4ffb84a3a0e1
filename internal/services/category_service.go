package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// CategoryRepo defines the repository contract required by CategoryService.
type CategoryRepo interface {
	Repository[domain.Category, uint]
	FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Category, error)
	FindByActive(ctx context.Context, db *gorm.DB, active bool) ([]domain.Category, error)
	SearchByName(ctx context.Context, db *gorm.DB, term string) ([]domain.Category, error)
}

// CategoryService manages categories. Name uniqueness is enforced by the
// database; a conflicting write fails as a persistence error.
type CategoryService struct {
	*CRUDService[domain.Category, uint]
	Store CategoryRepo
}

// NewCategoryService wires a CategoryService.
func NewCategoryService(db *gorm.DB, r CategoryRepo) *CategoryService {
	crud := NewCRUDService[domain.Category, uint](db, r, "Category", "id",
		func(c *domain.Category) uint { return c.ID },
		func(dst, src *domain.Category) {
			dst.Name = src.Name
			dst.Description = src.Description
			dst.Active = src.Active
		})
	crud.Columns = map[string]string{
		"id":          "id",
		"name":        "name",
		"description": "description",
		"active":      "active",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	}
	return &CategoryService{CRUDService: crud, Store: r}
}

// FindByName returns the category named name.
func (s *CategoryService) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	c, err := s.Store.FindByName(ctx, s.DB, name)
	return notFoundIfMissing(c, err, "Category", "name", name)
}

// FindByActive returns the categories whose active flag equals active.
func (s *CategoryService) FindByActive(ctx context.Context, active bool) ([]domain.Category, error) {
	return s.Store.FindByActive(ctx, s.DB, active)
}

// SearchByName returns the categories whose name contains term, ignoring case.
func (s *CategoryService) SearchByName(ctx context.Context, term string) ([]domain.Category, error) {
	return s.Store.SearchByName(ctx, s.DB, term)
}
