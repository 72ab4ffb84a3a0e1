package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// PostRepo defines the repository contract required by PostService.
type PostRepo interface {
	Repository[domain.Post, uint]
	FindByAuthor(ctx context.Context, db *gorm.DB, authorID uint) ([]domain.Post, error)
	SearchByTitle(ctx context.Context, db *gorm.DB, term string) ([]domain.Post, error)
}

// Existence checks whether a key is stored. Both UserStore and AddressStore
// satisfy it.
type Existence interface {
	ExistsByID(ctx context.Context, db *gorm.DB, id uint) (bool, error)
}

// PostService manages posts. Every post has exactly one existing author.
type PostService struct {
	*CRUDService[domain.Post, uint]
	Store PostRepo
}

// NewPostService wires a PostService. users resolves author references.
func NewPostService(db *gorm.DB, r PostRepo, users Existence) *PostService {
	crud := NewCRUDService[domain.Post, uint](db, r, "Post", "id",
		func(p *domain.Post) uint { return p.ID },
		func(dst, src *domain.Post) {
			dst.Title = src.Title
			dst.Content = src.Content
			dst.AuthorID = src.AuthorID
		})
	crud.Columns = map[string]string{
		"id":        "id",
		"title":     "title",
		"authorId":  "author_id",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	crud.Prepare = func(ctx context.Context, tx *gorm.DB, incoming, _ *domain.Post) error {
		if incoming.AuthorID == 0 {
			return InvalidArgument("Post author must not be null")
		}
		ok, err := users.ExistsByID(ctx, tx, incoming.AuthorID)
		if err != nil {
			return err
		}
		if !ok {
			return NotFound("User", "id", incoming.AuthorID)
		}
		return nil
	}
	return &PostService{CRUDService: crud, Store: r}
}

// FindByAuthor returns the posts written by the given user.
func (s *PostService) FindByAuthor(ctx context.Context, authorID uint) ([]domain.Post, error) {
	return s.Store.FindByAuthor(ctx, s.DB, authorID)
}

// SearchByTitle returns the posts whose title contains term, ignoring case.
func (s *PostService) SearchByTitle(ctx context.Context, term string) ([]domain.Post, error) {
	return s.Store.SearchByTitle(ctx, s.DB, term)
}
