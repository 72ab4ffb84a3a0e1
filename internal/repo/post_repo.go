// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the Post store, its derived finders and
// the bulk helpers used when a user's posts are synchronised or removed.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// PostStore persists posts.
type PostStore struct {
	*Store[domain.Post, uint]
}

// NewPostStore returns a PostStore keyed by id.
func NewPostStore() *PostStore {
	return &PostStore{Store: &Store[domain.Post, uint]{KeyColumn: "id"}}
}

// FindByAuthor returns the posts written by the given user.
func (s *PostStore) FindByAuthor(ctx context.Context, db *gorm.DB, authorID uint) ([]domain.Post, error) {
	return s.where(ctx, db, "author_id = ?", authorID)
}

// SearchByTitle returns posts whose title contains term, ignoring case.
func (s *PostStore) SearchByTitle(ctx context.Context, db *gorm.DB, term string) ([]domain.Post, error) {
	return s.containing(ctx, db, "title", term)
}

// ExistingIDs returns the subset of ids that exist, in ascending order.
func (s *PostStore) ExistingIDs(ctx context.Context, db *gorm.DB, ids []uint) ([]uint, error) {
	out := []uint{}
	if len(ids) == 0 {
		return out, nil
	}
	err := db.WithContext(ctx).Model(&domain.Post{}).
		Where("id IN ?", ids).
		Order("id").
		Pluck("id", &out).Error
	return out, err
}

// Reassign sets the author of every post in ids to authorID.
func (s *PostStore) Reassign(ctx context.Context, db *gorm.DB, authorID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return db.WithContext(ctx).Model(&domain.Post{}).
		Where("id IN ?", ids).
		Update("author_id", authorID).Error
}

// DeleteByAuthorExcept deletes the posts of authorID whose id is not in keep.
// An empty keep deletes every post of the author.
func (s *PostStore) DeleteByAuthorExcept(ctx context.Context, db *gorm.DB, authorID uint, keep []uint) error {
	q := db.WithContext(ctx).Where("author_id = ?", authorID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	return q.Delete(&domain.Post{}).Error
}
