package services

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	Repository[domain.User, uint]
	AddressDetacher
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error)
	FindByAgeBetween(ctx context.Context, db *gorm.DB, minAge, maxAge int) ([]domain.User, error)
	SearchByName(ctx context.Context, db *gorm.DB, term string) ([]domain.User, error)
}

// PostOwnership is the subset of the post store used to keep a user's posts
// in sync with its Posts collection.
type PostOwnership interface {
	ExistingIDs(ctx context.Context, db *gorm.DB, ids []uint) ([]uint, error)
	Reassign(ctx context.Context, db *gorm.DB, authorID uint, ids []uint) error
	DeleteByAuthorExcept(ctx context.Context, db *gorm.DB, authorID uint, keep []uint) error
	Stats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error)
}

// OwnedAddresses is the subset of the address store a user needs to resolve
// and remove its address.
type OwnedAddresses interface {
	Existence
	DeleteByID(ctx context.Context, db *gorm.DB, id uint) error
}

// UserService manages users together with the posts and the address they own.
//
// On create and update, a non-nil Posts collection on the incoming user is
// authoritative: posts the user owned but no longer lists are deleted, listed
// posts are re-parented to the user, and unknown post ids fail with NotFound.
// A nil collection leaves posts untouched. Deleting a user deletes its posts
// and its address.
type UserService struct {
	*CRUDService[domain.User, uint]
	Store UserRepo

	posts     PostOwnership
	addresses OwnedAddresses
}

// NewUserService wires a UserService.
func NewUserService(db *gorm.DB, r UserRepo, posts PostOwnership, addresses OwnedAddresses) *UserService {
	s := &UserService{Store: r, posts: posts, addresses: addresses}
	crud := NewCRUDService[domain.User, uint](db, r, "User", "id",
		func(u *domain.User) uint { return u.ID },
		func(dst, src *domain.User) {
			dst.Name = src.Name
			dst.Email = src.Email
			dst.Age = src.Age
			dst.AddressID = src.AddressID
		})
	crud.Columns = map[string]string{
		"id":        "id",
		"name":      "name",
		"email":     "email",
		"age":       "age",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	crud.Prepare = s.resolveAddress
	crud.AfterSave = s.syncPosts
	crud.BeforeDelete = s.deleteOwned
	s.CRUDService = crud
	return s
}

// FindByEmail returns the user with the given email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.Store.FindByEmail(ctx, s.DB, email)
	return notFoundIfMissing(u, err, "User", "email", email)
}

// FindByAgeBetween returns the users whose age is within [minAge, maxAge].
func (s *UserService) FindByAgeBetween(ctx context.Context, minAge, maxAge int) ([]domain.User, error) {
	return s.Store.FindByAgeBetween(ctx, s.DB, minAge, maxAge)
}

// SearchByName returns the users whose name contains term, ignoring case.
func (s *UserService) SearchByName(ctx context.Context, term string) ([]domain.User, error) {
	return s.Store.SearchByName(ctx, s.DB, term)
}

// Stats combines the statistics of users and posts: a user's representation
// lists its post ids, so it changes whenever one of its posts does.
func (s *UserService) Stats(ctx context.Context) (int64, *time.Time, error) {
	n, latest, err := s.CRUDService.Stats(ctx)
	if err != nil {
		return 0, nil, err
	}
	pn, postLatest, err := s.posts.Stats(ctx, s.DB)
	if err != nil {
		return 0, nil, err
	}
	if latest == nil || (postLatest != nil && postLatest.After(*latest)) {
		latest = postLatest
	}
	return n + pn, latest, nil
}

func (s *UserService) resolveAddress(ctx context.Context, tx *gorm.DB, incoming, _ *domain.User) error {
	if incoming.AddressID != nil && *incoming.AddressID == 0 {
		incoming.AddressID = nil
	}
	if incoming.AddressID == nil {
		return nil
	}
	ok, err := s.addresses.ExistsByID(ctx, tx, *incoming.AddressID)
	if err != nil {
		return err
	}
	if !ok {
		return NotFound("Address", "id", *incoming.AddressID)
	}
	return nil
}

func (s *UserService) syncPosts(ctx context.Context, tx *gorm.DB, saved, incoming *domain.User) error {
	if incoming.Posts == nil {
		return nil
	}
	want := incoming.PostIDs()
	slices.Sort(want)
	want = slices.Compact(want)

	found, err := s.posts.ExistingIDs(ctx, tx, want)
	if err != nil {
		return err
	}
	if len(found) != len(want) {
		for _, id := range want {
			if _, ok := slices.BinarySearch(found, id); !ok {
				return NotFound("Post", "id", id)
			}
		}
	}

	if err := s.posts.DeleteByAuthorExcept(ctx, tx, saved.ID, want); err != nil {
		return err
	}
	return s.posts.Reassign(ctx, tx, saved.ID, want)
}

func (s *UserService) deleteOwned(ctx context.Context, tx *gorm.DB, id uint) error {
	u, err := s.Store.FindByID(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := s.posts.DeleteByAuthorExcept(ctx, tx, id, nil); err != nil {
		return err
	}
	if u.AddressID == nil {
		zerolog.Ctx(ctx).Debug().Uint("user_id", id).Msg("user posts removed")
		return nil
	}
	addrID := *u.AddressID
	if err := s.Store.DetachAddress(ctx, tx, addrID); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Uint("user_id", id).Uint("address_id", addrID).Msg("user posts and address removed")
	return s.addresses.DeleteByID(ctx, tx, addrID)
}
