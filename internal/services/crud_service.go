// Package services – CRUDService
//
// This file implements CRUDService, the generic service shared by every
// entity. It enforces the "required argument" and "found-or-error" rules the
// persistence layer does not guarantee, runs each mutation in its own
// transaction, and delegates storage to a Repository.
//
// Entity-specific behavior plugs in through hooks (Prepare, AfterSave,
// BeforeDelete) that run inside the mutation's transaction and receive the
// transaction handle explicitly.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/observability"
	"github.com/tbourn/go-crud-backend/internal/repo"
	"github.com/tbourn/go-crud-backend/internal/utils"
)

// Key is the set of primary key types. The zero value means "no key".
type Key interface {
	~uint | ~string
}

// Repository defines the persistence contract required by CRUDService.
// repo.Store satisfies it.
type Repository[E any, K Key] interface {
	Create(ctx context.Context, db *gorm.DB, e *E) error
	Save(ctx context.Context, db *gorm.DB, e *E) error
	FindByID(ctx context.Context, db *gorm.DB, k K) (*E, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]E, error)
	FindPage(ctx context.Context, db *gorm.DB, offset, limit int, sorts []repo.Sort) ([]E, error)
	ExistsByID(ctx context.Context, db *gorm.DB, k K) (bool, error)
	DeleteByID(ctx context.Context, db *gorm.DB, k K) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Stats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error)
}

// CRUDService provides create, read, update and delete for entity E.
type CRUDService[E any, K Key] struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the repository used by this service.
	Repo Repository[E, K]

	// Entity and KeyField build not-found messages
	// ("Category not found with id: 7").
	Entity   string
	KeyField string

	// Merge copies the mutable fields of src onto dst. Identity is never copied.
	Merge func(dst, src *E)
	// Columns maps sortable client-facing properties to columns.
	Columns map[string]string

	// Prepare validates or resolves references before a write. existing is
	// nil on create.
	Prepare func(ctx context.Context, tx *gorm.DB, incoming, existing *E) error
	// AfterSave persists owned children once saved has a key.
	AfterSave func(ctx context.Context, tx *gorm.DB, saved, incoming *E) error
	// BeforeDelete removes or detaches dependents of the record being deleted.
	BeforeDelete func(ctx context.Context, tx *gorm.DB, k K) error

	keyOf func(*E) K
}

// NewCRUDService constructs a CRUDService. keyOf extracts the key of a
// persisted entity and is used to reload it after hooks ran.
func NewCRUDService[E any, K Key](db *gorm.DB, r Repository[E, K], entity, keyField string, keyOf func(*E) K, merge func(dst, src *E)) *CRUDService[E, K] {
	return &CRUDService[E, K]{
		DB:       db,
		Repo:     r,
		Entity:   entity,
		KeyField: keyField,
		Merge:    merge,
		keyOf:    keyOf,
	}
}

// Create persists e and returns the stored record.
func (s *CRUDService[E, K]) Create(ctx context.Context, e *E) (out *E, err error) {
	if e == nil {
		return nil, InvalidArgument("%s must not be null", s.Entity)
	}
	ctx, span := observability.Start(ctx, s.Entity, "create")
	defer func() { observability.End(span, err) }()

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.Prepare != nil {
			if err := s.Prepare(ctx, tx, e, nil); err != nil {
				return err
			}
		}
		if err := s.Repo.Create(ctx, tx, e); err != nil {
			return err
		}
		saved, err := s.afterSave(ctx, tx, e, e)
		out = saved
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the record stored under k.
func (s *CRUDService[E, K]) GetByID(ctx context.Context, k K) (*E, error) {
	if isZero(k) {
		return nil, InvalidArgument("%s %s must not be null", s.Entity, s.KeyField)
	}
	e, err := s.Repo.FindByID(ctx, s.DB, k)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.notFound(k)
	}
	return e, err
}

// GetAll returns every record. An empty table is not an error.
func (s *CRUDService[E, K]) GetAll(ctx context.Context) ([]E, error) {
	return s.Repo.FindAll(ctx, s.DB)
}

// GetPage returns one page of records ordered by p.Sort.
func (s *CRUDService[E, K]) GetPage(ctx context.Context, p utils.Pageable) (utils.Page[E], error) {
	if p.Page < 0 || p.Size < 1 {
		return utils.Page[E]{}, InvalidArgument("page must be >= 0 and size must be >= 1")
	}
	sorts := make([]repo.Sort, 0, len(p.Sort))
	for _, o := range p.Sort {
		col, ok := s.Columns[o.Property]
		if !ok {
			return utils.Page[E]{}, InvalidArgument("Unknown sort property: %s", o.Property)
		}
		sorts = append(sorts, repo.Sort{Column: col, Desc: o.Desc})
	}

	total, err := s.Repo.Count(ctx, s.DB)
	if err != nil {
		return utils.Page[E]{}, err
	}
	items := []E{}
	if int64(p.Offset()) < total {
		items, err = s.Repo.FindPage(ctx, s.DB, p.Offset(), p.Size, sorts)
		if err != nil {
			return utils.Page[E]{}, err
		}
	}
	return utils.NewPage(items, p, total), nil
}

// Update copies the mutable fields of e onto the record stored under k and
// persists it. The read and the write share one transaction; concurrent
// updates to the same key are last-writer-wins.
func (s *CRUDService[E, K]) Update(ctx context.Context, k K, e *E) (out *E, err error) {
	if isZero(k) {
		return nil, InvalidArgument("%s %s must not be null", s.Entity, s.KeyField)
	}
	if e == nil {
		return nil, InvalidArgument("%s must not be null", s.Entity)
	}
	ctx, span := observability.Start(ctx, s.Entity, "update")
	defer func() { observability.End(span, err) }()

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.Repo.FindByID(ctx, tx, k)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.notFound(k)
		}
		if err != nil {
			return err
		}
		if s.Prepare != nil {
			if err := s.Prepare(ctx, tx, e, existing); err != nil {
				return err
			}
		}
		if s.Merge != nil {
			s.Merge(existing, e)
		}
		if err := s.Repo.Save(ctx, tx, existing); err != nil {
			return err
		}
		saved, err := s.afterSave(ctx, tx, existing, e)
		out = saved
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the record stored under k together with whatever
// BeforeDelete removes.
func (s *CRUDService[E, K]) Delete(ctx context.Context, k K) (err error) {
	if isZero(k) {
		return InvalidArgument("%s %s must not be null", s.Entity, s.KeyField)
	}
	ctx, span := observability.Start(ctx, s.Entity, "delete")
	defer func() { observability.End(span, err) }()

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.ExistsByID(ctx, tx, k)
		if err != nil {
			return err
		}
		if !ok {
			return s.notFound(k)
		}
		if s.BeforeDelete != nil {
			if err := s.BeforeDelete(ctx, tx, k); err != nil {
				return err
			}
		}
		return s.Repo.DeleteByID(ctx, tx, k)
	})
}

// ExistsByID reports whether k is stored. A zero key is simply absent.
func (s *CRUDService[E, K]) ExistsByID(ctx context.Context, k K) (bool, error) {
	if isZero(k) {
		return false, nil
	}
	return s.Repo.ExistsByID(ctx, s.DB, k)
}

// Count returns the number of stored records.
func (s *CRUDService[E, K]) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx, s.DB)
}

// Stats returns the record count and the latest modification time, used for
// conditional GETs.
func (s *CRUDService[E, K]) Stats(ctx context.Context) (int64, *time.Time, error) {
	return s.Repo.Stats(ctx, s.DB)
}

// afterSave runs the AfterSave hook and, when one ran, reloads the record so
// the result reflects the children it wrote.
func (s *CRUDService[E, K]) afterSave(ctx context.Context, tx *gorm.DB, saved, incoming *E) (*E, error) {
	if s.AfterSave == nil {
		return saved, nil
	}
	if err := s.AfterSave(ctx, tx, saved, incoming); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, tx, s.keyOf(saved))
}

func (s *CRUDService[E, K]) notFound(k K) error {
	return NotFound(s.Entity, s.KeyField, k)
}

// notFoundIfMissing maps gorm.ErrRecordNotFound from a derived finder to a
// NotFound error on field.
func notFoundIfMissing[T any](v *T, err error, entity, field string, value any) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound(entity, field, value)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func isZero[K Key](k K) bool {
	var zero K
	return k == zero
}
