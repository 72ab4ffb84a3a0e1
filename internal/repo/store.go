// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides Store, a generic repository shared by
// every entity: create, save, lookup by key, listing, paging, existence,
// deletion, counting and table statistics.
//
// All methods are context-aware and accept a *gorm.DB handle, so the same
// Store serves plain reads and calls made inside a caller-owned transaction.
// They follow the "thin repository" approach: no business logic, only
// persistence and query composition.
//
// Error semantics:
//   - When a row is not found, methods return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// Sort is one ORDER BY term on a physical column.
type Sort struct {
	Column string
	Desc   bool
}

// Store is a generic repository for entity E keyed by K.
//
// KeyColumn names the primary key column ("id", "cin"). Listing falls back to
// ordering by KeyColumn ascending so pages are stable. Scope, when set, is
// applied to every read (typically preloads).
type Store[E any, K comparable] struct {
	KeyColumn string
	Scope     func(*gorm.DB) *gorm.DB
}

func (s *Store[E, K]) read(ctx context.Context, db *gorm.DB) *gorm.DB {
	q := db.WithContext(ctx)
	if s.Scope != nil {
		q = q.Scopes(s.Scope)
	}
	return q
}

func (s *Store[E, K]) byKey(k K) clause.Eq {
	return clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: s.KeyColumn}, Value: k}
}

// Create inserts e. Associations are never written implicitly; callers that
// own children persist them explicitly.
func (s *Store[E, K]) Create(ctx context.Context, db *gorm.DB, e *E) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

// Save writes every column of e (including zero values) by primary key.
func (s *Store[E, K]) Save(ctx context.Context, db *gorm.DB, e *E) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

// FindByID fetches one row by key, or gorm.ErrRecordNotFound.
func (s *Store[E, K]) FindByID(ctx context.Context, db *gorm.DB, k K) (*E, error) {
	var e E
	if err := s.read(ctx, db).Where(s.byKey(k)).Take(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// FindAll returns every row ordered by key. It returns an empty slice when
// the table is empty.
func (s *Store[E, K]) FindAll(ctx context.Context, db *gorm.DB) ([]E, error) {
	out := []E{}
	err := s.read(ctx, db).Order(s.keyOrder()).Find(&out).Error
	return out, err
}

// FindPage returns up to limit rows after skipping offset, ordered by sorts
// and then by key. Use Count to obtain the total for pagination metadata.
func (s *Store[E, K]) FindPage(ctx context.Context, db *gorm.DB, offset, limit int, sorts []Sort) ([]E, error) {
	out := []E{}
	q := s.read(ctx, db)
	for _, o := range sorts {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	err := q.Order(s.keyOrder()).Offset(offset).Limit(limit).Find(&out).Error
	return out, err
}

// ExistsByID reports whether a row with key k exists.
func (s *Store[E, K]) ExistsByID(ctx context.Context, db *gorm.DB, k K) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(new(E)).Where(s.byKey(k)).Limit(1).Count(&n).Error
	return n > 0, err
}

// DeleteByID physically deletes the row with key k. It returns
// gorm.ErrRecordNotFound when nothing was deleted.
func (s *Store[E, K]) DeleteByID(ctx context.Context, db *gorm.DB, k K) error {
	res := db.WithContext(ctx).Where(s.byKey(k)).Delete(new(E))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of rows in the table.
func (s *Store[E, K]) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(new(E)).Count(&n).Error
	return n, err
}

// Stats returns the row count and the latest updated_at of the table, or a
// nil time when it is empty. The HTTP layer derives list ETags from them.
func (s *Store[E, K]) Stats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	n, err := s.Count(ctx, db)
	if err != nil || n == 0 {
		return 0, nil, err
	}
	// ORDER BY instead of MAX(): SQLite returns MAX over a datetime as TEXT.
	var latest struct{ UpdatedAt time.Time }
	err = db.WithContext(ctx).Model(new(E)).
		Select("updated_at").Order("updated_at DESC").Limit(1).
		Scan(&latest).Error
	if err != nil {
		return 0, nil, err
	}
	return n, &latest.UpdatedAt, nil
}

// where returns the rows matching a condition, ordered by key.
func (s *Store[E, K]) where(ctx context.Context, db *gorm.DB, query any, args ...any) ([]E, error) {
	out := []E{}
	err := s.read(ctx, db).Where(query, args...).Order(s.keyOrder()).Find(&out).Error
	return out, err
}

// first returns the single row matching a column condition or
// gorm.ErrRecordNotFound.
func (s *Store[E, K]) first(ctx context.Context, db *gorm.DB, query any, args ...any) (*E, error) {
	var e E
	if err := s.read(ctx, db).Where(query, args...).Take(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// containing returns rows whose column contains term, ignoring case.
func (s *Store[E, K]) containing(ctx context.Context, db *gorm.DB, column, term string) ([]E, error) {
	return s.where(ctx, db, "LOWER("+column+") LIKE ? ESCAPE '\\'", likePattern(term))
}

func (s *Store[E, K]) keyOrder() clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: s.KeyColumn}}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern lowercases term and wraps it for a substring LIKE match, with
// LIKE wildcards in term matched literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(cases.Lower(language.Und).String(term)) + "%"
}
