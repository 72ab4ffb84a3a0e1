package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// ErrDuplicate indicates that a live idempotency record already exists for
// the given (scope, key) pair.
var ErrDuplicate = errors.New("duplicate")

// GetIdempotency returns the live record for (scope, key) or ErrNotFound.
func GetIdempotency(ctx context.Context, db *gorm.DB, scope, key string, now time.Time) (*domain.Idempotency, error) {
	if strings.TrimSpace(scope) == "" || strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.Idempotency
	err := db.WithContext(ctx).
		Where("scope = ? AND key = ? AND expires_at > ?", scope, key, now).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateIdempotency records that key, used on scope at now, produced
// resourceID with the given status. An expired record for the same pair
// that has not been purged yet is taken over. A live one is left untouched
// and ErrDuplicate is returned.
func CreateIdempotency(ctx context.Context, db *gorm.DB, scope, key, resourceID string, status int, ttl time.Duration, now time.Time) (*domain.Idempotency, error) {
	rec := &domain.Idempotency{
		ID:         uuid.NewString(),
		Scope:      scope,
		Key:        key,
		ResourceID: resourceID,
		Status:     status,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	res := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "key"}},
		Where:     clause.Where{Exprs: []clause.Expression{clause.Lte{Column: clause.Column{Table: rec.TableName(), Name: "expires_at"}, Value: now}}},
		DoUpdates: clause.AssignmentColumns([]string{"id", "resource_id", "status", "created_at", "expires_at"}),
	}).Create(rec)
	switch {
	case IsDuplicate(res.Error):
		return nil, ErrDuplicate
	case res.Error != nil:
		return nil, res.Error
	case res.RowsAffected == 0:
		return nil, ErrDuplicate
	}
	return rec, nil
}

// RebindIdempotency points the live record for (scope, key) at a new
// resource and restarts its TTL. It is used when the resource a record
// referred to is gone and the request created a fresh one.
func RebindIdempotency(ctx context.Context, db *gorm.DB, scope, key, resourceID string, ttl time.Duration, now time.Time) error {
	res := db.WithContext(ctx).Model(&domain.Idempotency{}).
		Where("scope = ? AND key = ?", scope, key).
		Updates(map[string]any{"resource_id": resourceID, "expires_at": now.Add(ttl)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeExpiredIdempotency deletes records that expired at or before now and
// returns how many were removed.
func PurgeExpiredIdempotency(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&domain.Idempotency{})
	return res.RowsAffected, res.Error
}

// IsDuplicate reports whether err is a unique-constraint violation, whether
// translated by GORM or reported in driver text (SQLite "UNIQUE constraint
// failed", Postgres SQLSTATE 23505 "duplicate key value").
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key")
}
