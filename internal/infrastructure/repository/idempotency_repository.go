package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	domainRepo "github.com/sangkips/innkeeper-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type idempotencyRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db, now: time.Now}
}

// GetByKey ignores keys past their expiry even before the cleanup job has
// removed them.
func (r *idempotencyRepository) GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		Scopes(PropertyScope(ctx)).
		Where("key = ? AND expires_at > ?", key, r.now()).
		First(&ikey).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load idempotency key: %w", err)
	}
	return &ikey, nil
}

// Create stores the response for (property, key). An expired row with the same
// key is overwritten.
func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}, {Name: "property_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "endpoint", "request_hash", "response_code", "response_body", "expires_at",
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Lt{Column: clause.Column{Table: "idempotency_keys", Name: "expires_at"}, Value: r.now()},
			}},
		}).
		Create(ikey).Error
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now()).
		Delete(&entity.IdempotencyKey{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired idempotency keys: %w", result.Error)
	}
	return result.RowsAffected, nil
}
