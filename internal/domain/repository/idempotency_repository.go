package repository

import (
	"context"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
)

// IdempotencyRepository stores the first response to a payment request so a
// retried request can be answered without paying twice.
type IdempotencyRepository interface {
	// GetByKey returns the live key of the session's property, or nil.
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	// Create stores a response. A live key with the same value is kept as is.
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes expired keys of every property.
	DeleteExpired(ctx context.Context) (int64, error)
}
