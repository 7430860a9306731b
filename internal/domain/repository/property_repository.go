package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
)

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	// GetFirst returns the oldest property, used when seeding a single-hotel install
	GetFirst(ctx context.Context) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
