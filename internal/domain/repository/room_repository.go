package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// RoomRepository defines the interface for room data operations.
// All reads are limited to the property of the session in ctx.
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetByNumber(ctx context.Context, number string) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *RoomFilterParams) ([]entity.Room, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus) error
}

// RoomFilterParams contains filtering parameters for room queries
type RoomFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.RoomStatus
}
