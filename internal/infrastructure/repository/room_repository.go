package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/enum"
	domainRepo "github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) domainRepo.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).Scopes(PropertyScope(ctx)).First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) GetByNumber(ctx context.Context, number string) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).Scopes(PropertyScope(ctx)).First(&room, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &room, err
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(PropertyScope(ctx)).Delete(&entity.Room{}, "id = ?", id).Error
}

func (r *roomRepository) List(ctx context.Context, params *domainRepo.RoomFilterParams) ([]entity.Room, int64, error) {
	var rooms []entity.Room
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Room{}).Scopes(PropertyScope(ctx))

	if params.Search != "" {
		query = query.Where("LOWER(number) LIKE LOWER(?) OR LOWER(type) LIKE LOWER(?)",
			likePattern(params.Search), likePattern(params.Search))
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("number ASC").
		Find(&rooms).Error

	return rooms, total, err
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Room{}).
		Scopes(PropertyScope(ctx)).
		Where("id = ?", id).
		Update("status", status).Error
}
