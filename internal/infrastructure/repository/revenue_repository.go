package repository

import (
	"context"
	"time"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	domainRepo "github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
	"gorm.io/gorm"
)

type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new revenue repository
func NewRevenueRepository(db *gorm.DB) domainRepo.RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) filtered(ctx context.Context, category string, start, end *time.Time) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.RevenueEntry{}).Scopes(PropertyScope(ctx))
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if start != nil {
		query = query.Where("recorded_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("recorded_at < ?", *end)
	}
	return query
}

func (r *revenueRepository) List(ctx context.Context, params *domainRepo.RevenueFilterParams) ([]entity.RevenueEntry, int64, error) {
	var entries []entity.RevenueEntry
	var total int64

	query := r.filtered(ctx, params.Category, params.StartDate, params.EndDate)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("recorded_at DESC, id DESC").
		Find(&entries).Error

	return entries, total, err
}

// ListWithCursor returns entries using keyset pagination, newest first
func (r *revenueRepository) ListWithCursor(ctx context.Context, params *domainRepo.RevenueCursorFilterParams) ([]entity.RevenueEntry, error) {
	var entries []entity.RevenueEntry

	params.Cursor.Validate()
	query := r.filtered(ctx, params.Category, params.StartDate, params.EndDate)

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("recorded_at < ? OR (recorded_at = ? AND id < ?)", cursor.At, cursor.At, cursor.ID)
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Order("recorded_at DESC, id DESC").
		Find(&entries).Error

	return entries, err
}

func (r *revenueRepository) SummaryByCategory(ctx context.Context, start, end *time.Time) ([]domainRepo.CategoryTotal, error) {
	var totals []domainRepo.CategoryTotal
	err := r.filtered(ctx, "", start, end).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Group("category").
		Order("category ASC").
		Scan(&totals).Error
	return totals, err
}
