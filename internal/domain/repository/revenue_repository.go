package repository

import (
	"context"
	"time"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// RevenueRepository defines the interface for the revenue ledger
type RevenueRepository interface {
	List(ctx context.Context, params *RevenueFilterParams) ([]entity.RevenueEntry, int64, error)
	// ListWithCursor pages through entries newest first by (recorded_at, id)
	ListWithCursor(ctx context.Context, params *RevenueCursorFilterParams) ([]entity.RevenueEntry, error)
	SummaryByCategory(ctx context.Context, start, end *time.Time) ([]CategoryTotal, error)
}

// RevenueFilterParams contains filtering parameters for revenue queries
type RevenueFilterParams struct {
	Pagination *pagination.PaginationParams
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}

// RevenueCursorFilterParams contains filtering parameters for cursor-based revenue queries
type RevenueCursorFilterParams struct {
	Cursor    *pagination.CursorParams
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryTotal is the revenue recorded under one category, in paise
type CategoryTotal struct {
	Category string
	Total    int64
	Count    int64
}
