package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
)

// RevenueService reads the revenue ledger
type RevenueService struct {
	revenueRepo repository.RevenueRepository
}

// NewRevenueService creates a new revenue service
func NewRevenueService(revenueRepo repository.RevenueRepository) *RevenueService {
	return &RevenueService{revenueRepo: revenueRepo}
}

// RevenueRange limits revenue queries by recorded date and category
type RevenueRange struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

func (r RevenueRange) validate() error {
	if r.Category != "" && !entity.IsRevenueCategory(r.Category) {
		return apperror.NewFieldError("category", "must be room, food or other")
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return apperror.NewFieldError("end_date", "must not be before start_date")
	}
	return nil
}

// ListRevenue lists ledger entries newest first with page-based pagination
func (s *RevenueService) ListRevenue(ctx context.Context, params *pagination.PaginationParams, filter RevenueRange) (*pagination.PaginatedResult[entity.RevenueEntry], error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	if err := filter.validate(); err != nil {
		return nil, err
	}
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	entries, total, err := s.revenueRepo.List(ctx, &repository.RevenueFilterParams{
		Pagination: params,
		Category:   filter.Category,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(entries, params, total), nil
}

// ListRevenueCursor lists ledger entries newest first with keyset pagination
func (s *RevenueService) ListRevenueCursor(ctx context.Context, params *pagination.CursorParams, filter RevenueRange) (*pagination.CursorPaginatedResult[entity.RevenueEntry], error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	if err := filter.validate(); err != nil {
		return nil, err
	}
	params.Validate()
	if _, err := params.DecodeCursor(); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	entries, err := s.revenueRepo.ListWithCursor(ctx, &repository.RevenueCursorFilterParams{
		Cursor:    params,
		Category:  filter.Category,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue: %w", err)
	}

	page, entries := pagination.NewCursorPagination(entries, params.Limit,
		func(e entity.RevenueEntry) string { return e.ID.String() },
		func(e entity.RevenueEntry) time.Time { return e.RecordedAt },
	)
	return pagination.NewCursorPaginatedResult(entries, page), nil
}

// CategorySummary is the revenue of one category
type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// RevenueSummary is the revenue of a period broken down by category
type RevenueSummary struct {
	StartDate  *time.Time        `json:"start_date,omitempty"`
	EndDate    *time.Time        `json:"end_date,omitempty"`
	Categories []CategorySummary `json:"categories"`
	Total      float64           `json:"total"`
	Count      int64             `json:"count"`
}

// Summary totals the ledger per category. Every category is listed, with
// zero when nothing was recorded under it.
func (s *RevenueService) Summary(ctx context.Context, filter RevenueRange) (*RevenueSummary, error) {
	if _, err := currentSession(ctx); err != nil {
		return nil, err
	}
	filter.Category = ""
	if err := filter.validate(); err != nil {
		return nil, err
	}

	totals, err := s.revenueRepo.SummaryByCategory(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[string]repository.CategoryTotal, len(totals))
	for _, t := range totals {
		byCategory[t.Category] = t
	}

	summary := &RevenueSummary{StartDate: filter.StartDate, EndDate: filter.EndDate}
	var grand int64
	for _, category := range []string{entity.RevenueCategoryRoom, entity.RevenueCategoryFood, entity.RevenueCategoryOther} {
		t := byCategory[category]
		summary.Categories = append(summary.Categories, CategorySummary{
			Category: category,
			Total:    pricing.MinorToFloat(t.Total),
			Count:    t.Count,
		})
		grand += t.Total
		summary.Count += t.Count
	}
	summary.Total = pricing.MinorToFloat(grand)
	return summary, nil
}
