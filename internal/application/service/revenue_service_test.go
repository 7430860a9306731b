package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueSummary(t *testing.T) {
	env := setupEnv(t)
	room := env.deluxeRoom(t, "101")
	booking := env.book(t, room.ID, "2024-03-10", "2024-03-13", "10000")

	_, err := env.bookings.SettlePayment(env.ctx, booking.ID, &SettlePaymentInput{
		Amount: decimal.NewFromInt(500), Method: "cash", Category: entity.RevenueCategoryFood,
	})
	require.NoError(t, err)

	summary, err := env.revenue.Summary(env.ctx, RevenueRange{})
	require.NoError(t, err)
	require.Len(t, summary.Categories, 3)
	assert.Equal(t, CategorySummary{Category: "room", Total: 10000, Count: 1}, summary.Categories[0])
	assert.Equal(t, CategorySummary{Category: "food", Total: 500, Count: 1}, summary.Categories[1])
	assert.Equal(t, CategorySummary{Category: "other", Total: 0, Count: 0}, summary.Categories[2])
	assert.Equal(t, 10500.0, summary.Total)
	assert.Equal(t, int64(2), summary.Count)

	past := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	summary, err = env.revenue.Summary(env.ctx, RevenueRange{EndDate: &past})
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
}

func TestListRevenue(t *testing.T) {
	env := setupEnv(t)
	room := env.deluxeRoom(t, "101")
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		env.bookings.now = func() time.Time { return at }
		day := at.AddDate(0, 0, 10+2*i).Format("2006-01-02")
		next := at.AddDate(0, 0, 11+2*i).Format("2006-01-02")
		env.book(t, room.ID, day, next, "1000")
	}

	page, err := env.revenue.ListRevenue(env.ctx, &pagination.PaginationParams{Page: 1, PerPage: 2}, RevenueRange{Category: "room"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Pagination.Total)
	require.Len(t, page.Items, 2)
	assert.True(t, page.Items[0].RecordedAt.After(page.Items[1].RecordedAt))

	first, err := env.revenue.ListRevenueCursor(env.ctx, &pagination.CursorParams{Limit: 3}, RevenueRange{})
	require.NoError(t, err)
	require.Len(t, first.Items, 3)
	require.True(t, first.Pagination.HasNext)
	require.NotNil(t, first.Pagination.NextCursor)

	second, err := env.revenue.ListRevenueCursor(env.ctx, &pagination.CursorParams{Limit: 3, Cursor: *first.Pagination.NextCursor}, RevenueRange{})
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	assert.False(t, second.Pagination.HasNext)
	assert.True(t, first.Items[2].RecordedAt.After(second.Items[0].RecordedAt))

	_, err = env.revenue.ListRevenue(env.ctx, nil, RevenueRange{Category: "spa"})
	requireAppError(t, err, http.StatusUnprocessableEntity)

	_, err = env.revenue.ListRevenueCursor(env.ctx, &pagination.CursorParams{Cursor: "%%%"}, RevenueRange{})
	requireAppError(t, err, http.StatusBadRequest)
}
