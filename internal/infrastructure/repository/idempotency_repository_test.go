package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository(t *testing.T) {
	db, err := database.NewSQLiteDB(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &idempotencyRepository{db: db, now: func() time.Time { return now }}

	propertyID, otherID := uuid.New(), uuid.New()
	ctx := session.WithSession(context.Background(), session.Session{UserID: uuid.New(), PropertyID: propertyID})
	otherCtx := session.WithSession(context.Background(), session.Session{UserID: uuid.New(), PropertyID: otherID})

	store := func(body string, expires time.Time) {
		t.Helper()
		require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{
			Key: "pay-1", PropertyID: propertyID, UserID: uuid.New(),
			Endpoint: "POST /api/v1/bookings/:id/payments", RequestHash: "h",
			ResponseCode: 201, ResponseBody: body, ExpiresAt: expires,
		}))
	}

	store(`{"first":true}`, now.Add(time.Hour))
	got, err := repo.GetByKey(ctx, "pay-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"first":true}`, got.ResponseBody)

	missing, err := repo.GetByKey(otherCtx, "pay-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// a live key is never overwritten
	store(`{"second":true}`, now.Add(2*time.Hour))
	got, err = repo.GetByKey(ctx, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, `{"first":true}`, got.ResponseBody)

	now = now.Add(90 * time.Minute)
	expired, err := repo.GetByKey(ctx, "pay-1")
	require.NoError(t, err)
	assert.Nil(t, expired)

	store(`{"third":true}`, now.Add(time.Hour))
	got, err = repo.GetByKey(ctx, "pay-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"third":true}`, got.ResponseBody)

	now = now.Add(2 * time.Hour)
	removed, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
}
