package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/sangkips/innkeeper-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware_SetsSession(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	want := session.Session{UserID: uuid.New(), PropertyID: uuid.New(), Email: "desk@inn.in", Role: session.RoleStaff}
	token, _, err := jwtManager.GenerateAccessToken(want)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", AuthMiddleware(jwtManager), func(c *gin.Context) {
		got, ok := session.FromContext(c.Request.Context())
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, want.PropertyID, GetPropertyID(c))
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"valid", "Bearer " + token, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"malformed", token, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) { c.Set("user_role", c.GetHeader("X-Role")) }, RequireRole(session.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for role, code := range map[string]int{session.RoleAdmin: http.StatusOK, session.RoleStaff: http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("X-Role", role)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, code, w.Code, role)
	}
}

type memoryKeys struct {
	keys map[string]*entity.IdempotencyKey
}

func (m *memoryKeys) GetByKey(_ context.Context, key string) (*entity.IdempotencyKey, error) {
	return m.keys[key], nil
}

func (m *memoryKeys) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	m.keys[ikey.Key] = ikey
	return nil
}

func (m *memoryKeys) DeleteExpired(context.Context) (int64, error) { return 0, nil }

func TestIdempotencyRequired(t *testing.T) {
	repo := &memoryKeys{keys: map[string]*entity.IdempotencyKey{}}
	calls := 0

	r := gin.New()
	r.POST("/pay",
		func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			c.Set("property_id", uuid.New())
		},
		IdempotencyRequired(IdempotencyConfig{Repo: repo}),
		func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"calls": calls})
		},
	)

	send := func(key, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/pay", strings.NewReader(body))
		if key != "" {
			req.Header.Set(IdempotencyKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusBadRequest, send("", `{"amount":10}`).Code)

	first := send("k1", `{"amount":10}`)
	assert.Equal(t, http.StatusCreated, first.Code)

	replay := send("k1", `{"amount":10}`)
	assert.Equal(t, http.StatusCreated, replay.Code)
	assert.Equal(t, "true", replay.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), replay.Body.String())
	assert.Equal(t, 1, calls)

	assert.Equal(t, http.StatusUnprocessableEntity, send("k1", `{"amount":20}`).Code)
	assert.Equal(t, 1, calls)
}

func TestPropertyRateLimiter(t *testing.T) {
	rl := NewPropertyRateLimiter(RateLimiterConfig{RequestsPerSecond: 0.001, BurstSize: 2, CleanupInterval: time.Hour, EntryTTL: time.Hour})
	defer rl.Stop()

	propertyID := uuid.New()
	r := gin.New()
	r.GET("/", func(c *gin.Context) { c.Set("property_id", propertyID) }, rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, rl.Stats()["active_properties"])
}

func TestRateLimiterConfigFor(t *testing.T) {
	cfg := RateLimiterConfigFor(120, 60)
	assert.Equal(t, 2.0, cfg.RequestsPerSecond)
	assert.Equal(t, 120, cfg.BurstSize)

	assert.Equal(t, DefaultRateLimiterConfig(), RateLimiterConfigFor(0, 60))
}
