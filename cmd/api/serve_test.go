package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/innkeeper-api/internal/config"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/database"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/repository"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/routes"
	"github.com/sangkips/innkeeper-api/pkg/printer"
	"github.com/sangkips/innkeeper-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func setupRouter(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:  config.AppConfig{Name: "innkeeper-api", Env: "test"},
		Seed: config.SeedConfig{PropertyName: "Sea View", AdminEmail: "Owner@SeaView.in", AdminPassword: "secret123"},
		Printer: config.PrinterConfig{
			Type:      "none",
			CharWidth: 32,
		},
	}

	db, err := database.NewSQLiteDB(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	_, err = database.SeedDefaultData(db, &cfg.Seed)
	require.NoError(t, err)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	router := routes.Setup(buildHandlers(db, nil, printer.NewNullPrinter(), jwtManager, cfg), &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: repository.NewIdempotencyRepository(db),
	})
	return &apiClient{t: t, router: router}
}

func (a *apiClient) do(method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decodeData(t *testing.T, env envelope, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, target))
}

func TestAPI_BookingLifecycle(t *testing.T) {
	api := setupRouter(t)

	w, _ := api.do(http.MethodGet, "/api/v1/rooms", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := api.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "owner@seaview.in", "password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeData(t, env, &login)
	require.NotEmpty(t, login.AccessToken)
	api.token = login.AccessToken

	w, env = api.do(http.MethodPost, "/api/v1/rooms", map[string]interface{}{
		"number": "101", "type": "Deluxe",
		"price": 5000, "discount": 10, "extra_bed_price": 1000, "tax_gst": 18,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var room struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &room)

	w, env = api.do(http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"room_id": room.ID, "guest_name": "Meera Shah", "extra_bed": true,
		"check_in": "2024-03-01", "check_out": "2024-03-04",
		"advance": 5000, "payment_method": "cash",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var booking struct {
		ID            string  `json:"id"`
		BookingNo     string  `json:"booking_no"`
		Nights        int     `json:"nights"`
		NightlyRate   float64 `json:"nightly_rate"`
		TotalAmount   float64 `json:"total_amount"`
		Advance       float64 `json:"advance"`
		PaymentStatus string  `json:"payment_status"`
	}
	decodeData(t, env, &booking)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 6310.0, booking.NightlyRate)
	assert.Equal(t, 18930.0, booking.TotalAmount)
	assert.Equal(t, "Partial", booking.PaymentStatus)

	w, env = api.do(http.MethodGet, "/api/v1/bookings/number/"+booking.BookingNo, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var byNumber struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &byNumber)
	assert.Equal(t, booking.ID, byNumber.ID)

	w, _ = api.do(http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"room_id": room.ID, "guest_name": "Kabir Rao",
		"check_in": "2024-03-03", "check_out": "2024-03-05",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	payPath := "/api/v1/bookings/" + booking.ID + "/payments"
	payment := map[string]interface{}{"amount": 13930, "method": "upi"}

	w, _ = api.do(http.MethodPost, payPath, payment, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	key := map[string]string{"Idempotency-Key": "pay-101-final"}
	w, env = api.do(http.MethodPost, payPath, payment, key)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := w.Body.String()
	var view struct {
		Booking struct {
			PaymentStatus string  `json:"payment_status"`
			Advance       float64 `json:"advance"`
		} `json:"booking"`
	}
	decodeData(t, env, &view)
	assert.Equal(t, "Paid", view.Booking.PaymentStatus)
	assert.Equal(t, 18930.0, view.Booking.Advance)

	w, _ = api.do(http.MethodPost, payPath, payment, key)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first, w.Body.String())

	w, _ = api.do(http.MethodPost, payPath, map[string]interface{}{"amount": 1, "method": "upi"}, key)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, env = api.do(http.MethodGet, "/api/v1/revenue/summary", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Total float64 `json:"total"`
		Count int64   `json:"count"`
	}
	decodeData(t, env, &summary)
	assert.Equal(t, 18930.0, summary.Total)
	assert.EqualValues(t, 2, summary.Count)

	w, _ = api.do(http.MethodGet, "/api/v1/bookings/"+booking.ID+"/receipt", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = api.do(http.MethodGet, "/api/v1/bookings/"+booking.ID+"/receipt.xlsx", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	w, _ = api.do(http.MethodPost, "/api/v1/bookings/"+booking.ID+"/checkout", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAPI_Health(t *testing.T) {
	api := setupRouter(t)

	w, _ := api.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "innkeeper-api")
}
