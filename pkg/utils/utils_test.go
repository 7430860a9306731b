package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	s := session.Session{
		UserID:     uuid.New(),
		PropertyID: uuid.New(),
		Email:      "desk@hotel.in",
		Role:       session.RoleStaff,
	}

	token, expiresAt, err := m.GenerateAccessToken(s)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, s, claims.Session())
}

func TestJWTManager_RejectsForeignSecret(t *testing.T) {
	token, _, err := NewJWTManager("a", time.Hour).GenerateAccessToken(session.Session{UserID: uuid.New(), PropertyID: uuid.New()})
	require.NoError(t, err)

	_, err = NewJWTManager("b", time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	token, _, err := m.GenerateAccessToken(session.Session{UserID: uuid.New(), PropertyID: uuid.New()})
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsTokenWithoutProperty(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	token, _, err := m.GenerateAccessToken(session.Session{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateBookingNo(t *testing.T) {
	at := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	no := GenerateBookingNo("SV", at)
	assert.True(t, strings.HasPrefix(no, "SV-240315-"))
	assert.Len(t, no, len("SV-240315-")+8)
	assert.NotEqual(t, no, GenerateBookingNo("SV", at))

	assert.True(t, strings.HasPrefix(GenerateBookingNo("", at), "BK-"))
	assert.Equal(t, "RCPT-SV-1", GenerateReceiptNo("SV-1"))
}
