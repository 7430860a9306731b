package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
	"github.com/sangkips/innkeeper-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := setupEnv(t)

	out, err := env.auth.Login(context.Background(), &LoginInput{Email: " Asha@SeaView.in ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, env.admin.ID, out.User.ID)
	assert.NotEmpty(t, out.AccessToken)

	claims, err := env.auth.jwtManager.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	sess := claims.Session()
	assert.Equal(t, env.property.ID, sess.PropertyID)
	assert.Equal(t, session.RoleAdmin, sess.Role)

	_, err = env.auth.Login(context.Background(), &LoginInput{Email: "asha@seaview.in", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	_, err = env.auth.Login(context.Background(), &LoginInput{Email: "nobody@seaview.in", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestCreateUser(t *testing.T) {
	env := setupEnv(t)

	_, err := env.auth.CreateUser(env.staffCtx, &CreateUserInput{Email: "x@seaview.in", Password: "secret123"})
	requireAppError(t, err, http.StatusForbidden)

	user, err := env.auth.CreateUser(env.ctx, &CreateUserInput{FirstName: "Nina", Email: "Nina@SeaView.in", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "nina@seaview.in", user.Email)
	assert.Equal(t, session.RoleStaff, user.Role)
	assert.Equal(t, env.property.ID, user.PropertyID)
	assert.True(t, utils.CheckPasswordHash("secret123", user.Password))

	_, err = env.auth.CreateUser(env.ctx, &CreateUserInput{Email: "nina@seaview.in", Password: "secret123"})
	requireAppError(t, err, http.StatusConflict)

	_, err = env.auth.CreateUser(env.ctx, &CreateUserInput{Email: "o@seaview.in", Password: "secret123", Role: "owner"})
	requireAppError(t, err, http.StatusUnprocessableEntity)

	me, err := env.auth.Me(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha Naik", me.FullName())
}
