package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
	"github.com/sangkips/innkeeper-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// Login authenticates a user and issues an access token carrying their
// property. The token is the only place the session lives between requests.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtManager.GenerateAccessToken(session.Session{
		UserID:     user.ID,
		PropertyID: user.PropertyID,
		Email:      user.Email,
		Role:       user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// CreateUserInput represents a new front-desk account
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// CreateUser adds an operator to the admin's own property
func (s *AuthService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	sess, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	role := input.Role
	if role == "" {
		role = session.RoleStaff
	}
	if role != session.RoleStaff && role != session.RoleAdmin {
		return nil, apperror.NewFieldError("role", "must be admin or staff")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		PropertyID: sess.PropertyID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      email,
		Password:   hashed,
		Role:       role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Me returns the logged-in user
func (s *AuthService) Me(ctx context.Context) (*entity.User, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.getUser(ctx, sess.UserID)
}

func (s *AuthService) getUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
