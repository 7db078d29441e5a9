package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/promptforge/promptforge-go/internal/crypto"
	"github.com/promptforge/promptforge-go/internal/model"
	"github.com/promptforge/promptforge-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateIdentity  = errors.New("username or email already taken")
)

// UserStore is the persistence contract the auth service depends on.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error)
	RecordLoginAttempt(ctx context.Context, userID int64, success bool) error
}

// AuthService handles registration and login.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns an auth token.
// The existence pre-check is only the fast-path duplicate error; the
// database unique constraints remain the authoritative guard, so a
// concurrent duplicate insert still comes back as ErrDuplicateIdentity.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	_, err := s.users.FindByEmailOrUsername(ctx, req.Email, req.Username)
	if err == nil {
		return model.AuthResponse{}, ErrDuplicateIdentity
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return model.AuthResponse{}, ErrDuplicateIdentity
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(user)
}

// Login authenticates a user and returns an auth token. Every attempt
// against an existing account is recorded in the audit trail without
// gating the response.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}

	s.recordAttempt(user.ID, match)

	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// recordAttempt writes the login audit row fire-and-forget: the outcome
// never delays or fails the login response, a write failure is only logged.
func (s *AuthService) recordAttempt(userID int64, success bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.users.RecordLoginAttempt(ctx, userID, success); err != nil {
			slog.Warn("recording login attempt failed", "user_id", userID, "error", err)
		}
	}()
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}
