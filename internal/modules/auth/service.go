package auth

import (
	"context"
	"errors"
	"time"

	"sigmagram/internal/database"
	"sigmagram/internal/domain"
	"sigmagram/internal/pkg/password"

	"gorm.io/gorm"
)

// Service contains all business logic for authentication. It is the only
// writer of User.RefreshToken; writes are idempotent overwrites (last write
// wins), which is fine because each user has at most one active session.
type Service struct {
	users  UserRepositoryInterface
	tokens TokenService
}

func NewService(users UserRepositoryInterface, tokens TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Signup creates the user and opens a session. A username collision surfaces
// from the store as a unique-constraint violation and is translated to
// ErrCredentialsTaken; no second row is created.
func (s *Service) Signup(ctx context.Context, req CredentialsRequest) (*TokenPair, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrCredentialsTaken
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Signin verifies credentials and opens a session. Unknown username and
// wrong password return the identical error.
func (s *Service) Signin(ctx context.Context, req CredentialsRequest) (*TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialsIncorrect
		}
		return nil, err
	}

	if !password.Verify(user.PasswordHash, req.Password) {
		return nil, ErrCredentialsIncorrect
	}

	return s.issueTokens(ctx, user)
}

// Logout clears the stored refresh token if one is set. Always succeeds:
// logging out an already logged-out user is a no-op.
func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.users.ClearRefreshToken(ctx, userID)
}

// RenewAccessToken mints a new access token against the stored refresh
// token. The refresh token itself is left untouched: this is deliberately
// not a rotation-on-use scheme.
func (s *Service) RenewAccessToken(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrMissingUserID
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnauthenticated
		}
		return "", err
	}
	if user.RefreshToken == nil || *user.RefreshToken == "" {
		return "", ErrUnauthenticated
	}

	claims, err := s.tokens.VerifyRefresh(*user.RefreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	// Expiry is enforced here, not in the token service, so that expired
	// and tampered refresh tokens map to distinct errors.
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return "", ErrRefreshExpired
	}

	// The new access token is bound to the stored identity, not to whatever
	// the stale claims carry.
	return s.tokens.GenerateAccess(user.ID, user.Username)
}

// GetUserByID is a passthrough lookup with no auth side effects.
func (s *Service) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccess(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefresh(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	// Persisting the new refresh token invalidates the previous one: at
	// most one valid refresh token per user at any time.
	if err := s.users.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
