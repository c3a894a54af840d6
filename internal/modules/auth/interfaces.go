package auth

import (
	"context"

	"sigmagram/internal/domain"
	"sigmagram/internal/pkg/jwt"
)

// UserRepositoryInterface — only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	SetRefreshToken(ctx context.Context, userID, token string) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenService issues and verifies the session tokens.
type TokenService interface {
	GenerateAccess(userID, username string) (string, error)
	GenerateRefresh(userID, username string) (string, error)
	VerifyRefresh(token string) (*jwt.Claims, error)
}
