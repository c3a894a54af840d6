package users

import (
	"context"

	"sigmagram/internal/domain"
)

// UserRepositoryInterface — only the methods this service uses.
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	SearchByUsername(ctx context.Context, username string) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
