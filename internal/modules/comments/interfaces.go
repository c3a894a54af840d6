package comments

import (
	"context"

	"sigmagram/internal/domain"
)

// CommentRepositoryInterface — only the methods this service uses.
type CommentRepositoryInterface interface {
	CreateWithCount(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	Update(ctx context.Context, c *domain.Comment) error
	DeleteWithCount(ctx context.Context, id, postID string) error
}
