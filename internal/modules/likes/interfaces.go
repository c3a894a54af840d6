package likes

import (
	"context"

	"sigmagram/internal/domain"
)

// LikeRepositoryInterface covers the like relation and its counter protocol.
type LikeRepositoryInterface interface {
	Get(ctx context.Context, userID, postID string) (*domain.Like, error)
	CreateWithCount(ctx context.Context, l *domain.Like) error
	DeleteWithCount(ctx context.Context, userID, postID string) error
}
