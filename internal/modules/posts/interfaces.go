package posts

import (
	"context"

	"sigmagram/internal/domain"
)

// PostRepositoryInterface — only the methods this service uses.
type PostRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	ListByCommunity(ctx context.Context, communityID string, skip, take int) ([]domain.Post, error)
	ListByCommunities(ctx context.Context, communityIDs []string, skip, take int) ([]domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
}

// FollowReader resolves which communities feed a user's timeline.
type FollowReader interface {
	FollowedCommunityIDs(ctx context.Context, userID string) ([]string, error)
}

// LikeReader answers whether the viewer liked a given post.
type LikeReader interface {
	Exists(ctx context.Context, userID, postID string) (bool, error)
}
