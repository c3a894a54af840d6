package communities

import (
	"context"

	"sigmagram/internal/domain"
)

// CommunityRepositoryInterface — only the methods this service uses.
type CommunityRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Community) error
	GetByID(ctx context.Context, id string) (*domain.Community, error)
	List(ctx context.Context) ([]domain.Community, error)
	Update(ctx context.Context, c *domain.Community) error
	Delete(ctx context.Context, id string) error
}

// FollowerRepositoryInterface covers the follow relation and its counter
// protocol.
type FollowerRepositoryInterface interface {
	Get(ctx context.Context, userID, communityID string) (*domain.CommunityFollower, error)
	CreateWithCount(ctx context.Context, f *domain.CommunityFollower) error
	DeleteWithCount(ctx context.Context, userID, communityID string) error
}
