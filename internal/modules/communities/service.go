package communities

import (
	"context"
	"errors"

	"sigmagram/internal/database"
	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// Service contains community CRUD and the follow/unfollow protocol.
type Service struct {
	communities CommunityRepositoryInterface
	followers   FollowerRepositoryInterface
}

func NewService(communities CommunityRepositoryInterface, followers FollowerRepositoryInterface) *Service {
	return &Service{communities: communities, followers: followers}
}

func (s *Service) Create(ctx context.Context, creatorID string, req CreateCommunityRequest) (*domain.Community, error) {
	community := &domain.Community{
		Category:    req.Category,
		Description: req.Description,
		HomePhoto:   req.HomePhoto,
		CreatorID:   creatorID,
	}
	if err := s.communities.Create(ctx, community); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrCategoryTaken
		}
		return nil, err
	}
	return community, nil
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Community, error) {
	return s.communities.List(ctx)
}

// FindOne returns the community together with the viewer's follow status.
// viewerID may be empty, in which case IsFollowed stays false.
func (s *Service) FindOne(ctx context.Context, id, viewerID string) (*CommunityResponse, error) {
	community, err := s.communities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}

	resp := &CommunityResponse{Community: *community}
	if viewerID != "" {
		if _, err := s.followers.Get(ctx, viewerID, id); err == nil {
			resp.IsFollowed = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, id, userID string, req UpdateCommunityRequest) (*domain.Community, error) {
	community, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		community.Category = *req.Category
	}
	if req.Description != nil {
		community.Description = *req.Description
	}
	if req.HomePhoto != nil {
		community.HomePhoto = *req.HomePhoto
	}

	if err := s.communities.Update(ctx, community); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrCategoryTaken
		}
		return nil, err
	}
	return community, nil
}

func (s *Service) Remove(ctx context.Context, id, userID string) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.communities.Delete(ctx, id)
}

// Follow runs the relation counter protocol: target existence check,
// duplicate check, then transactional create + increment. Two racing follow
// calls for the same pair are serialized by the composite unique index; the
// loser surfaces as ErrAlreadyFollowing.
func (s *Service) Follow(ctx context.Context, userID, communityID string) (*domain.CommunityFollower, error) {
	if _, err := s.communities.GetByID(ctx, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}

	if _, err := s.followers.Get(ctx, userID, communityID); err == nil {
		return nil, ErrAlreadyFollowing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	follow := &domain.CommunityFollower{UserID: userID, CommunityID: communityID}
	if err := s.followers.CreateWithCount(ctx, follow); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}
	return follow, nil
}

// Unfollow deletes the relation and decrements the counter transactionally.
// Unfollowing a community the user does not follow leaves the counter
// unchanged.
func (s *Service) Unfollow(ctx context.Context, userID, communityID string) error {
	if _, err := s.followers.Get(ctx, userID, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFollowing
		}
		return err
	}

	if err := s.followers.DeleteWithCount(ctx, userID, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFollowing
		}
		return err
	}
	return nil
}

func (s *Service) getOwned(ctx context.Context, id, userID string) (*domain.Community, error) {
	community, err := s.communities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}
	if community.CreatorID != userID {
		return nil, ErrNotCommunityOwner
	}
	return community, nil
}
