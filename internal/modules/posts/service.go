package posts

import (
	"context"
	"errors"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// Service contains post CRUD and the personal feed.
type Service struct {
	posts     PostRepositoryInterface
	followers FollowReader
	likes     LikeReader
}

func NewService(posts PostRepositoryInterface, followers FollowReader, likes LikeReader) *Service {
	return &Service{posts: posts, followers: followers, likes: likes}
}

func (s *Service) Create(ctx context.Context, authorID string, req CreatePostRequest) (*domain.Post, error) {
	post := &domain.Post{
		Content:     req.Content,
		Photo:       req.Photo,
		AuthorID:    authorID,
		CommunityID: req.CommunityID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// FindAll returns posts for the viewer. With a community id it lists that
// community's posts; without one it builds the feed from the communities the
// viewer follows (empty feed when following none). Each post is annotated
// with the viewer's like status.
func (s *Service) FindAll(ctx context.Context, viewerID string, skip, take int, communityID string) ([]PostResponse, error) {
	var (
		posts []domain.Post
		err   error
	)

	if communityID != "" {
		posts, err = s.posts.ListByCommunity(ctx, communityID, skip, take)
	} else {
		var ids []string
		ids, err = s.followers.FollowedCommunityIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []PostResponse{}, nil
		}
		posts, err = s.posts.ListByCommunities(ctx, ids, skip, take)
	}
	if err != nil {
		return nil, err
	}

	return s.withLikeStatus(ctx, posts, viewerID)
}

func (s *Service) FindOne(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) Update(ctx context.Context, id, userID string, req UpdatePostRequest) (*domain.Post, error) {
	post, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Photo != nil {
		post.Photo = *req.Photo
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) Remove(ctx context.Context, id, userID string) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

func (s *Service) withLikeStatus(ctx context.Context, posts []domain.Post, viewerID string) ([]PostResponse, error) {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		liked, err := s.likes.Exists(ctx, viewerID, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, PostResponse{Post: p, IsLiked: liked})
	}
	return out, nil
}

func (s *Service) getOwned(ctx context.Context, id, userID string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrNotPostAuthor
	}
	return post, nil
}
