package likes

import (
	"context"
	"errors"

	"sigmagram/internal/database"
	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// Service contains the like/unlike protocol. Unlike the follow path, liking
// does not verify the target post exists first; a like against a missing
// post simply creates the row and bumps nothing visible.
type Service struct {
	likes LikeRepositoryInterface
}

func NewService(likes LikeRepositoryInterface) *Service {
	return &Service{likes: likes}
}

// LikePost checks for an existing like, then creates the like and increments
// likes_count in one transaction. A racing duplicate insert loses on the
// unique index and maps to ErrAlreadyLiked.
func (s *Service) LikePost(ctx context.Context, userID, postID string) (*domain.Like, error) {
	if _, err := s.likes.Get(ctx, userID, postID); err == nil {
		return nil, ErrAlreadyLiked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	like := &domain.Like{UserID: userID, PostID: postID}
	if err := s.likes.CreateWithCount(ctx, like); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}
	return like, nil
}

// UnlikePost deletes the like and decrements likes_count transactionally.
// Unliking a post the user never liked leaves the counter unchanged.
func (s *Service) UnlikePost(ctx context.Context, userID, postID string) error {
	if _, err := s.likes.Get(ctx, userID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLikeNotFound
		}
		return err
	}

	if err := s.likes.DeleteWithCount(ctx, userID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLikeNotFound
		}
		return err
	}
	return nil
}
