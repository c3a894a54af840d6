package comments

import (
	"context"
	"errors"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// Service contains comment CRUD. Creation and deletion pair with the post's
// comments_count inside one transaction; updates touch only the comment row.
type Service struct {
	comments CommentRepositoryInterface
}

func NewService(comments CommentRepositoryInterface) *Service {
	return &Service{comments: comments}
}

// Create inserts the comment and increments the post's comments_count
// atomically. Comments are not unique per user, so there is no duplicate
// pre-check.
func (s *Service) Create(ctx context.Context, authorID string, req CreateCommentRequest) (*domain.Comment, error) {
	comment := &domain.Comment{
		Content:  req.Content,
		AuthorID: authorID,
		PostID:   req.PostID,
	}
	if err := s.comments.CreateWithCount(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) FindAllByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

func (s *Service) Update(ctx context.Context, id, userID string, req UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Remove deletes the comment and decrements the post's comments_count
// atomically.
func (s *Service) Remove(ctx context.Context, id, userID string) error {
	comment, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.comments.DeleteWithCount(ctx, comment.ID, comment.PostID)
}

func (s *Service) getOwned(ctx context.Context, id, userID string) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, ErrNotCommentAuthor
	}
	return comment, nil
}
