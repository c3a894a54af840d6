package repository

import (
	"context"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// CommentRepository provides DB access for comments. Comment create/delete
// pairs with the post's comments_count inside one transaction.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// CreateWithCount inserts the comment and increments the post's
// comments_count in one transaction. No uniqueness pre-check: users may
// comment on the same post any number of times.
func (r *CommentRepository) CreateWithCount(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Post{}).
			Where("id = ?", c.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error
	})
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DeleteWithCount removes the comment and decrements the post's
// comments_count in one transaction.
func (r *CommentRepository) DeleteWithCount(ctx context.Context, id, postID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Comment{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.Post{}).
			Where("id = ?", postID).
			UpdateColumn("comments_count", gorm.Expr("comments_count - ?", 1)).Error
	})
}
