package repository

import (
	"context"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// LikeRepository provides DB access for post likes and owns the transactional
// like/unlike counter protocol, mirroring FollowerRepository.
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Get(ctx context.Context, userID, postID string) (*domain.Like, error) {
	var l domain.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// CreateWithCount inserts the like and increments the post's likes_count in
// one transaction.
func (r *LikeRepository) CreateWithCount(ctx context.Context, l *domain.Like) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Post{}).
			Where("id = ?", l.PostID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error
	})
}

// DeleteWithCount removes the like and decrements likes_count in one
// transaction; gorm.ErrRecordNotFound when the like does not exist.
func (r *LikeRepository) DeleteWithCount(ctx context.Context, userID, postID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&domain.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error
	})
}
