package repository

import (
	"context"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// FollowerRepository provides DB access for community-follower relations and
// owns the transactional follow/unfollow counter protocol: the relation row
// and the denormalized followers_count move together or not at all.
type FollowerRepository struct {
	db *gorm.DB
}

func NewFollowerRepository(db *gorm.DB) *FollowerRepository {
	return &FollowerRepository{db: db}
}

func (r *FollowerRepository) Get(ctx context.Context, userID, communityID string) (*domain.CommunityFollower, error) {
	var f domain.CommunityFollower
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FollowedCommunityIDs lists the ids of communities the user follows, for
// building the personal feed.
func (r *FollowerRepository) FollowedCommunityIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.CommunityFollower{}).
		Where("user_id = ?", userID).
		Pluck("community_id", &ids).Error
	return ids, err
}

// CreateWithCount inserts the follower row and increments the community's
// followers_count in one transaction. A racing duplicate insert fails on the
// composite unique index and rolls the increment back with it.
func (r *FollowerRepository) CreateWithCount(ctx context.Context, f *domain.CommunityFollower) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Community{}).
			Where("id = ?", f.CommunityID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + ?", 1)).Error
	})
}

// DeleteWithCount removes the follower row and decrements followers_count in
// one transaction. Returns gorm.ErrRecordNotFound when no row was deleted so
// the counter is never decremented for a non-existent relation.
func (r *FollowerRepository) DeleteWithCount(ctx context.Context, userID, communityID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND community_id = ?", userID, communityID).
			Delete(&domain.CommunityFollower{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("followers_count", gorm.Expr("followers_count - ?", 1)).Error
	})
}
