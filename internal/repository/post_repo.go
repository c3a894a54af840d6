package repository

import (
	"context"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// PostRepository provides DB access for posts.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Community").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) ListByCommunity(ctx context.Context, communityID string, skip, take int) ([]domain.Post, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("community_id = ?", communityID), skip, take)
}

func (r *PostRepository) ListByCommunities(ctx context.Context, communityIDs []string, skip, take int) ([]domain.Post, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("community_id IN ?", communityIDs), skip, take)
}

func (r *PostRepository) list(ctx context.Context, query *gorm.DB, skip, take int) ([]domain.Post, error) {
	var posts []domain.Post
	query = query.
		Preload("Author").
		Preload("Community").
		Order("created_at DESC").
		Offset(skip)
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&posts).Error
	return posts, err
}

func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Post{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
