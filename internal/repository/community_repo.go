package repository

import (
	"context"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// CommunityRepository provides DB access for communities.
type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

func (r *CommunityRepository) Create(ctx context.Context, c *domain.Community) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommunityRepository) GetByID(ctx context.Context, id string) (*domain.Community, error) {
	var c domain.Community
	err := r.db.WithContext(ctx).Preload("Creator").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommunityRepository) List(ctx context.Context) ([]domain.Community, error) {
	var communities []domain.Community
	err := r.db.WithContext(ctx).Preload("Creator").Find(&communities).Error
	return communities, err
}

func (r *CommunityRepository) Update(ctx context.Context, c *domain.Community) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CommunityRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Community{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
