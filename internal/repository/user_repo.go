package repository

import (
	"context"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// UserRepository provides DB access for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) SearchByUsername(ctx context.Context, username string) ([]domain.User, error) {
	var users []domain.User
	q := r.db.WithContext(ctx)
	if username != "" {
		q = q.Where("username LIKE ?", "%"+username+"%")
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetRefreshToken overwrites the stored refresh token. Last write wins: each
// user has at most one active session.
func (r *UserRepository) SetRefreshToken(ctx context.Context, userID, token string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Update("refresh_token", token).Error
}

// ClearRefreshToken clears the stored refresh token only when one is set.
// Clearing an already-cleared token is a no-op, not an error.
func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND refresh_token IS NOT NULL", userID).
		Update("refresh_token", nil).Error
}
