package users

import (
	"context"
	"errors"

	"sigmagram/internal/domain"

	"gorm.io/gorm"
)

// Service is a thin CRUD layer over user profiles. Account creation lives in
// the auth module; deleting an account cascades to owned rows per the
// store's referential rules.
type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

func (s *Service) FindAll(ctx context.Context, search string) ([]domain.User, error) {
	return s.users.SearchByUsername(ctx, search)
}

func (s *Service) FindOne(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error) {
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
