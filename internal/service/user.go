package service

import (
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
)

// UserService операции над пользователями.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

func (s *UserService) Create(ctx context.Context, email, name string) (*model.User, error) {
	return s.repo.Create(ctx, email, name)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete не трогает категории и задачи пользователя.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
