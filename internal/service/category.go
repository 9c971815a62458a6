package service

import (
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
)

// CategoryService операции над категориями.
type CategoryService struct {
	repo repo.CategoryRepository
}

func NewCategoryService(r repo.CategoryRepository) *CategoryService {
	return &CategoryService{repo: r}
}

func (s *CategoryService) Create(ctx context.Context, userID, name string, color *string) (*model.Category, error) {
	return s.repo.Create(ctx, userID, name, color)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]model.Category, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *CategoryService) Update(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete не сбрасывает categoryId у задач: ссылка слабая.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
