package repo

import (
	"Reminder/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type todoRepo struct {
	db       *gorm.DB
	imageURL ImageURLFunc
	now      func() time.Time
}

// NewTodoRepository создаёт gorm-реализацию TodoRepository.
// imageURL используется для вычисления Todo.ImageURL при чтении.
func NewTodoRepository(db *gorm.DB, imageURL ImageURLFunc) TodoRepository {
	return &todoRepo{db: db, imageURL: imageURL, now: model.Now}
}

func (r *todoRepo) Create(ctx context.Context, userID string, in model.NewTodo) (*model.Todo, error) {
	now := r.now()
	t := &model.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return t, nil
}

func (r *todoRepo) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	var t model.Todo
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get todo %s: %w", id, err)
	}
	ApplyImageURL(&t, r.imageURL)
	return &t, nil
}

func (r *todoRepo) ListByOwner(ctx context.Context, userID string) ([]model.Todo, error) {
	list := make([]model.Todo, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list todos of %s: %w", userID, err)
	}
	for i := range list {
		ApplyImageURL(&list[i], r.imageURL)
	}
	return list, nil
}

func (r *todoRepo) Update(ctx context.Context, id string, patch model.TodoPatch) (*model.Todo, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	updates := map[string]any{"updated_at": r.now()}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}
	setOptional(updates, "description", patch.Description)
	setOptional(updates, "category_id", patch.CategoryID)
	setOptional(updates, "due_date", patch.DueDate)
	setOptional(updates, "image_key", patch.ImageKey)
	if err := updateByID(ctx, r.db, &model.Todo{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *todoRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}
