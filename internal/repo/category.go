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

type categoryRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCategoryRepository создаёт gorm-реализацию CategoryRepository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db, now: model.Now}
}

func (r *categoryRepo) Create(ctx context.Context, userID, name string, color *string) (*model.Category, error) {
	now := r.now()
	c := &model.Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return &c, nil
}

func (r *categoryRepo) ListByOwner(ctx context.Context, userID string) ([]model.Category, error) {
	list := make([]model.Category, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list categories of %s: %w", userID, err)
	}
	return list, nil
}

func (r *categoryRepo) Update(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	updates := map[string]any{"updated_at": r.now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	setOptional(updates, "color", patch.Color)
	if err := updateByID(ctx, r.db, &model.Category{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

// setOptional переносит поле патча в updates: значение или NULL при очистке.
func setOptional(updates map[string]any, column string, o model.Optional[string]) {
	if !o.Set {
		return
	}
	if o.Cleared() {
		updates[column] = nil
		return
	}
	updates[column] = o.Value
}
