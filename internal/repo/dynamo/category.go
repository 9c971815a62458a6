package dynamo

import (
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
)

const categoryKey = "categoryId"

type categoryRepo struct {
	api   API
	table string
	now   func() time.Time
}

// NewCategoryRepository создаёт CategoryRepository поверх таблицы категорий.
func NewCategoryRepository(api API, table string) repo.CategoryRepository {
	return &categoryRepo{api: api, table: table, now: model.Now}
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
	if err := putItem(ctx, r.api, r.table, newCategoryItem(c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var it categoryItem
	ok, err := getItem(ctx, r.api, r.table, categoryKey, id, &it)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repo.ErrNotFound
	}
	return it.toModel()
}

func (r *categoryRepo) ListByOwner(ctx context.Context, userID string) ([]model.Category, error) {
	items, err := queryByOwner[categoryItem](ctx, r.api, r.table, userID, false)
	if err != nil {
		return nil, err
	}
	list := make([]model.Category, 0, len(items))
	for _, it := range items {
		c, err := it.toModel()
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, nil
}

func (r *categoryRepo) Update(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	u := &updateSet{}
	if patch.Name != nil {
		u.set("name", *patch.Name)
	}
	u.optional("color", patch.Color)
	u.set("updatedAt", formatTime(r.now()))

	var it categoryItem
	if err := updateItem(ctx, r.api, r.table, categoryKey, id, u, &it); err != nil {
		return nil, err
	}
	return it.toModel()
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.api, r.table, categoryKey, id)
}
