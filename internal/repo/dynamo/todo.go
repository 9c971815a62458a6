package dynamo

import (
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
)

const todoKey = "todoId"

type todoRepo struct {
	api      API
	table    string
	imageURL repo.ImageURLFunc
	now      func() time.Time
}

// NewTodoRepository создаёт TodoRepository поверх таблицы задач.
func NewTodoRepository(api API, table string, imageURL repo.ImageURLFunc) repo.TodoRepository {
	return &todoRepo{api: api, table: table, imageURL: imageURL, now: model.Now}
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
	if err := putItem(ctx, r.api, r.table, newTodoItem(t)); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *todoRepo) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	var it todoItem
	ok, err := getItem(ctx, r.api, r.table, todoKey, id, &it)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repo.ErrNotFound
	}
	return r.decode(it)
}

func (r *todoRepo) ListByOwner(ctx context.Context, userID string) ([]model.Todo, error) {
	items, err := queryByOwner[todoItem](ctx, r.api, r.table, userID, true)
	if err != nil {
		return nil, err
	}
	list := make([]model.Todo, 0, len(items))
	for _, it := range items {
		t, err := r.decode(it)
		if err != nil {
			return nil, err
		}
		list = append(list, *t)
	}
	return list, nil
}

func (r *todoRepo) Update(ctx context.Context, id string, patch model.TodoPatch) (*model.Todo, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	u := &updateSet{}
	if patch.Title != nil {
		u.set("title", *patch.Title)
	}
	if patch.Completed != nil {
		u.set("completed", *patch.Completed)
	}
	u.optional("description", patch.Description)
	u.optional("categoryId", patch.CategoryID)
	u.optional("dueDate", patch.DueDate)
	u.optional("imageKey", patch.ImageKey)
	u.set("updatedAt", formatTime(r.now()))

	var it todoItem
	if err := updateItem(ctx, r.api, r.table, todoKey, id, u, &it); err != nil {
		return nil, err
	}
	return r.decode(it)
}

func (r *todoRepo) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.api, r.table, todoKey, id)
}

func (r *todoRepo) decode(it todoItem) (*model.Todo, error) {
	t, err := it.toModel()
	if err != nil {
		return nil, err
	}
	repo.ApplyImageURL(t, r.imageURL)
	return t, nil
}
