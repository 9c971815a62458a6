package dynamo

import (
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
)

const userKey = "userId"

type userRepo struct {
	api   API
	table string
	now   func() time.Time
}

// NewUserRepository создаёт UserRepository поверх таблицы пользователей.
func NewUserRepository(api API, table string) repo.UserRepository {
	return &userRepo{api: api, table: table, now: model.Now}
}

func (r *userRepo) Create(ctx context.Context, email, name string) (*model.User, error) {
	now := r.now()
	u := &model.User{ID: uuid.NewString(), Email: email, Name: name, CreatedAt: now, UpdatedAt: now}
	if err := putItem(ctx, r.api, r.table, newUserItem(u)); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var it userItem
	ok, err := getItem(ctx, r.api, r.table, userKey, id, &it)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repo.ErrNotFound
	}
	return it.toModel()
}

// List сканирует таблицу целиком: у пользователей нет владельца для индекса.
func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	items, err := scanAll[userItem](ctx, r.api, r.table)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(items))
	for _, it := range items {
		u, err := it.toModel()
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	u := &updateSet{}
	if patch.Email != nil {
		u.set("email", *patch.Email)
	}
	if patch.Name != nil {
		u.set("name", *patch.Name)
	}
	u.set("updatedAt", formatTime(r.now()))

	var it userItem
	if err := updateItem(ctx, r.api, r.table, userKey, id, u, &it); err != nil {
		return nil, err
	}
	return it.toModel()
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, r.api, r.table, userKey, id)
}
