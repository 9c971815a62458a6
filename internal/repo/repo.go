package repo

import (
	"Reminder/internal/model"
	"context"
	"errors"
)

// ErrNotFound: записи с таким идентификатором нет.
var ErrNotFound = errors.New("record not found")

// ImageURLFunc строит публичный URL картинки по ключу в объектном хранилище.
type ImageURLFunc func(key string) string

// UserRepository контракт хранения пользователей.
type UserRepository interface {
	Create(ctx context.Context, email, name string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	// List возвращает всех пользователей.
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository контракт хранения категорий.
type CategoryRepository interface {
	Create(ctx context.Context, userID, name string, color *string) (*model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	// ListByOwner возвращает категории пользователя по возрастанию createdAt.
	ListByOwner(ctx context.Context, userID string) ([]model.Category, error)
	Update(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

// TodoRepository контракт хранения задач.
//
// Все чтения заполняют ImageURL, если у задачи есть ImageKey.
// Update без изменяемых полей ничего не пишет и сводится к GetByID.
// Update несуществующей записи возвращает ErrNotFound и ничего не создаёт.
// Delete идемпотентен.
type TodoRepository interface {
	Create(ctx context.Context, userID string, in model.NewTodo) (*model.Todo, error)
	GetByID(ctx context.Context, id string) (*model.Todo, error)
	// ListByOwner возвращает задачи пользователя, новые первыми.
	ListByOwner(ctx context.Context, userID string) ([]model.Todo, error)
	Update(ctx context.Context, id string, patch model.TodoPatch) (*model.Todo, error)
	Delete(ctx context.Context, id string) error
}

// ApplyImageURL заполняет производное поле ImageURL. В хранилище оно не попадает.
func ApplyImageURL(t *model.Todo, imageURL ImageURLFunc) {
	if t == nil {
		return
	}
	t.ImageURL = ""
	if t.HasImage() && imageURL != nil {
		t.ImageURL = imageURL(*t.ImageKey)
	}
}
