package service

import (
	"Reminder/internal/blob"
	"Reminder/internal/metrics"
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrNoImage задача есть, но картинки у неё нет.
var ErrNoImage = errors.New("todo has no image")

// ImageSlot ответ на запрос загрузки картинки.
type ImageSlot struct {
	UploadURL string `json:"uploadUrl"`
	ImageKey  string `json:"imageKey"`
	ImageURL  string `json:"imageUrl"`
}

// TodoService операции над задачами и их картинками.
type TodoService struct {
	todos   repo.TodoRepository
	blobs   blob.Store
	logger  *zap.SugaredLogger
	metrics metrics.Recorder
	now     func() time.Time
}

func NewTodoService(todos repo.TodoRepository, blobs blob.Store, logger *zap.SugaredLogger, rec metrics.Recorder) *TodoService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &TodoService{todos: todos, blobs: blobs, logger: logger, metrics: rec, now: time.Now}
}

func (s *TodoService) Create(ctx context.Context, userID string, in model.NewTodo) (*model.Todo, error) {
	return s.todos.Create(ctx, userID, in)
}

func (s *TodoService) Get(ctx context.Context, id string) (*model.Todo, error) {
	return s.todos.GetByID(ctx, id)
}

func (s *TodoService) List(ctx context.Context, userID string) ([]model.Todo, error) {
	return s.todos.ListByOwner(ctx, userID)
}

func (s *TodoService) Update(ctx context.Context, id string, patch model.TodoPatch) (*model.Todo, error) {
	return s.todos.Update(ctx, id, patch)
}

// Delete удаляет задачу, затем её картинку.
// Ошибка удаления картинки только логируется: запись к этому моменту уже удалена.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	t, err := s.todos.GetByID(ctx, id)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	if err := s.todos.Delete(ctx, id); err != nil {
		return err
	}
	if t == nil || !t.HasImage() {
		return nil
	}
	if err := s.blobs.Delete(ctx, *t.ImageKey); err != nil {
		s.metrics.RecordCleanupFailure()
		s.logger.Warnw("failed to delete todo image", "todo_id", id, "image_key", *t.ImageKey, "error", err)
	}
	return nil
}

// RequestImageUpload выдаёт ссылку на загрузку и сразу записывает ключ в задачу.
// Факт загрузки не проверяется: ключ может указывать на несуществующий объект.
func (s *TodoService) RequestImageUpload(ctx context.Context, todoID, userID, fileName, contentType string) (*ImageSlot, error) {
	if _, err := s.todos.GetByID(ctx, todoID); err != nil {
		return nil, err
	}

	key := ImageKey(userID, todoID, s.now(), fileName)
	uploadURL, err := s.blobs.IssueUploadURL(ctx, key, contentType)
	if err != nil {
		return nil, err
	}
	if _, err := s.todos.Update(ctx, todoID, model.TodoPatch{ImageKey: model.Some(key)}); err != nil {
		return nil, err
	}
	s.metrics.RecordImageSlot()

	return &ImageSlot{UploadURL: uploadURL, ImageKey: key, ImageURL: s.blobs.PublicURL(key)}, nil
}

// ImageURL публичная ссылка на картинку задачи, либо подписанная при signed.
func (s *TodoService) ImageURL(ctx context.Context, todoID string, signed bool) (string, error) {
	t, err := s.todos.GetByID(ctx, todoID)
	if err != nil {
		return "", err
	}
	if !t.HasImage() {
		return "", ErrNoImage
	}
	if signed {
		return s.blobs.IssueDownloadURL(ctx, *t.ImageKey)
	}
	return s.blobs.PublicURL(*t.ImageKey), nil
}

// ImageKey ключ объекта: {userId}/{todoId}/{unixMillis}-{fileName}.
func ImageKey(userID, todoID string, at time.Time, fileName string) string {
	return fmt.Sprintf("%s/%s/%d-%s", userID, todoID, at.UnixMilli(), fileName)
}
