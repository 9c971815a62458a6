package service

import (
	"Reminder/internal/blob"
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// мок для repo.TodoRepository
type mockTodoRepo struct{ mock.Mock }

func (m *mockTodoRepo) Create(ctx context.Context, userID string, in model.NewTodo) (*model.Todo, error) {
	args := m.Called(ctx, userID, in)
	if t, ok := args.Get(0).(*model.Todo); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepo) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*model.Todo); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepo) ListByOwner(ctx context.Context, userID string) ([]model.Todo, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Todo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepo) Update(ctx context.Context, id string, patch model.TodoPatch) (*model.Todo, error) {
	args := m.Called(ctx, id, patch)
	if t, ok := args.Get(0).(*model.Todo); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.TodoRepository = (*mockTodoRepo)(nil)

// мок для blob.Store
type mockStore struct{ mock.Mock }

func (m *mockStore) IssueUploadURL(ctx context.Context, key, contentType string) (string, error) {
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStore) IssueDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockStore) PublicURL(key string) string {
	return "http://localhost:4566/reminder-images/" + key
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var _ blob.Store = (*mockStore)(nil)

type countingRecorder struct {
	slots, cleanupFailures int
}

func (*countingRecorder) RecordRequest(string, string, int, time.Duration) {}
func (c *countingRecorder) RecordImageSlot() { c.slots++ }
func (c *countingRecorder) RecordCleanupFailure() { c.cleanupFailures++ }
