package handlers_test

import (
	"Reminder/internal/config"
	"Reminder/internal/handlers"
	"Reminder/internal/metrics"
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"Reminder/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore объектное хранилище в памяти: запоминает выданные ссылки и удаления.
type fakeStore struct {
	mu        sync.Mutex
	uploads   []string
	deleted   []string
	deleteErr error
}

func (f *fakeStore) IssueUploadURL(_ context.Context, key, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, key)
	return "http://localhost:4566/reminder-images/" + key + "?X-Amz-Signature=put&ct=" + contentType, nil
}

func (f *fakeStore) IssueDownloadURL(_ context.Context, key string) (string, error) {
	return "http://localhost:4566/reminder-images/" + key + "?X-Amz-Signature=get", nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "http://localhost:4566/reminder-images/" + key
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

type testServer struct {
	router http.Handler
	store  *fakeStore
	todos  repo.TodoRepository
}

// newTestServer полный роутер поверх in-memory SQLite и fakeStore
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := &fakeStore{}
	todos := repo.NewTodoRepository(db, store.PublicURL)
	return &testServer{
		router: newRouter(repo.NewUserRepository(db), repo.NewCategoryRepository(db), todos, store, &config.Config{}),
		store:  store,
		todos:  todos,
	}
}

func newRouter(users repo.UserRepository, cats repo.CategoryRepository, todos repo.TodoRepository, store *fakeStore, cfg *config.Config) http.Handler {
	logger := zap.NewNop().Sugar()
	reg := prometheus.NewRegistry()
	rec := metrics.NewCollector(reg)
	svc := handlers.Services{
		Users:      service.NewUserService(users),
		Categories: service.NewCategoryService(cats),
		Todos:      service.NewTodoService(todos, store, logger, rec),
	}
	return handlers.NewHandler(svc, logger, cfg, rec, reg).Router
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

type errorBody struct {
	Error   string `json:"error"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func (e errorBody) fields() []string {
	out := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		out = append(out, d.Field)
	}
	return out
}

func (s *testServer) createTodo(t *testing.T, body map[string]any) model.Todo {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/todos", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[model.Todo](t, rr)
}
