package handlers

import (
	"Reminder/internal/config"
	"Reminder/internal/metrics"
	"Reminder/internal/middleware"
	"Reminder/internal/service"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services сервисы, которые обслуживает роутер.
type Services struct {
	Users      *service.UserService
	Categories *service.CategoryService
	Todos      *service.TodoService
}

// NewHandler разводящий для хендлеров.
// gatherer может быть nil, тогда /metrics не регистрируется.
func NewHandler(
	svc Services,
	logger *zap.SugaredLogger,
	cfg *config.Config,
	rec metrics.Recorder,
	gatherer prometheus.Gatherer,
) *Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMetrics(rec))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute).Middleware)
	}

	v := newValidator()
	userHandler := NewUserHandler(svc.Users, logger, v)
	categoryHandler := NewCategoryHandler(svc.Categories, logger, v)
	todoHandler := NewTodoHandler(svc.Todos, logger, v)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))
	}

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.Get)
			r.Patch("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Post("/", categoryHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", categoryHandler.Get)
			r.Patch("/", categoryHandler.Update)
			r.Delete("/", categoryHandler.Delete)
		})
	})

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", todoHandler.List)
		r.Post("/", todoHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", todoHandler.Get)
			r.Patch("/", todoHandler.Update)
			r.Delete("/", todoHandler.Delete)
			r.Post("/image", todoHandler.RequestImageUpload)
			r.Get("/image", todoHandler.GetImage)
		})
	})

	return &Handler{Router: r}
}
