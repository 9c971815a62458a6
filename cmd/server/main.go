package main

import (
	"Reminder/internal/awsconf"
	"Reminder/internal/blob"
	"Reminder/internal/config"
	"Reminder/internal/handlers"
	"Reminder/internal/metrics"
	"Reminder/internal/middleware"
	"Reminder/internal/repo"
	"Reminder/internal/repo/dynamo"
	"Reminder/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type repositories struct {
	users      repo.UserRepository
	categories repo.CategoryRepository
	todos      repo.TodoRepository
}

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := newLogger(cfg.Production)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsconf.Load(ctx, awsconf.Options{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		sugar.Fatalw("failed to load aws config", "error", err)
	}

	store := blob.NewS3Store(blob.NewS3Client(awsCfg, cfg.S3Endpoint), blob.Options{
		Bucket:         cfg.S3Bucket,
		Endpoint:       cfg.S3Endpoint,
		PublicEndpoint: cfg.S3PublicEndpoint,
		URLTTL:         cfg.UploadURLTTL,
	})

	repos, err := openRepositories(ctx, cfg, awsCfg, store.PublicURL)
	if err != nil {
		sugar.Fatalw("failed to initialize storage", "backend", cfg.StoreBackend, "error", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	svc := handlers.Services{
		Users:      service.NewUserService(repos.users),
		Categories: service.NewCategoryService(repos.categories),
		Todos:      service.NewTodoService(repos.todos, store, sugar, collector),
	}
	h := handlers.NewHandler(svc, sugar, cfg, collector, reg)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"StoreBackend", cfg.StoreBackend,
		"S3Endpoint", cfg.S3Endpoint,
		"S3PublicEndpoint", cfg.S3PublicEndpoint,
		"Bucket", cfg.S3Bucket,
		"RateLimitRPS", cfg.RateLimitRPS,
	)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	case <-ctx.Done():
		sugar.Infow("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("graceful shutdown failed", "error", err)
		}
	}
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// openRepositories выбирает хранилище записей по STORE_BACKEND.
func openRepositories(ctx context.Context, cfg *config.Config, awsCfg aws.Config, imageURL repo.ImageURLFunc) (*repositories, error) {
	switch cfg.StoreBackend {
	case config.BackendSQL:
		db, err := repo.InitDB(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return &repositories{
			users:      repo.NewUserRepository(db),
			categories: repo.NewCategoryRepository(db),
			todos:      repo.NewTodoRepository(db, imageURL),
		}, nil
	case config.BackendDynamo:
		client := dynamo.NewClient(awsCfg, cfg.DynamoEndpoint)
		tables := dynamo.Tables{Users: cfg.UsersTable, Categories: cfg.CategoriesTable, Todos: cfg.TodosTable}
		if cfg.CreateTables {
			if err := dynamo.EnsureTables(ctx, client, tables); err != nil {
				return nil, err
			}
		}
		return &repositories{
			users:      dynamo.NewUserRepository(client, tables.Users),
			categories: dynamo.NewCategoryRepository(client, tables.Categories),
			todos:      dynamo.NewTodoRepository(client, tables.Todos, imageURL),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
