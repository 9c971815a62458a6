package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

// clearEnv обнуляет все переменные, которые читает Config
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PRODUCTION", "STORE_BACKEND", "DATABASE_URI",
		"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"DYNAMODB_ENDPOINT", "DYNAMODB_USERS_TABLE", "DYNAMODB_TODOS_TABLE", "DYNAMODB_CATEGORIES_TABLE",
		"DYNAMODB_CREATE_TABLES", "S3_ENDPOINT", "S3_PUBLIC_ENDPOINT", "S3_BUCKET_NAME", "UPLOAD_URL_TTL",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "BASE_URL", "ENABLE_HTTPS", "CLIENT_CONTEXT_DIR",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.StoreBackend != BackendDynamo {
		t.Fatalf("StoreBackend default expected %q, got %q", BackendDynamo, cfg.StoreBackend)
	}
	if cfg.DatabaseDSN != "reminder.db" {
		t.Fatalf("DatabaseDSN default expected 'reminder.db', got %q", cfg.DatabaseDSN)
	}
	if cfg.UsersTable != "reminder-users" || cfg.TodosTable != "reminder-todos" || cfg.CategoriesTable != "reminder-categories" {
		t.Fatalf("unexpected table defaults: %q %q %q", cfg.UsersTable, cfg.TodosTable, cfg.CategoriesTable)
	}
	if cfg.S3Endpoint != "http://localhost:4566" || cfg.S3PublicEndpoint != cfg.S3Endpoint {
		t.Fatalf("unexpected S3 endpoints: %q %q", cfg.S3Endpoint, cfg.S3PublicEndpoint)
	}
	if cfg.S3Bucket != "reminder-images" {
		t.Fatalf("S3Bucket default expected 'reminder-images', got %q", cfg.S3Bucket)
	}
	if cfg.UploadURLTTL != time.Hour {
		t.Fatalf("UploadURLTTL default expected 1h, got %v", cfg.UploadURLTTL)
	}
	if cfg.AWSAccessKeyID != "test" || cfg.AWSSecretAccessKey != "test" || cfg.AWSRegion != "us-east-1" {
		t.Fatalf("unexpected AWS defaults: %q %q %q", cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.AWSRegion)
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 1 {
		t.Fatalf("rate limit must be off by default, got rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.BaseURL != "localhost:8080" || cfg.ServerURL != "http://localhost:8080" {
		t.Fatalf("unexpected base: %q %q", cfg.BaseURL, cfg.ServerURL)
	}
	if filepath.Base(cfg.ClientContextDir) != "rmcli" {
		t.Fatalf("ClientContextDir default must end with rmcli, got %q", cfg.ClientContextDir)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "sql")
	t.Setenv("DATABASE_URI", "postgres://u:p@db:5432/reminder")
	t.Setenv("S3_ENDPOINT", "http://localstack:4566")
	t.Setenv("S3_PUBLIC_ENDPOINT", "http://localhost:4566")
	t.Setenv("UPLOAD_URL_TTL", "15m")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.StoreBackend != BackendSQL {
		t.Fatalf("StoreBackend expected sql, got %q", cfg.StoreBackend)
	}
	if cfg.DatabaseDSN != "postgres://u:p@db:5432/reminder" {
		t.Fatalf("DatabaseDSN from env expected, got %q", cfg.DatabaseDSN)
	}
	if cfg.S3PublicEndpoint != "http://localhost:4566" {
		t.Fatalf("S3PublicEndpoint expected from env, got %q", cfg.S3PublicEndpoint)
	}
	if cfg.UploadURLTTL != 15*time.Minute {
		t.Fatalf("UploadURLTTL expected 15m, got %v", cfg.UploadURLTTL)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("rate limit expected 5/10, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
}

func TestNewConfig_UnknownBackendFallsBackToDynamo(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "mongo")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.StoreBackend != BackendDynamo {
		t.Fatalf("unknown backend must fallback to %q, got %q", BackendDynamo, cfg.StoreBackend)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	clearEnv(t)
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8080
	t.Setenv("BASE_URL", "http://bad:8080")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8080', got %q", cfg.BaseURL)
	}
}

func TestNewConfig_PortOnlyBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", ":9090")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != ":9090" || cfg.ServerURL != "http://localhost:9090" {
		t.Fatalf("unexpected base for port-only address: %q %q", cfg.BaseURL, cfg.ServerURL)
	}
}
