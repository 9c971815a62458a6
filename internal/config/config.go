package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	BackendDynamo = "dynamodb"
	BackendSQL    = "sql"
)

type Config struct {
	// Server-side settings
	Production   bool   `env:"PRODUCTION"`
	StoreBackend string `env:"STORE_BACKEND"`
	DatabaseDSN  string `env:"DATABASE_URI"`

	AWSRegion          string `env:"AWS_REGION"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	DynamoEndpoint  string `env:"DYNAMODB_ENDPOINT"`
	UsersTable      string `env:"DYNAMODB_USERS_TABLE"`
	TodosTable      string `env:"DYNAMODB_TODOS_TABLE"`
	CategoriesTable string `env:"DYNAMODB_CATEGORIES_TABLE"`
	CreateTables    bool   `env:"DYNAMODB_CREATE_TABLES"`

	S3Endpoint       string        `env:"S3_ENDPOINT"`
	S3PublicEndpoint string        `env:"S3_PUBLIC_ENDPOINT"`
	S3Bucket         string        `env:"S3_BUCKET_NAME"`
	UploadURLTTL     time.Duration `env:"UPLOAD_URL_TTL"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL        string `env:"-"`
	ClientContextDir string `env:"CLIENT_CONTEXT_DIR"`
	Version          bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "хранилище записей: dynamodb или sql")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (для -store=sql)")
	flag.StringVar(&cfg.DynamoEndpoint, "dynamodb-endpoint", cfg.DynamoEndpoint, "endpoint DynamoDB (LocalStack)")
	flag.BoolVar(&cfg.CreateTables, "create-tables", cfg.CreateTables, "создать отсутствующие таблицы DynamoDB при старте")
	flag.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "endpoint S3 для сервера")
	flag.StringVar(&cfg.S3PublicEndpoint, "s3-public-endpoint", cfg.S3PublicEndpoint, "endpoint S3, видимый клиентам")
	flag.StringVar(&cfg.S3Bucket, "bucket", cfg.S3Bucket, "бакет для картинок")
	flag.Float64Var(&cfg.RateLimitRPS, "rps", cfg.RateLimitRPS, "лимит запросов в секунду на IP, 0 выключает")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера в виде host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "клиент обращается к серверу по https")
	// Client flags
	flag.StringVar(&cfg.ClientContextDir, "context-dir", cfg.ClientContextDir, "каталог для текущего пользователя CLI")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.StoreBackend != BackendSQL {
		cfg.StoreBackend = BackendDynamo
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "reminder.db"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if cfg.AWSAccessKeyID == "" && cfg.AWSSecretAccessKey == "" {
		cfg.AWSAccessKeyID = "test"
		cfg.AWSSecretAccessKey = "test"
	}
	if cfg.UsersTable == "" {
		cfg.UsersTable = "reminder-users"
	}
	if cfg.TodosTable == "" {
		cfg.TodosTable = "reminder-todos"
	}
	if cfg.CategoriesTable == "" {
		cfg.CategoriesTable = "reminder-categories"
	}
	if cfg.S3Endpoint == "" {
		cfg.S3Endpoint = "http://localhost:4566"
	}
	if cfg.S3PublicEndpoint == "" {
		cfg.S3PublicEndpoint = cfg.S3Endpoint
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "reminder-images"
	}
	if cfg.UploadURLTTL <= 0 {
		cfg.UploadURLTTL = time.Hour
	}
	if cfg.RateLimitRPS < 0 {
		cfg.RateLimitRPS = 0
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = max(1, int(cfg.RateLimitRPS*2))
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}
	host := cfg.BaseURL
	if host[0] == ':' {
		host = "localhost" + host
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + host
	} else {
		cfg.ServerURL = "http://" + host
	}

	if cfg.ClientContextDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, _ = os.UserHomeDir()
		}
		cfg.ClientContextDir = filepath.Join(dir, "rmcli")
	}
}
