package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置，全部来自环境变量 (可选 .env)
type Config struct {
	ServerPort int
	GinMode    string
	LogLevel   slog.Level

	StoreDriver string // memory | postgres | sqlite
	DBDSN       string
	StoreSeed   bool

	SimulatedLatency time.Duration
	ReportCacheTTL   time.Duration
	ExportCooldown   time.Duration

	Storage StorageConfig

	IntegrationSyncCron string
	ReportSnapshotCron  string
}

// StorageConfig 报表导出存储
type StorageConfig struct {
	Provider  string // local | s3
	BasePath  string
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	CDNDomain string
}

// Load 读取配置；.env 不存在时忽略
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("STORE_SEED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_SEED: %w", err)
	}

	latencyMs, err := strconv.Atoi(getEnv("SIMULATED_LATENCY_MS", "0"))
	if err != nil || latencyMs < 0 {
		return nil, fmt.Errorf("invalid SIMULATED_LATENCY_MS: %q", os.Getenv("SIMULATED_LATENCY_MS"))
	}

	cacheTTL, err := strconv.Atoi(getEnv("REPORT_CACHE_TTL_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_CACHE_TTL_SECONDS: %w", err)
	}

	cooldown, err := strconv.Atoi(getEnv("EXPORT_COOLDOWN_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_COOLDOWN_SECONDS: %w", err)
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	driver := strings.ToLower(getEnv("STORE_DRIVER", "memory"))
	dsn := getEnv("DB_DSN", "")
	switch driver {
	case "memory":
	case "sqlite":
		if dsn == "" {
			dsn = "wa_admin.db"
		}
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required for STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER: %q", driver)
	}

	return &Config{
		ServerPort:       port,
		GinMode:          getEnv("GIN_MODE", "release"),
		LogLevel:         level,
		StoreDriver:      driver,
		DBDSN:            dsn,
		StoreSeed:        seed,
		SimulatedLatency: time.Duration(latencyMs) * time.Millisecond,
		ReportCacheTTL:   time.Duration(cacheTTL) * time.Second,
		ExportCooldown:   time.Duration(cooldown) * time.Second,
		Storage: StorageConfig{
			Provider:  getEnv("STORAGE_PROVIDER", "local"),
			BasePath:  getEnv("STORAGE_BASE_PATH", "./exports"),
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			Bucket:    getEnv("AWS_BUCKET", ""),
			Region:    getEnv("AWS_REGION", "us-east-1"),
			AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			CDNDomain: getEnv("AWS_CDN_DOMAIN", ""),
		},
		// 秒级 cron 表达式
		IntegrationSyncCron: getEnv("INTEGRATION_SYNC_CRON", "0 */15 * * * *"),
		ReportSnapshotCron:  getEnv("REPORT_SNAPSHOT_CRON", "0 0 2 * * *"),
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
