package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// StoreConfig selects the record store backing the adapters: "postgres" or
// "memory". The memory driver simulates store latency per operation.
type StoreConfig struct {
	Driver        string
	SeedDemoData  bool
	MemLatencyMin time.Duration
	MemLatencyMax time.Duration
	MigrationsDir string
	RunMigrations bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Store = StoreConfig{
		Driver:        opt("STORE_DRIVER", StoreDriverPostgres),
		SeedDemoData:  parseBool(opt("SEED_DEMO_DATA", "false")),
		MemLatencyMin: parseDuration(opt("MEM_STORE_LATENCY_MIN", "200ms"), 200*time.Millisecond),
		MemLatencyMax: parseDuration(opt("MEM_STORE_LATENCY_MAX", "500ms"), 500*time.Millisecond),
		MigrationsDir: opt("MIGRATIONS_DIR", ""),
		RunMigrations: parseBool(opt("RUN_MIGRATIONS", "true")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", ""),
		DBPort:     opt("DB_PORT", ""),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        parseDuration(opt("DB_CONNECT_TIMEOUT", "5s"), 5*time.Second),
		PoolMaxConns:          int32(parseInt(opt("DB_POOL_MAX_CONNS", "10"), 10)),
		PoolMinConns:          int32(parseInt(opt("DB_POOL_MIN_CONNS", "0"), 0)),
		PoolMaxConnLifetime:   parseDuration(opt("DB_POOL_MAX_CONN_LIFETIME", "30m"), 30*time.Minute),
		PoolMaxConnIdleTime:   parseDuration(opt("DB_POOL_MAX_CONN_IDLE_TIME", "10m"), 10*time.Minute),
		PoolHealthCheckPeriod: parseDuration(opt("DB_POOL_HEALTH_CHECK_PERIOD", "1m"), time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  parseDuration(opt("JWT_ACCESS_EXPIRES_IN", "15m"), 15*time.Minute),
		RefreshExpiresIn: parseDuration(opt("JWT_REFRESH_EXPIRES_IN", "168h"), 168*time.Hour),
	}

	switch cfg.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORE_DRIVER: %s", cfg.Store.Driver)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return v
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func parseDuration(s string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return v
}
