package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	AuditModeSync   = "sync"
	AuditModeStream = "stream"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Nearest  NearestConfig
	Audit    AuditConfig
	Worker   WorkerConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Host             string
	Port             int
	Env              string
	CORSAllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ParkingsCacheTTL time.Duration
	StatsCacheTTL    time.Duration
}

type LogConfig struct {
	Level string
}

// NearestConfig - параметры поиска ближайшего парковки
type NearestConfig struct {
	AlertThresholdKm float64
}

// AuditConfig - куда пишутся записи о дальних запросах
type AuditConfig struct {
	Mode string
}

type WorkerConfig struct {
	Enabled        bool
	ConsumerGroup  string
	MaxRetries     int
	PendingMinIdle time.Duration
}

type AuthConfig struct {
	Enabled   bool
	JWTSecret string
	Issuer    string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 9000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUTH_ENABLED", true)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),

			CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ParkingsCacheTTL: time.Duration(v.GetInt("PARKINGS_CACHE_TTL")) * time.Second,
			StatsCacheTTL:    time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Nearest: NearestConfig{
			AlertThresholdKm: v.GetFloat64("NEAREST_ALERT_THRESHOLD_KM"),
		},
		Audit: AuditConfig{
			Mode: strings.ToLower(strings.TrimSpace(v.GetString("AUDIT_MODE"))),
		},
		Worker: WorkerConfig{
			Enabled:        v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:  v.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:     v.GetInt("WORKER_MAX_RETRIES"),
			PendingMinIdle: time.Duration(v.GetInt("WORKER_PENDING_MIN_IDLE")) * time.Second,
		},
		Auth: AuthConfig{
			Enabled:   v.GetBool("AUTH_ENABLED"),
			JWTSecret: v.GetString("AUTH_JWT_SECRET"),
			Issuer:    v.GetString("AUTH_ISSUER"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.ParkingsCacheTTL == 0 {
		cfg.Cache.ParkingsCacheTTL = 5 * time.Minute
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = time.Hour
	}
	if cfg.Nearest.AlertThresholdKm == 0 {
		cfg.Nearest.AlertThresholdKm = 0.5
	}
	if cfg.Audit.Mode == "" {
		cfg.Audit.Mode = AuditModeSync
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "parking-audit-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.PendingMinIdle == 0 {
		cfg.Worker.PendingMinIdle = 30 * time.Second
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Audit.Mode != AuditModeSync && c.Audit.Mode != AuditModeStream {
		return fmt.Errorf("invalid AUDIT_MODE %q: expected %q or %q", c.Audit.Mode, AuditModeSync, AuditModeStream)
	}
	if c.Nearest.AlertThresholdKm < 0 {
		return fmt.Errorf("NEAREST_ALERT_THRESHOLD_KM must be non-negative")
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_ENABLED is true but AUTH_JWT_SECRET is not set")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения в формате libpq (понимают и pgx, и lib/pq)
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
