package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
)

// Backend хранилища состояния флоу
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server          ServerConfig   `toml:"server"`
	Logs            LogsConfig     `toml:"logs"`
	Metrics         MetricsConfig  `toml:"metrics"`
	Storage         StorageConfig  `toml:"storage"`
	Database        DatabaseConfig `toml:"database"`
	Redis           RedisConfig    `toml:"redis"`
	AddressService  ServiceConfig  `toml:"address_service"`
	ProviderService ServiceConfig  `toml:"provider_service"`
	PricingService  ServiceConfig  `toml:"pricing_service"`
	AccountService  ServiceConfig  `toml:"account_service"`
	Schemas         SchemasConfig  `toml:"schemas"`
	Matching        MatchingConfig `toml:"matching"`
	Planning        PlanningConfig `toml:"planning"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор backend хранилища
type StorageConfig struct {
	Backend   string `toml:"backend" env:"STORAGE_BACKEND"`
	KeyPrefix string `toml:"key_prefix"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения lib/pq
func (c DatabaseConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode)
}

// RedisConfig настройки Redis
type RedisConfig struct {
	Addr     string `toml:"addr" env:"REDIS_ADDR"`
	Password string `toml:"password" env:"REDIS_PASSWORD"`
	DB       int    `toml:"db"`
}

// ServiceConfig настройки внешнего HTTP сервиса (timeout в секундах)
type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// TimeoutDuration возвращает таймаут как time.Duration
func (c ServiceConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// SchemasConfig настройки схем шагов
type SchemasConfig struct {
	File  string `toml:"file" env:"SCHEMAS_FILE"`
	Watch bool   `toml:"watch"`
}

// MatchingConfig настройки подбора исполнителей
type MatchingConfig struct {
	TopTierLimit int `toml:"top_tier_limit"`
}

// PlanningConfig настройки шага планирования
type PlanningConfig struct {
	MaxAdvanceDays int `toml:"max_advance_days"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "smc-intake-service"},
		Storage: StorageConfig{Backend: StorageMemory, KeyPrefix: "intake:"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis:           RedisConfig{Addr: "localhost:6379"},
		AddressService:  ServiceConfig{Timeout: 5},
		ProviderService: ServiceConfig{Timeout: 10},
		PricingService:  ServiceConfig{Timeout: 5},
		AccountService:  ServiceConfig{Timeout: 5},
		Matching:        MatchingConfig{TopTierLimit: 5},
		Planning:        PlanningConfig{MaxAdvanceDays: 90},
	}
}

// Load читает TOML файл поверх значений по умолчанию, применяет переменные окружения и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// envdecode возвращает ErrNoTargetFieldsAreSet, если ни одна переменная не задана
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	switch c.Storage.Backend {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Storage.Backend == StorageRedis && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required for redis backend", ErrInvalidConfig)
	}

	if c.Storage.Backend == StoragePostgres && c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required for postgres backend", ErrInvalidConfig)
	}

	for name, svc := range map[string]ServiceConfig{
		"address_service":  c.AddressService,
		"provider_service": c.ProviderService,
		"pricing_service":  c.PricingService,
		"account_service":  c.AccountService,
	} {
		if svc.URL == "" {
			return fmt.Errorf("%w: %s.url is required", ErrInvalidConfig, name)
		}
	}

	if c.Matching.TopTierLimit <= 0 {
		return fmt.Errorf("%w: matching.top_tier_limit must be positive", ErrInvalidConfig)
	}

	if c.Planning.MaxAdvanceDays <= 0 {
		return fmt.Errorf("%w: planning.max_advance_days must be positive", ErrInvalidConfig)
	}

	return nil
}
