package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/pkg/logger"
)

// ErrInvalidConfig возвращается, если значения конфигурации некорректны
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	OfferService OfferServiceConfig `toml:"offer_service"`
	Generation   GenerationConfig   `toml:"generation"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// OfferServiceConfig настройки клиента сервиса офферов
type OfferServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// GenerationConfig ограничения генерации стоков
type GenerationConfig struct {
	MaxStocksPerRequest   int    `toml:"max_stocks_per_request"`
	MaxIntervalDays       int    `toml:"max_interval_days"`
	MaxStocksPerOffer     int    `toml:"max_stocks_per_offer"`
	DefaultDepartmentCode string `toml:"default_department_code"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-eventstockservice"
	}

	if c.OfferService.Timeout == 0 {
		c.OfferService.Timeout = 5
	}

	if c.Generation.MaxStocksPerRequest == 0 {
		c.Generation.MaxStocksPerRequest = domain.DefaultMaxStocksPerRequest
	}
	if c.Generation.MaxIntervalDays == 0 {
		c.Generation.MaxIntervalDays = domain.DefaultMaxIntervalDays
	}
	if c.Generation.MaxStocksPerOffer == 0 {
		c.Generation.MaxStocksPerOffer = domain.DefaultMaxStocksPerOffer
	}
	if c.Generation.DefaultDepartmentCode == "" {
		c.Generation.DefaultDepartmentCode = domain.DefaultDepartmentCode
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		problems = append(problems, "database.max_idle_conns must not exceed database.max_open_conns")
	}
	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		problems = append(problems, fmt.Sprintf("logs.level: %v", err))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if c.OfferService.URL == "" {
		problems = append(problems, "offer_service.url is required")
	}
	if c.Generation.MaxStocksPerRequest < 0 {
		problems = append(problems, "generation.max_stocks_per_request must be positive")
	}
	if c.Generation.MaxIntervalDays < 0 {
		problems = append(problems, "generation.max_interval_days must be positive")
	}
	if c.Generation.MaxStocksPerOffer < c.Generation.MaxStocksPerRequest {
		problems = append(problems, "generation.max_stocks_per_offer must not be less than generation.max_stocks_per_request")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
