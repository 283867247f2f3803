package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/rsmnv/RST-BookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла.
// Секреты (пароль БД, админ-токен) можно переопределить через окружение,
// локально — через .env файл.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
	Auth     AuthConfig     `toml:"auth"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
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

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingConfig параметры генерации слотов
type BookingConfig struct {
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"`
	BufferMinutes       int    `toml:"buffer_minutes"`
	Timezone            string `toml:"timezone"` // IANA имя, например "Europe/London"
}

// AuthConfig параметры аутентификации админ-эндпоинтов
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load читает конфигурацию из TOML файла и применяет env-переопределения.
// Отсутствие .env файла не является ошибкой.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if v := os.Getenv("RST_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("RST_ADMIN_TOKEN"); v != "" {
		cfg.Auth.AdminToken = v
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Booking.SlotIntervalMinutes == 0 {
		cfg.Booking.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if cfg.Booking.BufferMinutes == 0 {
		cfg.Booking.BufferMinutes = domain.DefaultBufferMinutes
	}
	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = "Europe/London"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if cfg.Booking.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("config: booking.slot_interval_minutes must be positive")
	}
	if cfg.Booking.BufferMinutes < 0 {
		return fmt.Errorf("config: booking.buffer_minutes must not be negative")
	}
	if cfg.Auth.AdminToken == "" {
		return fmt.Errorf("config: auth.admin_token is required (set RST_ADMIN_TOKEN)")
	}
	return nil
}
