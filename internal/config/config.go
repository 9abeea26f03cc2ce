package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server         Server         `toml:"server"`
	Database       Database       `toml:"database"`
	Logs           Logs           `toml:"logs"`
	Metrics        Metrics        `toml:"metrics"`
	ProfileService ProfileService `toml:"profile_service"`
	Scheduling     Scheduling     `toml:"scheduling"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к базе данных
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ProfileService настройки клиента ProfileService
type ProfileService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Scheduling бизнес-параметры планирования
type Scheduling struct {
	Timezone                  string `toml:"timezone"`                    // IANA таймзона расписаний, например "Asia/Ho_Chi_Minh"
	DefaultGranularityMinutes int    `toml:"default_granularity_minutes"` // Шаг слотов по умолчанию
	MaxRangeDays              int    `toml:"max_range_days"`              // Максимальный диапазон дат расчета доступности
	MinNoticeMinutes          int    `toml:"min_notice_minutes"`          // Минимальное время до начала бронирования
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.ProfileService.URL == "" {
		return fmt.Errorf("profile_service.url is required")
	}
	if c.Scheduling.Timezone == "" {
		return fmt.Errorf("scheduling.timezone is required")
	}
	if c.Scheduling.DefaultGranularityMinutes <= 0 {
		return fmt.Errorf("scheduling.default_granularity_minutes must be positive")
	}
	if c.Scheduling.MaxRangeDays <= 0 {
		return fmt.Errorf("scheduling.max_range_days must be positive")
	}
	if c.Scheduling.MinNoticeMinutes < 0 {
		return fmt.Errorf("scheduling.min_notice_minutes must not be negative")
	}
	return nil
}
