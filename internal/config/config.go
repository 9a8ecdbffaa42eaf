package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	PrevisitAPI UpstreamAPIConfig `toml:"previsit_api"`
	MoveAPI     UpstreamAPIConfig `toml:"move_api"`
	CustomerAPI CustomerAPIConfig `toml:"customer_api"`
	Session     SessionConfig     `toml:"session"`
}

// UpstreamAPIConfig настройки подключения к backend API бронирования
type UpstreamAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CustomerAPIConfig настройки подключения к customer API
type CustomerAPIConfig struct {
	URL          string `toml:"url"`
	Timeout      int    `toml:"timeout"` // секунды
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token"`
}

// SessionConfig настройки пользовательских сессий
type SessionConfig struct {
	TTLMinutes      int `toml:"ttl_minutes"`
	CookieMaxAgeSec int `toml:"cookie_max_age_sec"`
}

// Load читает и валидирует конфигурацию из TOML-файла
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
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}
	if c.PrevisitAPI.URL == "" {
		return fmt.Errorf("previsit_api.url is required")
	}
	if c.PrevisitAPI.Timeout <= 0 {
		return fmt.Errorf("invalid previsit_api.timeout: %d", c.PrevisitAPI.Timeout)
	}
	if c.MoveAPI.URL == "" {
		return fmt.Errorf("move_api.url is required")
	}
	if c.MoveAPI.Timeout <= 0 {
		return fmt.Errorf("invalid move_api.timeout: %d", c.MoveAPI.Timeout)
	}
	if c.CustomerAPI.URL == "" {
		return fmt.Errorf("customer_api.url is required")
	}
	if c.CustomerAPI.Timeout <= 0 {
		return fmt.Errorf("invalid customer_api.timeout: %d", c.CustomerAPI.Timeout)
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("invalid session.ttl_minutes: %d", c.Session.TTLMinutes)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}
	return nil
}
