// Package config содержит конфигурацию и загрузчик настроек.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит конфигурацию приложения
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// DatabaseConfig содержит настройки подключения к БД
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// KafkaConfig содержит настройки фида импорта меню
type KafkaConfig struct {
	Brokers       []string      `yaml:"brokers"`
	Topic         string        `yaml:"topic"`
	GroupID       string        `yaml:"group_id"`
	MaxRetries    int           `yaml:"max_retries"`
	Backoff       time.Duration `yaml:"backoff"`
	BackoffCap    time.Duration `yaml:"backoff_cap"`
	BackoffJitter bool          `yaml:"backoff_jitter"`
}

// Enabled сообщает, настроен ли фид импорта.
func (k *KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.Topic != ""
}

// TelemetryConfig содержит настройки трассировки и метрик.
type TelemetryConfig struct {
	ServiceName      string  `yaml:"service_name"`
	Environment      string  `yaml:"environment"`
	OTLPEndpoint     string  `yaml:"otlp_endpoint"`
	OTLPInsecure     bool    `yaml:"otlp_insecure"`
	TracesEnabled    bool    `yaml:"traces_enabled"`
	MetricsEnabled   bool    `yaml:"metrics_enabled"`
	TraceSampleRatio float64 `yaml:"trace_sample_ratio"`
	MetricsPath      string  `yaml:"metrics_path"`
}

// LoadConfig загружает конфигурацию из файла с учетом .env
func LoadConfig() (*Config, error) {
	// .env опционален, отсутствие файла не ошибка
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	normalizeConfig(&cfg)
	return &cfg, nil
}

// Address возвращает адрес сервера в формате host:port
func (s *ServerConfig) Address() string {
	if s.Host == "" {
		return fmt.Sprintf(":%d", s.Port)
	}
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:         "",
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			DSN: "",
		},
		Kafka: KafkaConfig{
			Brokers:       nil,
			Topic:         "",
			GroupID:       "menu-feed-consumer",
			MaxRetries:    3,
			Backoff:       500 * time.Millisecond,
			BackoffCap:    5 * time.Second,
			BackoffJitter: true,
		},
		Telemetry: TelemetryConfig{
			ServiceName:      "menu-catalog",
			Environment:      "local",
			OTLPEndpoint:     "localhost:4318",
			OTLPInsecure:     true,
			TracesEnabled:    false,
			MetricsEnabled:   true,
			TraceSampleRatio: 1.0,
			MetricsPath:      "/metrics",
		},
	}
}

func normalizeConfig(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60 * time.Second
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "menu-catalog"
	}
	if cfg.Telemetry.OTLPEndpoint == "" {
		cfg.Telemetry.OTLPEndpoint = "localhost:4318"
	}
	if cfg.Telemetry.TraceSampleRatio <= 0 || cfg.Telemetry.TraceSampleRatio > 1 {
		cfg.Telemetry.TraceSampleRatio = 1.0
	}
	if cfg.Telemetry.MetricsPath == "" {
		cfg.Telemetry.MetricsPath = "/metrics"
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "menu-feed-consumer"
	}
	if cfg.Kafka.MaxRetries < 0 {
		cfg.Kafka.MaxRetries = 0
	}
	if cfg.Kafka.Backoff < 0 {
		cfg.Kafka.Backoff = 0
	}
	if cfg.Kafka.BackoffCap < 0 {
		cfg.Kafka.BackoffCap = 0
	}
}
