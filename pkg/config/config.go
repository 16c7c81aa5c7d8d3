package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config конфигурация приложения
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Team    TeamConfig    `mapstructure:"team"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig конфигурация сервера
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig конфигурация логгера
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TeamConfig настройки формирования команды
type TeamConfig struct {
	// JerseySeed seeds jersey number shuffling; 0 means seed from the clock
	JerseySeed int64 `mapstructure:"jersey_seed"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// Configuration priority (highest to lowest):
// 1. Environment variables with APP_ prefix (APP_SERVER_PORT, APP_TEAM_JERSEY_SEED, etc.)
// 2. Plain environment variables bound below (SERVER_PORT, LOG_LEVEL, etc.)
// 3. .env file in root directory
// 4. Default values (hardcoded in setDefaults)

func Load() (*Config, error) {
	return load(".")
}

func load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading .env file: %w", err)
		}
	}

	// Server
	_ = v.BindEnv("server.port", "APP_SERVER_PORT", "SERVER_PORT")
	_ = v.BindEnv("server.host", "APP_SERVER_HOST", "SERVER_HOST")
	_ = v.BindEnv("server.read_timeout", "APP_SERVER_READ_TIMEOUT", "SERVER_READ_TIMEOUT")
	_ = v.BindEnv("server.write_timeout", "APP_SERVER_WRITE_TIMEOUT", "SERVER_WRITE_TIMEOUT")
	_ = v.BindEnv("server.shutdown_timeout", "APP_SERVER_SHUTDOWN_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT")

	// Log
	_ = v.BindEnv("log.level", "APP_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "APP_LOG_FORMAT", "LOG_FORMAT")

	// Team
	_ = v.BindEnv("team.jersey_seed", "APP_TEAM_JERSEY_SEED", "TEAM_JERSEY_SEED")

	// Metrics
	_ = v.BindEnv("metrics.enabled", "APP_METRICS_ENABLED", "METRICS_ENABLED")
	_ = v.BindEnv("metrics.path", "APP_METRICS_PATH", "METRICS_PATH")
	_ = v.BindEnv("metrics.namespace", "APP_METRICS_NAMESPACE", "METRICS_NAMESPACE")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Team defaults
	v.SetDefault("team.jersey_seed", 0)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "soccer_team")
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s", cfg.Log.Format)
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with /: %q", cfg.Metrics.Path)
	}

	return nil
}

// Address host:port для http.Server
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
