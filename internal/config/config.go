package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the main structure mapping the entire application configuration.
// Both services read their own section; the shared sections apply to whichever
// service the process runs.
type Config struct {
	// Shortener configures the URL-shortening service.
	Shortener struct {
		Host        string `mapstructure:"host"`
		Port        int    `mapstructure:"port"`
		BaseURL     string `mapstructure:"base_url"`     // Prefix of every returned short_url
		Database    string `mapstructure:"database"`     // SQLite file name
		CodeLength  int    `mapstructure:"code_length"`  // Length of generated short codes; route names (docs, stats, shorten) are never generated
		MaxAttempts int    `mapstructure:"max_attempts"` // 0 means retry until a free code is found
	} `mapstructure:"shortener"`

	// Todo configures the to-do list service.
	Todo struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Database string `mapstructure:"database"`
	} `mapstructure:"todo"`

	Server struct {
		ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds"`
	} `mapstructure:"server"`

	// Monitor configures the check-links command.
	Monitor struct {
		TimeoutSeconds int `mapstructure:"timeout_seconds"`
	} `mapstructure:"monitor"`
}

// ShortenerAddr returns the host:port the URL service binds to.
func (c *Config) ShortenerAddr() string {
	return fmt.Sprintf("%s:%d", c.Shortener.Host, c.Shortener.Port)
}

// TodoAddr returns the host:port the to-do service binds to.
func (c *Config) TodoAddr() string {
	return fmt.Sprintf("%s:%d", c.Todo.Host, c.Todo.Port)
}

// ShortURLBase returns the prefix used to build short URLs. When no base URL is
// configured it is derived from the bind address.
func (c *Config) ShortURLBase() string {
	if base := strings.TrimRight(strings.TrimSpace(c.Shortener.BaseURL), "/"); base != "" {
		return base
	}
	return "http://" + c.ShortenerAddr()
}

// Validate rejects values no service can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Shortener.Port < 1 || c.Shortener.Port > 65535 {
		errs = append(errs, fmt.Errorf("shortener.port %d out of range", c.Shortener.Port))
	}
	if c.Todo.Port < 1 || c.Todo.Port > 65535 {
		errs = append(errs, fmt.Errorf("todo.port %d out of range", c.Todo.Port))
	}
	if c.Shortener.CodeLength < 1 {
		errs = append(errs, fmt.Errorf("shortener.code_length must be positive, got %d", c.Shortener.CodeLength))
	}
	if c.Shortener.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("shortener.max_attempts must not be negative, got %d", c.Shortener.MaxAttempts))
	}
	if c.Shortener.Database == "" || c.Todo.Database == "" {
		errs = append(errs, errors.New("database file names must not be empty"))
	}
	return errors.Join(errs...)
}

// LoadConfig loads the application configuration using Viper.
// Precedence: environment (a local .env file included), ./configs/config.yaml, defaults.
func LoadConfig() (*Config, error) {
	// .env never overrides variables already present in the environment
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	viper.AutomaticEnv()
	// e.g. "shortener.port" becomes "SHORTENER_PORT"
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("shortener.host", "127.0.0.1")
	viper.SetDefault("shortener.port", 8000)
	viper.SetDefault("shortener.base_url", "")
	viper.SetDefault("shortener.database", "urls.db")
	viper.SetDefault("shortener.code_length", 6)
	viper.SetDefault("shortener.max_attempts", 0)
	viper.SetDefault("todo.host", "127.0.0.1")
	viper.SetDefault("todo.port", 8001)
	viper.SetDefault("todo.database", "tasks.db")
	viper.SetDefault("server.shutdown_timeout_seconds", 5)
	viper.SetDefault("monitor.timeout_seconds", 5)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file not found, using default values")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Printf("Configuration loaded: shortener=%s (db=%s, code length=%d), todo=%s (db=%s)",
		cfg.ShortenerAddr(), cfg.Shortener.Database, cfg.Shortener.CodeLength, cfg.TodoAddr(), cfg.Todo.Database)

	return &cfg, nil
}
