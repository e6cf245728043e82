// internal/config/config.go
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github-ai-assistant/internal/model"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	ListenAddr     string        `mapstructure:"LISTEN_ADDR"`
	GithubToken    string        `mapstructure:"GITHUB_TOKEN"`
	GithubTimeout  time.Duration `mapstructure:"GITHUB_TIMEOUT"`
	GeminiProject  string        `mapstructure:"GEMINI_PROJECT_ID"`
	GeminiLocation string        `mapstructure:"GEMINI_LOCATION"`
	GeminiModel    string        `mapstructure:"GEMINI_MODEL"`
	OllamaHost     string        `mapstructure:"OLLAMA_HOST"`
	OllamaModel    string        `mapstructure:"OLLAMA_MODEL"`
	DateFormat     string        `mapstructure:"DATE_FORMAT"`
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	// Set default values
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LISTEN_ADDR", ":8080")
	viper.SetDefault("GITHUB_TIMEOUT", "20s")
	viper.SetDefault("GEMINI_LOCATION", "us-central1")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("OLLAMA_MODEL", "llama3.1")
	viper.SetDefault("DATE_FORMAT", "long")

	// Load from .env file if it exists
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.GithubToken == "" {
		return nil, errors.New("GITHUB_TOKEN is a required configuration field")
	}
	if cfg.GeminiProject == "" {
		return nil, errors.New("GEMINI_PROJECT_ID is a required configuration field")
	}
	if cfg.GithubTimeout <= 0 {
		return nil, errors.New("GITHUB_TIMEOUT must be a positive duration")
	}
	if cfg.DateFormat != "long" && cfg.DateFormat != "iso" {
		return nil, errors.New("DATE_FORMAT must be either 'long' or 'iso'")
	}

	return &cfg, nil
}

// DateLayout returns the Go time layout selected by DATE_FORMAT.
func (c *Config) DateLayout() string {
	if c.DateFormat == "iso" {
		return model.DateLayoutISO
	}
	return model.DateLayoutLong
}
