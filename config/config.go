// Package config loads blogsum settings from defaults, an optional YAML file,
// an optional .env file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pevans/blogsum/scraper"
	"github.com/pevans/blogsum/summarizer"
	"github.com/pevans/blogsum/translator"
)

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string        `yaml:"addr" json:"addr"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"`
}

// StorageConfig locates the summary database and the content directory.
type StorageConfig struct {
	SummariesDSN string `yaml:"summaries_dsn" json:"summaries_dsn"`
	ContentsDir  string `yaml:"contents_dir" json:"contents_dir"`
}

// GeminiConfig configures LLM summaries. An empty APIKey disables them.
type GeminiConfig struct {
	APIKey           string `yaml:"api_key" json:"-"`
	Model            string `yaml:"model" json:"model"`
	MinContentLength int    `yaml:"min_content_length" json:"min_content_length"`
}

// TranslateConfig configures the networked translator.
type TranslateConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	BaseURL string        `yaml:"base_url" json:"base_url"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// ScraperConfig configures page fetching.
type ScraperConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// Config is the complete blogsum configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Storage   StorageConfig   `yaml:"storage" json:"storage"`
	Gemini    GeminiConfig    `yaml:"gemini" json:"gemini"`
	Translate TranslateConfig `yaml:"translate" json:"translate"`
	Scraper   ScraperConfig   `yaml:"scraper" json:"scraper"`
	Log       LogConfig       `yaml:"log" json:"log"`
}

// Dir returns the blogsum data directory, ~/.blogsum.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".blogsum")
}

// Default returns the built-in configuration.
func Default() *Config {
	dir := Dir()
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: 60 * time.Second,
		},
		Storage: StorageConfig{
			SummariesDSN: filepath.Join(dir, "summaries.db"),
			ContentsDir:  filepath.Join(dir, "contents"),
		},
		Gemini: GeminiConfig{
			Model:            summarizer.DefaultGeminiModel,
			MinContentLength: summarizer.DefaultMinLLMContent,
		},
		Translate: TranslateConfig{
			Enabled: true,
			BaseURL: translator.DefaultGoogleBaseURL,
			Timeout: 15 * time.Second,
		},
		Scraper: ScraperConfig{
			Timeout:   scraper.DefaultTimeout,
			UserAgent: scraper.DefaultUserAgent,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// applyEnv overrides cfg with any environment variables that are set.
func (c *Config) applyEnv() error {
	if v := os.Getenv("GOOGLE_GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("BLOGSUM_GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("BLOGSUM_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("BLOGSUM_SUMMARIES_DSN"); v != "" {
		c.Storage.SummariesDSN = v
	}
	if v := os.Getenv("BLOGSUM_CONTENTS_DIR"); v != "" {
		c.Storage.ContentsDir = v
	}
	if v := os.Getenv("BLOGSUM_TRANSLATE_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BLOGSUM_TRANSLATE_ENABLED: %w", err)
		}
		c.Translate.Enabled = enabled
	}
	if v := os.Getenv("BLOGSUM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Storage.SummariesDSN == "" {
		errs = append(errs, errors.New("storage.summaries_dsn is required"))
	}
	if c.Storage.ContentsDir == "" {
		errs = append(errs, errors.New("storage.contents_dir is required"))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if c.Translate.Timeout <= 0 {
		errs = append(errs, errors.New("translate.timeout must be positive"))
	}
	if c.Scraper.Timeout <= 0 {
		errs = append(errs, errors.New("scraper.timeout must be positive"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel converts a level name such as "debug" or "WARN" to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log.level %q", name)
	}
	return level, nil
}

// NewLogger returns a text logger writing to stderr at the configured level.
func (c *Config) NewLogger() *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
