// Package config loads the service configuration from defaults, an optional
// YAML or JSON file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/secrets"
	"github.com/jonathan/resume-tailor/internal/server/ratelimit"
)

// EnvPrefix prefixes every environment variable, e.g. RESUME_TAILOR_SERVER_PORT
const EnvPrefix = "RESUME_TAILOR"

// ProviderAuto picks OpenAI, then Gemini, by which API key is present
const ProviderAuto = "auto"

// configName is the file searched for in the working directory when no path is given
const configName = "resume-tailor"

// Config represents the service configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Backend   BackendConfig   `mapstructure:"backend"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	StaticDir    string        `mapstructure:"static-dir"`
	MaxUploadMB  int           `mapstructure:"max-upload-mb"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
}

// BackendConfig selects and configures the model provider
type BackendConfig struct {
	Provider        string        `mapstructure:"provider"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RecheckInterval time.Duration `mapstructure:"recheck-interval"`
	OpenAI          OpenAIConfig  `mapstructure:"openai"`
	Ollama          OllamaConfig  `mapstructure:"ollama"`
	Gemini          GeminiConfig  `mapstructure:"gemini"`
}

// OpenAIConfig configures the OpenAI client
type OpenAIConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	BaseURL    string `mapstructure:"base-url"`
}

// OllamaConfig configures the Ollama client
type OllamaConfig struct {
	URL   string `mapstructure:"url"`
	Model string `mapstructure:"model"`
}

// GeminiConfig configures the Gemini client
type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

// RateLimitConfig configures the per-client request limits
type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	DefaultLimit  int           `mapstructure:"default-limit"`
	DefaultWindow time.Duration `mapstructure:"default-window"`
	Whitelist     string        `mapstructure:"whitelist"`
	Blacklist     string        `mapstructure:"blacklist"`
}

// LogConfig configures the logger
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// defaults is every known key with its default value
var defaults = map[string]any{
	"server.port":          8000,
	"server.static-dir":    "",
	"server.max-upload-mb": int(ingestion.DefaultMaxFileSize >> 20),
	"server.read-timeout":  30 * time.Second,
	"server.write-timeout": 300 * time.Second,

	"backend.provider":            ProviderAuto,
	"backend.timeout":             llm.DefaultTimeout,
	"backend.recheck-interval":    time.Duration(0),
	"backend.openai.api-key":      "",
	"backend.openai.api-key-file": "",
	"backend.openai.model":        llm.DefaultOpenAIModel,
	"backend.openai.base-url":     "",
	"backend.ollama.url":          llm.DefaultOllamaURL,
	"backend.ollama.model":        llm.DefaultOllamaModel,
	"backend.gemini.api-key":      "",
	"backend.gemini.api-key-file": "",
	"backend.gemini.model":        llm.DefaultGeminiModel,

	"ratelimit.enabled":        true,
	"ratelimit.default-limit":  1000,
	"ratelimit.default-window": time.Minute,
	"ratelimit.whitelist":      "",
	"ratelimit.blacklist":      "",

	"log.json":  false,
	"log.debug": false,
}

// envAliases are the conventional variable names accepted next to the prefixed ones
var envAliases = map[string]string{
	"backend.openai.api-key": "OPENAI_API_KEY",
	"backend.gemini.api-key": "GEMINI_API_KEY",
	"backend.ollama.url":     "OLLAMA_HOST",
}

// NewViper returns a viper instance with defaults and environment bindings.
// Flags can be bound to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, alias := range envAliases {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
		_ = v.BindEnv(key, prefixed, alias)
	}

	return v
}

// Load reads the configuration. An explicit path must exist; without one,
// resume-tailor.{yaml,json} in the working directory is used when present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB < 1 {
		return fmt.Errorf("config error: 'server.max-upload-mb' must be positive")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config error: 'backend.timeout' must be positive")
	}
	if c.Backend.RecheckInterval < 0 {
		return fmt.Errorf("config error: 'backend.recheck-interval' must be non-negative")
	}
	if !strings.EqualFold(strings.TrimSpace(c.Backend.Provider), ProviderAuto) {
		if _, err := llm.ParseProvider(c.Backend.Provider); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.RateLimit.Enabled && (c.RateLimit.DefaultLimit < 1 || c.RateLimit.DefaultWindow <= 0) {
		return fmt.Errorf("config error: 'ratelimit.default-limit' and 'ratelimit.default-window' must be positive")
	}
	return nil
}

// MaxUploadBytes returns the upload cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

// LLM resolves the model backend settings, loading API keys from files where configured.
// With the auto provider, OpenAI is chosen when its key is usable, then Gemini, else none.
func (c *Config) LLM() (llm.Config, error) {
	openAIKey, err := secrets.LoadOptional(secrets.Source{
		Name:  "openai api key",
		Value: c.Backend.OpenAI.APIKey,
		File:  c.Backend.OpenAI.APIKeyFile,
	})
	if err != nil {
		return llm.Config{}, err
	}
	geminiKey, err := secrets.LoadOptional(secrets.Source{
		Name:  "gemini api key",
		Value: c.Backend.Gemini.APIKey,
		File:  c.Backend.Gemini.APIKeyFile,
	})
	if err != nil {
		return llm.Config{}, err
	}

	var provider llm.Provider
	if strings.EqualFold(strings.TrimSpace(c.Backend.Provider), ProviderAuto) {
		switch {
		case llm.HasAPIKey(openAIKey):
			provider = llm.ProviderOpenAI
		case llm.HasAPIKey(geminiKey):
			provider = llm.ProviderGemini
		default:
			provider = llm.ProviderNone
		}
	} else if provider, err = llm.ParseProvider(c.Backend.Provider); err != nil {
		return llm.Config{}, err
	}

	cfg := llm.Config{Provider: provider, Timeout: c.Backend.Timeout}
	switch provider {
	case llm.ProviderOpenAI:
		cfg.APIKey = openAIKey
		cfg.Model = c.Backend.OpenAI.Model
		cfg.BaseURL = c.Backend.OpenAI.BaseURL
	case llm.ProviderOllama:
		cfg.Model = c.Backend.Ollama.Model
		cfg.BaseURL = ollamaURL(c.Backend.Ollama.URL)
	case llm.ProviderGemini:
		cfg.APIKey = geminiKey
		cfg.Model = c.Backend.Gemini.Model
	}
	return cfg.WithDefaults(), nil
}

// RateLimiter converts the settings for the ratelimit package
func (c *Config) RateLimiter() *ratelimit.Config {
	rl := ratelimit.DefaultConfig()
	rl.Enabled = c.RateLimit.Enabled
	rl.DefaultLimit = c.RateLimit.DefaultLimit
	rl.DefaultWindow = c.RateLimit.DefaultWindow
	rl.Whitelist = ratelimit.ParseIPList(c.RateLimit.Whitelist)
	rl.Blacklist = ratelimit.ParseIPList(c.RateLimit.Blacklist)
	return rl
}

// ollamaURL accepts OLLAMA_HOST style values that omit the scheme
func ollamaURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw != "" && !strings.Contains(raw, "://") {
		return "http://" + raw
	}
	return raw
}
