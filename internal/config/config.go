package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config is read once at startup and handed to constructors.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	Provider     string
	InsightModel string
	ImageModel   string
	MaxTokens    int

	OpenAIAPIKey  string
	OpenAIBaseURL string

	GeminiAPIKey   string
	GeminiBaseURL  string
	GoogleProject  string
	GoogleLocation string

	RedisAddr          string
	RateLimitPerMinute int
}

var defaultModels = map[string][2]string{
	ProviderOpenAI: {"gpt-4o-mini", "dall-e-3"},
	ProviderGemini: {"gemini-2.5-flash", "imagen-3.0-generate-002"},
}

// LoadDotEnv reads the given file into the environment without overriding
// variables that are already set.
func LoadDotEnv(path string) error {
	return godotenv.Load(path)
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "4000"),
		Env:      getEnv("APP_ENV", "production"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Provider: strings.ToLower(getEnv("AI_PROVIDER", ProviderOpenAI)),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:  os.Getenv("GEMINI_BASE_URL"),
		GoogleProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleLocation: getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
	}

	models, ok := defaultModels[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported AI_PROVIDER %q (want %q or %q)", cfg.Provider, ProviderOpenAI, ProviderGemini)
	}
	cfg.InsightModel = getEnv("INSIGHT_MODEL", models[0])
	cfg.ImageModel = getEnv("IMAGE_MODEL", models[1])

	var err error
	if cfg.MaxTokens, err = getEnvInt("INSIGHT_MAX_TOKENS", 500); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HasCredentials reports whether the selected provider has something to
// authenticate with. Missing credentials are not fatal.
func (c *Config) HasCredentials() bool {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey != "" || c.GoogleProject != ""
	}
	return c.OpenAIAPIKey != ""
}

func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddr != "" && c.RateLimitPerMinute > 0
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
