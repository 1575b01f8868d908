package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "APP_ENV", "LOG_LEVEL", "AI_PROVIDER", "INSIGHT_MODEL", "IMAGE_MODEL",
	"INSIGHT_MAX_TOKENS", "OPENAI_API_KEY", "OPENAI_BASE_URL", "GEMINI_API_KEY",
	"GEMINI_BASE_URL", "GOOGLE_CLOUD_PROJECT", "GOOGLE_CLOUD_LOCATION",
	"REDIS_ADDR", "RATE_LIMIT_PER_MINUTE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.InsightModel)
	assert.Equal(t, "dall-e-3", cfg.ImageModel)
	assert.Equal(t, 500, cfg.MaxTokens)
	assert.False(t, cfg.HasCredentials())
	assert.False(t, cfg.RateLimitEnabled())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Gemini(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("IMAGE_MODEL", "imagen-4.0-generate-001")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.InsightModel)
	assert.Equal(t, "imagen-4.0-generate-001", cfg.ImageModel)
	assert.True(t, cfg.HasCredentials())
}

func TestLoad_RateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.RateLimitEnabled())
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "anthropic")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("INSIGHT_MAX_TOKENS", "lots")
	_, err = Load()
	assert.ErrorContains(t, err, "INSIGHT_MAX_TOKENS")
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that exist, even empty ones.
	for _, k := range configKeys {
		require.NoError(t, os.Unsetenv(k))
	}
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=5050\nOPENAI_API_KEY=sk-test\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5050", cfg.Port)
	assert.True(t, cfg.HasCredentials())

	assert.Error(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
