package main_test

import (
	"testing"

	"github.com/sailhq/windfind"
	main "github.com/sailhq/windfind/cmd/windfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tvly-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("WINDFIND_CACHE_DIR", "/tmp/windfind-cache")
	t.Setenv("WINDFIND_DB", "/tmp/windfind.db")
	t.Setenv("WINDFIND_CONCURRENCY", "4")

	cfg, err := main.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "tvly-test", cfg.TavilyAPIKey)
	assert.Equal(t, "gm-test", cfg.GeminiAPIKey)
	assert.Equal(t, "/tmp/windfind-cache", cfg.CacheDir)
	assert.Equal(t, "/tmp/windfind.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tvly-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("WINDFIND_CACHE_DIR", "")
	t.Setenv("WINDFIND_DB", "")

	cfg, err := main.LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.CacheDir)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestConfig_ValidateCredentials(t *testing.T) {
	t.Parallel()

	cfg := &main.Config{TavilyAPIKey: "a", GeminiAPIKey: "b"}
	require.NoError(t, cfg.ValidateCredentials())

	cfg = &main.Config{GeminiAPIKey: "b"}
	err := cfg.ValidateCredentials()
	require.Error(t, err)
	assert.Equal(t, windfind.EINVALID, windfind.ErrorCode(err))

	cfg = &main.Config{TavilyAPIKey: "a"}
	err = cfg.ValidateCredentials()
	require.Error(t, err)
	assert.Contains(t, windfind.ErrorMessage(err), "GEMINI_API_KEY")
}
