package main

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sailhq/windfind"
)

// Config holds all settings read from the environment.
type Config struct {
	// TavilyAPIKey authenticates search requests.
	TavilyAPIKey string `env:"TAVILY_API_KEY"`

	// GeminiAPIKey authenticates classification and extraction requests.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// CacheDir is the root of the persistent response cache.
	CacheDir string `env:"WINDFIND_CACHE_DIR"`

	// DBPath is the SQLite database holding completed runs.
	DBPath string `env:"WINDFIND_DB"`

	// Concurrency bounds parallel provider calls per pipeline stage.
	Concurrency int `env:"WINDFIND_CONCURRENCY" env-default:"8"`
}

// LoadConfig reads the configuration from the environment, applying
// home-relative defaults for the cache directory and database path.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, windfind.Errorf(windfind.EINVALID, "could not read config: %v", err)
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = filepath.Join(defaultDir(), "cache")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(defaultDir(), "windfind.db")
	}

	return &cfg, nil
}

// ValidateCredentials checks the keys the find command needs. Other
// commands run without credentials.
func (c *Config) ValidateCredentials() error {
	if c.TavilyAPIKey == "" {
		return windfind.Errorf(windfind.EINVALID, "TAVILY_API_KEY not set. Get a key at https://tavily.com")
	}
	if c.GeminiAPIKey == "" {
		return windfind.Errorf(windfind.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}
	return nil
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".windfind"
	}
	dir := filepath.Join(home, ".windfind")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
