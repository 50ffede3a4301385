package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, key := range []string{"HTTP_ADDR", "APP_ENV", "SEED_SAMPLE_DATA", "LOG_LEVEL", "LOG_ENCODING", "REDIS_URL", "REDIS_DB", "REDIS_TTL_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.SeedData)
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
}

func TestLoadConfig_Environment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_SAMPLE_DATA", "false")
	t.Setenv("REDIS_URL", "localhost:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TTL_SECONDS", "oops")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.SeedData)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := chdirTemp(t)
	// godotenv never overrides a variable that is already set, even if empty.
	t.Setenv("LOG_LEVEL", "restored-on-cleanup")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
