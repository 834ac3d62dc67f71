package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JUDGE_DATA_DIR", filepath.Join(t.TempDir(), "data"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.BatchWorkers)
	assert.False(t, cfg.DevMode)
	assert.Empty(t, cfg.CatalogPath)
	assert.Empty(t, cfg.CatalogDB)
	assert.Nil(t, cfg.CORSOrigins)
	assert.True(t, cfg.CORSCredentials)
	assert.DirExists(t, cfg.DataDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JUDGE_DATA_DIR", t.TempDir())
	t.Setenv("JUDGE_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("BATCH_WORKERS", "8")
	t.Setenv("CATALOG_PATH", "/etc/judge/catalog.yaml")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, 8, cfg.BatchWorkers)
	assert.Equal(t, "/etc/judge/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("JUDGE_DATA_DIR", t.TempDir())
	t.Setenv("JUDGE_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestLoad_InvalidWorkerCount(t *testing.T) {
	t.Setenv("JUDGE_DATA_DIR", t.TempDir())
	t.Setenv("BATCH_WORKERS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch workers")
}

func TestValidate(t *testing.T) {
	valid := &Config{Port: 8080, BatchWorkers: 1}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Config{Port: 0, BatchWorkers: 1}).Validate())
	assert.Error(t, (&Config{Port: 8080, BatchWorkers: 0}).Validate())
}
