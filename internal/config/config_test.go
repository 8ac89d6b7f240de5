package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	LoadConfig()

	cfg := AppConfig
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 120, cfg.JWT.SessionTTL)
	assert.Equal(t, "http", cfg.Site.Protocol)
	assert.Equal(t, "localhost:4000", cfg.Site.Domain)
}

func TestLoadConfig_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 5000
  env: production
database:
  driver: mysql
  dsn: user:pass@tcp(localhost:3306)/costs
jwt:
  secret: file-secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "env-secret")

	LoadConfig()

	cfg := AppConfig
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	// Environment variables win over the file.
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}
