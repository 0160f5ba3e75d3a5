package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithEnvSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "profmatch", cfg.Database.Name)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "professors", cfg.Assets.Folder)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiration())
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "8080"
database:
  name: profmatch_test
jwt:
  secret: file-secret
  token_expiration: 1h
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Environment wins over the file, the file wins over defaults.
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "profmatch_test", cfg.Database.Name)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.TokenExpiration())
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfig_BadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_TOKEN_EXPIRATION", "one day")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expiration")
}
