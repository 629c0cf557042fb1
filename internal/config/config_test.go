package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 9872, c.Server.Port)
	assert.Equal(t, ":9872", c.Addr())
	assert.Equal(t, "ops-tracker-dev-secret", c.Auth.JWTSecret)
	assert.Equal(t, "gemini-2.5-flash", c.LLM.Model)
	assert.Equal(t, "ops_tracker", c.Database.Name)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
auth:
  jwt_secret: file-secret
database:
  host: db.internal
  name: tracker_prod
log:
  level: debug
`), 0o644))

	c := Load(path)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "file-secret", c.Auth.JWTSecret)
	assert.Equal(t, "db.internal", c.Database.Host)
	assert.Equal(t, "tracker_prod", c.Database.Name)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  jwt_secret: file-secret\n"), 0o644))

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PORT", "7000")
	t.Setenv("DB_PORT", "not-a-number") // ignored, keeps the previous value

	c := Load(path)
	assert.Equal(t, "env-secret", c.Auth.JWTSecret)
	assert.Equal(t, 7000, c.Server.Port)
	assert.Equal(t, 3306, c.Database.Port)
}
