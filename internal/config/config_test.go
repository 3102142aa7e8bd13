package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "DATABASE_NAME", "PORT", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "accountsvc", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.Mongo.URI)
	assert.Empty(t, cfg.Mongo.Database)
	assert.False(t, cfg.DatabaseConfigured())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://127.0.0.1:27017")
	t.Setenv("DATABASE_NAME", "accounts")
	t.Setenv("PORT", "9100")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Mongo.URI)
	assert.Equal(t, "accounts", cfg.Mongo.Database)
	assert.Equal(t, 9100, cfg.App.Port)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.True(t, cfg.DatabaseConfigured())
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.App.Port)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[app]\nport = 9200\n\n[mongo]\nuri = \"mongodb://db:27017\"\ndatabase = \"accounts\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.App.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.True(t, cfg.DatabaseConfigured())
}

func TestEnvOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[mongo]\nuri = \"mongodb://file:27017\"\ndatabase = \"fromfile\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATABASE_NAME", "fromenv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://file:27017", cfg.Mongo.URI)
	assert.Equal(t, "fromenv", cfg.Mongo.Database)
}
