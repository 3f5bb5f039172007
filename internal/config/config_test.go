package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
  postgresDsn: "host=db user=postgres"
  memcachedAddr: "cache:11211"
auth:
  jwtSecret: "from-file"
  tokenTTL: 30m
cache:
  ttl: 1m
`)

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", conf.Server.Addr)
	assert.Equal(t, "cache:11211", conf.Server.MemcachedAddr)
	assert.Equal(t, "from-file", conf.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, conf.Auth.TokenTTL)
	assert.Equal(t, 10, conf.Auth.BcryptCost)
	assert.Equal(t, time.Minute, conf.Cache.TTL)
}

func TestLoadEnvOverlay(t *testing.T) {
	path := writeConfig(t, `
server:
  postgresDsn: "host=db"
auth:
  jwtSecret: "from-file"
`)
	t.Setenv("JWT_SECRET", "legacy")
	t.Setenv("TUNEDECK_ADDR", ":7000")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "legacy", conf.Auth.JWTSecret)
	assert.Equal(t, ":7000", conf.Server.Addr)

	t.Setenv("TUNEDECK_JWT_SECRET", "prefixed")
	conf, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prefixed", conf.Auth.JWTSecret)
}

func TestLoadMissingSecretFails(t *testing.T) {
	path := writeConfig(t, `
server:
  postgresDsn: "host=db"
`)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TUNEDECK_JWT_SECRET", "")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwtSecret")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadSkipsServeValidation(t *testing.T) {
	path := writeConfig(t, `
server:
  postgresDsn: "host=db"
`)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TUNEDECK_JWT_SECRET", "")

	conf, err := Read(path)
	require.NoError(t, err)
	assert.NoError(t, conf.ValidateDatabase())
	assert.Error(t, conf.Validate())
}
