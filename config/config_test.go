package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: directory
  log:
    level: debug
http:
  port: 8080
auth:
  tokenTTL: 30m
secretKey:
  access: yaml-secret
persistence:
  queryTimeout: 2s
`

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("AUTH_TOKENTTL", "90s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "directory", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	assert.Equal(t, 90*time.Second, cfg.Auth.TokenTTL)
	assert.Equal(t, 2*time.Second, cfg.Persistence.QueryTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Persistence.QueryTimeout = time.Second

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Second, cfg.Persistence.QueryTimeout, "explicit values are kept")
	assert.Equal(t, defaultTxTimeout, cfg.Persistence.TxTimeout)
	assert.Equal(t, uint32(64*1024), cfg.Auth.Argon2.Memory)
	assert.Equal(t, uint32(3), cfg.Auth.Argon2.Iterations)
	assert.Equal(t, uint8(2), cfg.Auth.Argon2.Parallelism)
	assert.Equal(t, uint32(16), cfg.Auth.Argon2.SaltLength)
	assert.Equal(t, uint32(32), cfg.Auth.Argon2.KeyLength)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.ErrorContains(t, cfg.validate(), "secretKey.access")

	cfg.SecretKey.Access = "secret"
	require.ErrorContains(t, cfg.validate(), "postgres")
}
