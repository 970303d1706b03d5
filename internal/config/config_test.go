// ABOUTME: Tests for configuration loading, expansion, and validation
// ABOUTME: Covers env var substitution and missing-field errors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8080"
auth:
  jwt_secret: "super-secret"
storage:
  data_dir: "/var/lib/persona-gateway"
openai:
  api_key: "sk-test"
  model: "gpt-4.1"
logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "/var/lib/persona-gateway", cfg.Storage.DataDir)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1", cfg.OpenAI.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_JWT_SECRET", "secret-from-env")

	path := writeConfig(t, `
server:
  http_addr: ":8080"
auth:
  jwt_secret: "${TEST_JWT_SECRET}"
storage:
  data_dir: "data"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.Auth.JWTSecret)
}

func TestLoad_UnsetEnvVarExpandsEmpty(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: ":8080"
auth:
  jwt_secret: "${DEFINITELY_NOT_SET_ANYWHERE}"
storage:
  data_dir: "data"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoad_MissingHTTPAddr(t *testing.T) {
	path := writeConfig(t, `
storage:
  data_dir: "data"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.http_addr")
}

func TestLoad_MissingDataDir(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: ":8080"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.data_dir")
}

func TestLoad_EmptyJWTSecretIsNotALoadError(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: ":8080"
storage:
  data_dir: "data"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: valid")
	_, err := Load(path)
	assert.Error(t, err)
}
