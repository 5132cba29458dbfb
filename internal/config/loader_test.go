package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "toolrouter.json"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_Load_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolrouter.json")
	payload := `{
		"provider": "openai",
		"model": "gpt-4-turbo",
		"api_key_env": "OPENAI_API_KEY",
		"logging": {"level": "debug", "pretty": false}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4-turbo", cfg.Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.APIKeyEnv)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Pretty)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolrouter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model": "claude-opus-4"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4", cfg.Model)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoader_Load_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolrouter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoader_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "toolrouter.json")
	loader := NewLoader(path)

	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.Model = "gpt-4-turbo"
	cfg.APIKeyEnv = "OPENAI_API_KEY"
	require.NoError(t, loader.Save(cfg))

	reloaded, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "openai", reloaded.Provider)
	assert.Equal(t, "gpt-4-turbo", reloaded.Model)
}

func TestLoader_GetConfigPath(t *testing.T) {
	assert.Equal(t, "/tmp/x.json", NewLoader("/tmp/x.json").GetConfigPath())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".toolrouter", "toolrouter.json"), NewLoader("").GetConfigPath())
}
