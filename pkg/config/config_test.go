package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lei40251/jsencrypt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, jsencrypt.DefaultKeySize, cfg.ResolvedKeySize())
	assert.Equal(t, DefaultTokenTTL, cfg.ResolvedTokenTTL())
	assert.False(t, cfg.AutoGenerate)
	assert.False(t, cfg.Log)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
key_size: "2048"
public_exponent: "03"
auto_generate: true
log: true
token_ttl: 1h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.ResolvedKeySize())
	assert.Equal(t, "03", cfg.Exponent)
	assert.True(t, cfg.AutoGenerate)
	assert.True(t, cfg.Log)
	assert.Equal(t, time.Hour, cfg.ResolvedTokenTTL())
}

func TestLoadUnreadableFile(t *testing.T) {
	// A directory at the config path is a read failure, not an absent file
	_, err := Load(t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadBadYaml(t *testing.T) {
	path := writeConfig(t, "key_size: [not: closed")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestUnparsableValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
key_size: "a lot"
token_ttl: sometime
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, jsencrypt.DefaultKeySize, cfg.ResolvedKeySize())
	assert.Equal(t, DefaultTokenTTL, cfg.ResolvedTokenTTL())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `key_size: "2048"`)

	t.Setenv("JSENCRYPT_KEY_SIZE", "4096")
	t.Setenv("JSENCRYPT_AUTO_GENERATE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.ResolvedKeySize())
	assert.True(t, cfg.AutoGenerate)
}

func TestFacadeOptions(t *testing.T) {
	cfg := &Config{KeySize: "512", Exponent: "010001", AutoGenerate: true}

	opts := cfg.FacadeOptions()
	assert.Equal(t, 512, opts.KeySize)
	assert.Equal(t, "010001", opts.ExponentHex)
	assert.True(t, opts.AutoGenerate)
	assert.Nil(t, opts.Logger, "logger should be unset unless log is enabled")

	cfg.Log = true
	assert.NotNil(t, cfg.FacadeOptions().Logger)
}

func TestFacadeOptionsRoundTrip(t *testing.T) {
	cfg := &Config{KeySize: "512", AutoGenerate: true}

	e := jsencrypt.New(cfg.FacadeOptions())
	key, err := e.Key()
	require.NoError(t, err)
	assert.Equal(t, 512, key.BitLength())
}

func TestWatch(t *testing.T) {
	path := writeConfig(t, `key_size: "1024"`)

	changed := make(chan *Config, 1)
	stop, err := Watch(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	defer func() { _ = stop() }()

	require.NoError(t, os.WriteFile(path, []byte(`key_size: "2048"`), 0o600))

	select {
	case cfg := <-changed:
		assert.Equal(t, 2048, cfg.ResolvedKeySize())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
