package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lei40251/jsencrypt"
)

const (
	DefaultConfigPath = "/etc/jsencrypt"
	ConfigFileName    = "jsencrypt.yml"

	// DefaultTokenTTL is the token lifetime used when token_ttl is absent
	// or unparsable.
	DefaultTokenTTL = 8 * time.Minute
)

// Config holds the settings for the facade and the CLI. Numeric values are
// kept as strings so that absent or unparsable input degrades to defaults
// instead of failing.
type Config struct {
	// KeySize is the modulus bit length for generated keys.
	KeySize string `yaml:"key_size"`

	// Exponent is the public exponent for generated keys, in hexadecimal.
	Exponent string `yaml:"public_exponent"`

	// AutoGenerate enables on-demand key generation.
	AutoGenerate bool `yaml:"auto_generate"`

	// Log enables warning output, such as on key replacement.
	Log bool `yaml:"log"`

	// TokenTTL is the lifetime of issued tokens, in Go duration syntax.
	TokenTTL string `yaml:"token_ttl"`
}

// Load reads configuration from a yaml file and overlays JSENCRYPT_*
// environment variables. An absent file is not an error; every field has a
// default. An empty path means $JSENCRYPT_CONFIG_PATH, falling back to
// /etc/jsencrypt/jsencrypt.yml.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		dir := os.Getenv("JSENCRYPT_CONFIG_PATH")
		if dir == "" {
			dir = DefaultConfigPath
		}
		path = filepath.Join(dir, ConfigFileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	if val := os.Getenv("JSENCRYPT_KEY_SIZE"); val != "" {
		c.KeySize = val
	}
	if val := os.Getenv("JSENCRYPT_PUBLIC_EXPONENT"); val != "" {
		c.Exponent = val
	}
	if val := os.Getenv("JSENCRYPT_AUTO_GENERATE"); val != "" {
		c.AutoGenerate = val == "true" || val == "1"
	}
	if val := os.Getenv("JSENCRYPT_LOG"); val != "" {
		c.Log = val == "true" || val == "1"
	}
	if val := os.Getenv("JSENCRYPT_TOKEN_TTL"); val != "" {
		c.TokenTTL = val
	}
}

// ResolvedKeySize returns the configured key size, or the facade default
// when the value is absent or unparsable.
func (c *Config) ResolvedKeySize() int {
	size, err := strconv.Atoi(c.KeySize)
	if err != nil || size <= 0 {
		return jsencrypt.DefaultKeySize
	}
	return size
}

// ResolvedTokenTTL returns the configured token lifetime, or
// DefaultTokenTTL when the value is absent or unparsable.
func (c *Config) ResolvedTokenTTL() time.Duration {
	ttl, err := time.ParseDuration(c.TokenTTL)
	if err != nil || ttl <= 0 {
		return DefaultTokenTTL
	}
	return ttl
}

// FacadeOptions resolves the configuration into facade options. The Log
// flag maps to the default slog logger.
func (c *Config) FacadeOptions() jsencrypt.Options {
	opts := jsencrypt.Options{
		KeySize:      c.ResolvedKeySize(),
		ExponentHex:  c.Exponent,
		AutoGenerate: c.AutoGenerate,
	}
	if c.Log {
		opts.Logger = slog.Default()
	}
	return opts
}
