package main

import (
	"crypto"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lei40251/jsencrypt"
	"github.com/lei40251/jsencrypt/pkg/config"
)

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newFacade builds a facade from the effective configuration and, when
// keyPath is non-empty, loads the key material found there.
func newFacade(keyPath string) (*jsencrypt.JSEncrypt, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}

	e := jsencrypt.New(conf.FacadeOptions())
	if keyPath != "" {
		material, err := os.ReadFile(keyPath)
		if err != nil {
			return nil, err
		}
		if err := e.SetKey(string(material)); err != nil {
			return nil, fmt.Errorf("%s: %w", keyPath, err)
		}
	}
	return e, nil
}

// readInput returns the first positional argument, or the whole of
// standard input when the argument is absent or "-".
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func hashByName(name string) (crypto.Hash, error) {
	switch strings.ToLower(name) {
	case "sha1":
		return crypto.SHA1, nil
	case "sha256":
		return crypto.SHA256, nil
	case "sha384":
		return crypto.SHA384, nil
	case "sha512":
		return crypto.SHA512, nil
	}
	return 0, fmt.Errorf("unsupported hash %q", name)
}
