package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cinetick/cinetick/pkg/config"
)

type appConfig struct {
	BaseURL   string        `env:"CINETICK_API_BASE_URL" envDefault:"http://localhost:8080/api"`
	Timeout   time.Duration `env:"CINETICK_REQUEST_TIMEOUT" envDefault:"10s"`
	StateDir  string        `env:"CINETICK_STATE_DIR"`
	Profile   string        `env:"CINETICK_PROFILE"`
	LogLevel  string        `env:"CINETICK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string        `env:"CINETICK_LOG_FORMAT" envDefault:"text"`
}

// stateDir returns the directory holding session files and the optional
// profiles file, defaulting to the user config directory.
func (c appConfig) stateDir() (string, error) {
	if c.StateDir != "" {
		return c.StateDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "cinetick"), nil
}

// profilesFile is the optional per-user backend profile list, read from
// profiles.yaml in the state directory.
type profilesFile struct {
	Default  string             `yaml:"default"`
	Profiles map[string]profile `yaml:"profiles"`
}

type profile struct {
	BaseURL string `yaml:"base_url"`
}

// resolveBaseURL picks the backend base URL: an explicitly selected or
// default profile from profiles.yaml wins over the environment value.
// A missing profiles file is fine.
func resolveBaseURL(cfg appConfig, stateDir string) (string, error) {
	var file profilesFile
	err := config.LoadFile(filepath.Join(stateDir, "profiles.yaml"), &file)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg.BaseURL, nil
	}
	if err != nil {
		return "", err
	}

	name := cfg.Profile
	if name == "" {
		name = file.Default
	}
	if name == "" {
		return cfg.BaseURL, nil
	}

	p, ok := file.Profiles[name]
	if !ok {
		return "", fmt.Errorf("profile %q not found in profiles.yaml", name)
	}
	if p.BaseURL == "" {
		return "", fmt.Errorf("profile %q has no base_url", name)
	}
	return p.BaseURL, nil
}
