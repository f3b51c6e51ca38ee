// Package config loads the lazysvn configuration from YAML.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unijfdev/lazysvn/internal/theme"
)

// AppConfig defines the global lazysvn configuration options.
type AppConfig struct {
	Theme     string `yaml:"theme"`      // Theme name: see theme.AvailableThemes
	DebugLog  string `yaml:"debug_log"`  // Path to the debug log file, empty disables logging
	SvnBin    string `yaml:"svn_bin"`    // Path to the svn binary
	ShowIcons bool   `yaml:"show_icons"` // Render Nerd Font icons next to file names
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:     theme.Default(),
		SvnBin:    "svn",
		ShowIcons: true,
	}
}

// LoadConfig reads the configuration file, falling back to defaults when no
// file exists or the YAML does not parse. An explicit configPath overrides
// the default lookup under the user config directory.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string

	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{expanded}
	} else {
		configBase := filepath.Join(getConfigDir(), "lazysvn")
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	cfg := DefaultConfig()

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path comes from the user's own config lookup
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return DefaultConfig(), nil
		}
		break
	}

	if cfg.Theme == "" || !theme.IsKnown(cfg.Theme) {
		cfg.Theme = theme.Default()
	}
	if strings.TrimSpace(cfg.SvnBin) == "" {
		cfg.SvnBin = "svn"
	}

	return cfg, nil
}

// ExpandPath expands a leading ~ and environment variables in a path.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
