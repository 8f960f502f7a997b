package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigEnvVar names the environment variable that points at a config file
const ConfigEnvVar = "ARBOR_CONFIG"

// GetConfigPath returns the config file location.
// Priority order:
//  1. explicit path (the --config flag), if non-empty
//  2. ARBOR_CONFIG environment variable (if set)
//  3. $XDG_CONFIG_HOME/arbor/config.yaml
//  4. ~/.config/arbor/config.yaml
//
// The file is not required to exist.
func GetConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "arbor", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "arbor", "config.yaml"), nil
}
