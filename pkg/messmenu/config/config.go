// Package config loads parsing options from YAML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the variable holding the default options file path.
const EnvConfigPath = "MESSMENU_CONFIG"

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ResolvePath returns flagPath, or the path from MESSMENU_CONFIG when flagPath is empty.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads options from a YAML file. An empty path yields the defaults.
func Load(path string) (messmenu.Options, error) {
	opts := messmenu.DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	if opts.HeaderScanRows < 0 || opts.MinDayMatches < 0 {
		return opts, fmt.Errorf("config %s: header_scan_rows and min_day_matches must not be negative", path)
	}
	return opts, nil
}
