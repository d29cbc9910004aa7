// Package paths resolves the configuration, data and export directories.
//
// Each directory follows the same precedence: command-line flag, then the
// value from config.yaml, then an environment variable, then a default
// relative to the working directory. Resolved paths are absolute.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative default directory names.
const (
	DefaultConfigDirName = ".planboard"
	DefaultDataDirName   = ".planboard-db"
	DefaultOutDirName    = "out"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "PLANBOARD_CONFIG_DIR"
	EnvDataDir   = "PLANBOARD_DATA_DIR"
	EnvOutDir    = "PLANBOARD_OUT_DIR"
)

// getwd is replaced in tests.
var getwd = os.Getwd

// ResolveConfigDir returns the configuration directory: flag >
// PLANBOARD_CONFIG_DIR > $(CWD)/.planboard. There is no config.yaml value
// for the directory that holds config.yaml.
func ResolveConfigDir(flag string) (string, error) {
	return resolve(flag, "", EnvConfigDir, func() (string, error) {
		cwd, err := getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, DefaultConfigDirName), nil
	})
}

// ResolveDataDir returns the data directory: flag > configValue >
// PLANBOARD_DATA_DIR > $(CWD)/.planboard-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(flag, configValue, EnvDataDir, func() (string, error) {
		cwd, err := getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, DefaultDataDirName), nil
	})
}

// ResolveOutDir returns the export directory: flag > configValue >
// PLANBOARD_OUT_DIR > <dataDir>/out.
func ResolveOutDir(flag, configValue, dataDir string) (string, error) {
	return resolve(flag, configValue, EnvOutDir, func() (string, error) {
		return filepath.Abs(filepath.Join(dataDir, DefaultOutDirName))
	})
}

func resolve(flag, configValue, envKey string, fallback func() (string, error)) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(envKey); env != "" {
		return filepath.Abs(env)
	}
	return fallback()
}
