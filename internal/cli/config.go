package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/planboard/internal/logging"
	"github.com/mesh-intelligence/planboard/internal/paths"
	"github.com/mesh-intelligence/planboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyOutDir   = "out_dir"
	cfgKeyLogLevel = "log_level"

	envPrefix = "PLANBOARD"
)

// configFile is the layout of config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	OutDir   string `yaml:"out_dir,omitempty"`
	LogLevel string `yaml:"log_level"`
}

// settings is the resolved configuration of one command run.
type settings struct {
	configDir string
	config    types.Config
	logLevel  slog.Level
}

// loadConfig reads config.yaml from configDir. A missing file is not an
// error. PLANBOARD_BACKEND and PLANBOARD_LOG_LEVEL (or LOG_LEVEL) override
// the file; directory keys are resolved by package paths instead.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSON)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv(cfgKeyBackend); err != nil {
		return nil, err
	}
	if err := v.BindEnv(cfgKeyLogLevel, envPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveSettings combines flags, config.yaml and the environment.
func resolveSettings(flags *rootFlags) (settings, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}
	outDir, err := paths.ResolveOutDir(flags.outDir, v.GetString(cfgKeyOutDir), dataDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve out dir: %w", err)
	}

	backend := v.GetString(cfgKeyBackend)
	if flags.backend != "" {
		backend = flags.backend
	}
	level, err := logging.ParseLevel(v.GetString(cfgKeyLogLevel))
	if err != nil {
		return settings{}, err
	}

	s := settings{
		configDir: configDir,
		config:    types.Config{Backend: backend, DataDir: dataDir, OutDir: outDir},
		logLevel:  level,
	}
	if err := s.config.Validate(); err != nil {
		return settings{}, err
	}
	return s, nil
}

// writeConfigIfMissing creates config.yaml with cfg when the file does not
// exist. An existing file is left untouched.
func writeConfigIfMissing(configDir string, cfg configFile) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
