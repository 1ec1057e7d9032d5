// Config loading for the cafe CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/cafe/internal/console"
	"github.com/mesh-intelligence/cafe/internal/logging"
	"github.com/mesh-intelligence/cafe/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "CAFE"

	// Config keys.
	cfgKeyBackend  = "backend"
	cfgKeySeed     = "seed"
	cfgKeyCafeName = "cafe_name"
	cfgKeyLogLevel = "log_level"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Backend  string `yaml:"backend"`
	Seed     bool   `yaml:"seed"`
	CafeName string `yaml:"cafe_name"`
	LogLevel string `yaml:"log_level"`
}

// defaultConfig is the content init writes when config.yaml is missing.
var defaultConfig = configFile{
	Backend:  types.BackendMemory,
	Seed:     true,
	CafeName: console.DefaultCafeName,
	LogLevel: logging.DefaultLevel,
}

// settings is the resolved configuration for one run.
type settings struct {
	store    types.Config
	cafeName string
	logLevel string
}

// loadSettings reads config.yaml from configDir using Viper and applies
// CAFE_* environment variables and command-line flags on top.
// A missing config.yaml is not an error.
func loadSettings(cmd *cobra.Command, configDir string) (settings, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultConfig.Backend)
	v.SetDefault(cfgKeySeed, defaultConfig.Seed)
	v.SetDefault(cfgKeyCafeName, defaultConfig.CafeName)
	v.SetDefault(cfgKeyLogLevel, defaultConfig.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	flagKeys := map[string]string{
		"backend":   cfgKeyBackend,
		"log-level": cfgKeyLogLevel,
		"cafe-name": cfgKeyCafeName,
	}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	if cmd.Flags().Changed("no-seed") {
		v.Set(cfgKeySeed, false)
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		store: types.Config{
			Backend: v.GetString(cfgKeyBackend),
			Seed:    v.GetBool(cfgKeySeed),
		},
		cafeName: v.GetString(cfgKeyCafeName),
		logLevel: v.GetString(cfgKeyLogLevel),
	}
	if err := s.store.Validate(); err != nil {
		return settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(configDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
