// Package config provides configuration management for the LaTeX cleanup
// tool. Settings live in an optional TOML file; a missing or malformed
// file means defaults, so the tool always runs without any setup.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"latex-cleanup/internal/logger"
	"latex-cleanup/internal/types"
)

const (
	// DefaultConfigFileName is the default configuration file name.
	DefaultConfigFileName = "config.toml"
	// DefaultOutputSuffix replaces the input extension for cleaned files.
	DefaultOutputSuffix = ".clean.tex"
	// DefaultConcurrency is the number of documents cleaned in parallel
	// in batch mode.
	DefaultConcurrency = 3
)

// Config holds the tool configuration.
type Config struct {
	OutputSuffix string `toml:"output_suffix"`
	Backup       bool   `toml:"backup"`
	Concurrency  int    `toml:"concurrency"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
}

// Manager loads and saves the tool configuration.
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a Manager for the given config path. An empty path
// uses ~/.config/latex-cleanup/config.toml.
func NewManager(configPath string) (*Manager, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, types.NewAppError(types.ErrConfig, "failed to resolve user home directory", err)
		}
		configPath = filepath.Join(homeDir, ".config", "latex-cleanup", DefaultConfigFileName)
	}

	return &Manager{
		configPath: configPath,
		config:     defaultConfig(),
	}, nil
}

func defaultConfig() *Config {
	return &Config{
		OutputSuffix: DefaultOutputSuffix,
		Concurrency:  DefaultConcurrency,
		LogLevel:     "info",
	}
}

// Load reads the config file. A missing file keeps the defaults; a
// malformed file keeps the defaults and logs a warning.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("config file not found, using defaults",
				logger.String("path", m.configPath))
			m.config = defaultConfig()
			return nil
		}
		return types.NewAppError(types.ErrConfig, "failed to read config file", err)
	}

	config := defaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		logger.Warn("invalid config file, using defaults",
			logger.String("path", m.configPath), logger.Err(err))
		m.config = defaultConfig()
		return nil
	}
	m.config = config

	// Backstop empty fields so a sparse file still behaves.
	if m.config.OutputSuffix == "" {
		m.config.OutputSuffix = DefaultOutputSuffix
	}
	if m.config.Concurrency <= 0 {
		m.config.Concurrency = DefaultConcurrency
	}

	logger.Debug("configuration loaded", logger.String("path", m.configPath))
	return nil
}

// Save writes the current configuration to the config file.
func (m *Manager) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to create config directory", err)
	}

	data, err := toml.Marshal(m.config)
	if err != nil {
		return types.NewAppError(types.ErrConfig, "failed to marshal config", err)
	}
	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to write config file", err)
	}
	return nil
}

// GetConfig returns the current configuration.
func (m *Manager) GetConfig() *Config {
	if m.config == nil {
		return defaultConfig()
	}
	return m.config
}

// GetConfigPath returns the path of the config file.
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// GetOutputSuffix returns the suffix used for default output paths.
func (m *Manager) GetOutputSuffix() string {
	if m.config != nil && m.config.OutputSuffix != "" {
		return m.config.OutputSuffix
	}
	return DefaultOutputSuffix
}

// GetConcurrency returns the batch-mode concurrency.
func (m *Manager) GetConcurrency() int {
	if m.config != nil && m.config.Concurrency > 0 {
		return m.config.Concurrency
	}
	return DefaultConcurrency
}
