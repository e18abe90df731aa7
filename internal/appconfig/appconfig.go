// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultHierarchy is the preset applied when the config omits one.
	defaultHierarchy = "clinical"
	// defaultAgeGroup is applied when the config omits one.
	defaultAgeGroup = "adult"
	// defaultChartType is the drilldown series type for generated reports.
	defaultChartType = "column"
)

// Config represents the top-level application configuration.
type Config struct {
	DataDir     string `json:"dataDir,omitempty"`
	ReportDir   string `json:"reportDir,omitempty"`
	Hierarchy   string `json:"hierarchy,omitempty"`
	AgeGroup    string `json:"ageGroup,omitempty"`
	Registry    string `json:"registry,omitempty"`
	Presets     string `json:"presets,omitempty"`
	ChartType   string `json:"chartType,omitempty"`
	ReportTitle string `json:"reportTitle,omitempty"`
	LogFile     string `json:"logFile,omitempty"`
	Debug       bool   `json:"debug"`
	ConfigPath  string `json:"-"`
}

// HierarchyName returns the configured hierarchy preset, applying the default if not set.
func (c Config) HierarchyName() string {
	if h := strings.TrimSpace(c.Hierarchy); h != "" {
		return h
	}
	return defaultHierarchy
}

// AgeGroupName returns the configured age group, applying the default if not set.
func (c Config) AgeGroupName() string {
	if a := strings.TrimSpace(c.AgeGroup); a != "" {
		return a
	}
	return defaultAgeGroup
}

// ChartTypeName returns the configured chart type, applying the default if not set.
func (c Config) ChartTypeName() string {
	if t := strings.TrimSpace(c.ChartType); t != "" {
		return t
	}
	return defaultChartType
}

// ReportDirPath returns the directory reports are written to, applying a default if not set.
func (c Config) ReportDirPath() string {
	if d := strings.TrimSpace(c.ReportDir); d != "" {
		return d
	}
	return "reports"
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "neuroscore.log"
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
