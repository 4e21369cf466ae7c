package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// ConfigFileName is looked up next to the executable; the file is optional.
const ConfigFileName = "finkpi.yaml"

// Config represents the complete application configuration.
type Config struct {
	Paths PathsConfig `yaml:"paths" envconfig:"PATHS"`
	Chart ChartConfig `yaml:"chart" envconfig:"CHART"`
}

// PathsConfig overrides the default executable-relative directories.
// Relative values are resolved against the executable directory.
type PathsConfig struct {
	DataDir   string `yaml:"data_dir" envconfig:"DATA_DIR"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// ChartConfig controls trend chart rendering.
type ChartConfig struct {
	WidthInches  float64 `yaml:"width_inches" envconfig:"WIDTH_INCHES" default:"8" validate:"gt=0"`
	HeightInches float64 `yaml:"height_inches" envconfig:"HEIGHT_INCHES" default:"4" validate:"gt=0"`
}

// Load loads configuration from environment variables and the optional
// config file next to the executable. Environment values take precedence
// over file values, which take precedence over defaults.
func Load() (*Config, error) {
	exeDir, err := executableDir()
	if err != nil {
		return nil, err
	}
	return LoadIn(exeDir)
}

// LoadIn loads configuration rooted at the given base directory.
func LoadIn(baseDir string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("FINKPI", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	configFile := filepath.Join(baseDir, ConfigFileName)
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ResolvePaths builds the path set for this configuration, applying any
// directory overrides on top of the executable-relative defaults.
func (c *Config) ResolvePaths() (*Paths, error) {
	exeDir, err := executableDir()
	if err != nil {
		return nil, err
	}
	return c.ResolvePathsIn(exeDir), nil
}

// ResolvePathsIn builds the path set rooted at the given base directory.
func (c *Config) ResolvePathsIn(baseDir string) *Paths {
	paths := PathsIn(baseDir)
	if c.Paths.DataDir != "" {
		paths.SetDataDir(resolveAgainst(baseDir, c.Paths.DataDir))
	}
	if c.Paths.OutputDir != "" {
		paths.SetOutputDir(resolveAgainst(baseDir, c.Paths.OutputDir))
	}
	return paths
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merges file config with env config. Env values win; fields
// the environment left at their default are taken from the file.
func mergeConfigs(fileCfg, envCfg Config) Config {
	if envCfg.Paths.DataDir == "" {
		envCfg.Paths.DataDir = fileCfg.Paths.DataDir
	}
	if envCfg.Paths.OutputDir == "" {
		envCfg.Paths.OutputDir = fileCfg.Paths.OutputDir
	}
	if envCfg.Chart.WidthInches == defaultChartWidth && fileCfg.Chart.WidthInches != 0 {
		envCfg.Chart.WidthInches = fileCfg.Chart.WidthInches
	}
	if envCfg.Chart.HeightInches == defaultChartHeight && fileCfg.Chart.HeightInches != 0 {
		envCfg.Chart.HeightInches = fileCfg.Chart.HeightInches
	}
	return envCfg
}

const (
	defaultChartWidth  = 8
	defaultChartHeight = 4
)

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable symlinks: %w", err)
	}
	return filepath.Dir(exe), nil
}

func resolveAgainst(baseDir, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(baseDir, dir)
}
