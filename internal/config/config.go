// Package config loads dxfcli's configuration from command-line flags,
// environment variables, and an optional TOML defaults file, layered the
// way a3tai-mcp-pdf-reader's internal/config package layers pflag/viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultOutputFormat  = "text"
	DefaultTargetVersion = "R2013"
	DefaultTolerance     = 1e-6

	envPrefix = "DXF"
)

// Config holds dxfcli's tunables: an output format (validated on load;
// no subcommand reads it), the release the convert subcommand saves at
// by default, and the float tolerance the inspect subcommand uses when
// comparing measurements.
type Config struct {
	OutputFormat  string
	TargetVersion string
	Tolerance     float64
}

// DefaultConfig returns a Config with every field at its built-in
// default, before any RC file, environment variable, or flag is applied.
func DefaultConfig() *Config {
	return &Config{
		OutputFormat:  DefaultOutputFormat,
		TargetVersion: DefaultTargetVersion,
		Tolerance:     DefaultTolerance,
	}
}

// rcFile is the optional persisted-defaults file, mirroring the TOML
// config odvcencio-got reads for its own CLI defaults.
type rcFile struct {
	OutputFormat  string  `toml:"output_format"`
	TargetVersion string  `toml:"target_version"`
	Tolerance     float64 `toml:"tolerance"`
}

// Load builds a Config layering, lowest precedence first: built-in
// defaults, ~/.dxfclirc.toml, DXF_-prefixed environment variables, and
// finally the flags already registered on fs.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()

	if rc, err := readRCFile(); err == nil && rc != nil {
		applyRCFile(cfg, rc)
	} else if err != nil {
		return nil, fmt.Errorf("config: read rc file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("output-format", cfg.OutputFormat)
	v.SetDefault("target-version", cfg.TargetVersion)
	v.SetDefault("tolerance", cfg.Tolerance)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	cfg.OutputFormat = v.GetString("output-format")
	cfg.TargetVersion = v.GetString("target-version")
	cfg.Tolerance = v.GetFloat64("tolerance")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

func rcFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dxfclirc.toml"), nil
}

func readRCFile() (*rcFile, error) {
	path, err := rcFilePath()
	if err != nil {
		return nil, nil //nolint: nilerr // no home directory, nothing to load
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	var rc rcFile
	if _, err := toml.DecodeFile(path, &rc); err != nil {
		return nil, err
	}
	return &rc, nil
}

func applyRCFile(cfg *Config, rc *rcFile) {
	if rc.OutputFormat != "" {
		cfg.OutputFormat = rc.OutputFormat
	}
	if rc.TargetVersion != "" {
		cfg.TargetVersion = rc.TargetVersion
	}
	if rc.Tolerance != 0 {
		cfg.Tolerance = rc.Tolerance
	}
}

// Validate reports whether c holds a usable configuration.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("output format must be one of text, json, csv, got %q", c.OutputFormat)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %v", c.Tolerance)
	}
	return nil
}
