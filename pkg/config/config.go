package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/gostdf/pkg/codec"
	"github.com/ssargent/gostdf/pkg/record"
	"github.com/ssargent/gostdf/pkg/source"
)

// Config represents the stdf tool configuration
type Config struct {
	Input   Input    `yaml:"input"`
	Output  Output   `yaml:"output"`
	Filter  []string `yaml:"filter"`
	Logging Logging  `yaml:"logging"`
	Metrics Metrics  `yaml:"metrics"`
	Catalog Catalog  `yaml:"catalog"`
}

// Input controls how STDF files are opened
type Input struct {
	Compression string `yaml:"compression"` // auto, none, gzip, bzip2 or zip
	BufferSize  int    `yaml:"buffer_size"`
}

// Output controls how rewritten files are encoded
type Output struct {
	Order      string `yaml:"order"` // little or big
	BufferSize int    `yaml:"buffer_size"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
	File   string `yaml:"file"`   // empty logs to stderr

	// Rotation of the log file
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	Compress   bool `yaml:"compress"`
}

// Metrics contains the prometheus endpoint configuration
type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Catalog locates the offset catalog
type Catalog struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Input: Input{
			Compression: string(source.CompressionAuto),
			BufferSize:  source.DefaultBufferSize,
		},
		Output: Output{
			Order:      "little",
			BufferSize: source.DefaultBufferSize,
		},
		Filter: []string{"ALL"},
		Logging: Logging{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
		Metrics: Metrics{
			Enabled: false,
			Addr:    "127.0.0.1:9090",
		},
		Catalog: Catalog{
			Dir: "./catalog",
		},
	}
}

// Validate checks the names used in the configuration
func (c *Config) Validate() error {
	var errs []error
	if _, err := source.ParseCompression(c.Input.Compression); err != nil {
		errs = append(errs, fmt.Errorf("input.compression: %w", err))
	}
	if c.Input.BufferSize < 0 {
		errs = append(errs, fmt.Errorf("input.buffer_size: must not be negative, got %d", c.Input.BufferSize))
	}
	if _, err := codec.ParseByteOrder(c.Output.Order); err != nil {
		errs = append(errs, fmt.Errorf("output.order: %w", err))
	}
	if _, err := record.ParseKinds(c.Filter); err != nil {
		errs = append(errs, fmt.Errorf("filter: %w", err))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		errs = append(errs, errors.New("metrics.addr: required when metrics are enabled"))
	}
	return errors.Join(errs...)
}

// SourceConfig converts the input section for source.Open
func (c *Config) SourceConfig() (source.Config, error) {
	comp, err := source.ParseCompression(c.Input.Compression)
	if err != nil {
		return source.Config{}, err
	}
	return source.Config{Compression: comp, BufferSize: c.Input.BufferSize}, nil
}

// FilterKinds returns the record kinds named by the filter section.
// An empty filter selects every kind.
func (c *Config) FilterKinds() (record.Kind, error) {
	if len(c.Filter) == 0 {
		return record.KindAll, nil
	}
	return record.ParseKinds(c.Filter)
}

// OutputOrder returns the byte order rewritten files are encoded in
func (c *Config) OutputOrder() (codec.ByteOrder, error) {
	return codec.ParseByteOrder(c.Output.Order)
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Sections missing from the file keep their defaults
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./stdf.yaml"
	}

	// For Linux/macOS, use ~/.config/stdf/config.yaml
	configDir := filepath.Join(homeDir, ".config", "stdf")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
