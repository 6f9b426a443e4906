package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/logging"
	"github.com/utkarshgarg7100/tcp-congestion-analyser/usecase"
)

type Config config
type config struct {
	// Logging configuration.
	Logging logging.Config `yaml:"logging"`
	// Input is the simulator results file.
	Input string `yaml:"input"`
	// OutputDir receives charts and summary tables.
	OutputDir string `yaml:"output_dir"`
	// MaxInputSize rejects unexpectedly large inputs; zero disables the check.
	MaxInputSize datasize.ByteSize `yaml:"max_input_size"`
	// Variants restricts the analysis to variants matching any glob.
	Variants []string `yaml:"variants"`
	// Charts configures image geometry.
	Charts ChartsConfig `yaml:"charts"`
}

type ChartsConfig struct {
	WidthIn         float64 `yaml:"width_in"`
	HeightIn        float64 `yaml:"height_in"`
	ScatterWidthIn  float64 `yaml:"scatter_width_in"`
	ScatterHeightIn float64 `yaml:"scatter_height_in"`
	DPI             int     `yaml:"dpi"`
}

func DefaultConfig() *Config {
	return &Config{
		Logging: logging.Config{
			Level: zapcore.InfoLevel,
		},
		Input:        "results_corrected.csv",
		OutputDir:    ".",
		MaxInputSize: 64 * datasize.MB,
		Charts: ChartsConfig{
			WidthIn:         12,
			HeightIn:        6,
			ScatterWidthIn:  10,
			ScatterHeightIn: 7,
			DPI:             300,
		},
	}
}

// LoadConfig loads the configuration from the given path. An empty path
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to deserialize config: %w", err)
	}

	return cfg, nil
}

// UnmarshalYAML serves as a proxy for validation.
func (m *Config) UnmarshalYAML(value *yaml.Node) error {
	if err := value.Decode((*config)(m)); err != nil {
		return err
	}
	return m.Validate()
}

func (m *Config) Validate() error {
	if m.Input == "" {
		return errors.New("input must not be empty")
	}
	if m.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if _, err := usecase.NewVariantFilter(m.Variants); err != nil {
		return err
	}
	return m.Charts.Validate()
}

func (m *ChartsConfig) Validate() error {
	if m.WidthIn <= 0 || m.HeightIn <= 0 || m.ScatterWidthIn <= 0 || m.ScatterHeightIn <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %+v", *m)
	}
	if m.DPI <= 0 {
		return fmt.Errorf("chart dpi must be positive, got %d", m.DPI)
	}
	return nil
}
