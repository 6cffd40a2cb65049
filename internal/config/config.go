package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSeparator   = ";"
	DefaultK0          = 1e8
	DefaultEa          = 75000.0
	DefaultTemperature = 350.0
	DefaultFlowRate    = 1.0
	DefaultFeedConc    = 1.0
	DefaultDataDir     = ".rtdlab"
)

type Config struct {
	Input    InputConfig    `yaml:"input"`
	Kinetics KineticsConfig `yaml:"kinetics"`
	Reactor  ReactorConfig  `yaml:"reactor"`
	Output   OutputConfig   `yaml:"output"`
}

type InputConfig struct {
	Path         string `yaml:"path"`
	Separator    string `yaml:"separator"`
	SkipRows     int    `yaml:"skip_rows"`
	HeaderRow    int    `yaml:"header_row"` // -1 for no header
	TimeColumn   int    `yaml:"time_column"`
	SignalColumn int    `yaml:"signal_column"`
}

type KineticsConfig struct {
	K0          float64 `yaml:"k0"`
	Ea          float64 `yaml:"ea"`
	Temperature float64 `yaml:"temperature"`
}

type ReactorConfig struct {
	FlowRate          float64 `yaml:"flow_rate"`
	FeedConcentration float64 `yaml:"feed_concentration"`
}

type OutputConfig struct {
	DataDir string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Separator:    DefaultSeparator,
			HeaderRow:    -1,
			TimeColumn:   0,
			SignalColumn: 1,
		},
		Kinetics: KineticsConfig{
			K0:          DefaultK0,
			Ea:          DefaultEa,
			Temperature: DefaultTemperature,
		},
		Reactor: ReactorConfig{
			FlowRate:          DefaultFlowRate,
			FeedConcentration: DefaultFeedConc,
		},
		Output: OutputConfig{
			DataDir: DefaultDataDir,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
