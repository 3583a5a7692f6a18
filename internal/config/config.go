package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Layout Layout `yaml:"layout"`
	Output Output `yaml:"output"`
}

// Layout describes how a tool's results tree is organized on disk.
type Layout struct {
	JobPrefix    string   `yaml:"job_prefix"`
	PrimaryLog   string   `yaml:"primary_log"`
	SecondaryLog string   `yaml:"secondary_log"`
	SkipDirs     []string `yaml:"skip_dirs"`
}

type Output struct {
	Dir      string `yaml:"dir"`
	ExactDir string `yaml:"exact_dir"`
}

func Default() *Config {
	return &Config{
		Layout: Layout{
			JobPrefix:    "slurm-",
			PrimaryLog:   "run.out",
			SecondaryLog: "output.log",
			SkipDirs:     []string{"options"},
		},
		Output: Output{
			Dir:      "output",
			ExactDir: "exact_results",
		},
	}
}

// Load reads the config file at path. A missing file is not an error:
// the cluster runs never shipped one, so defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Layout.JobPrefix == "" {
		cfg.Layout.JobPrefix = def.Layout.JobPrefix
	}
	if cfg.Layout.PrimaryLog == "" {
		cfg.Layout.PrimaryLog = def.Layout.PrimaryLog
	}
	if cfg.Layout.SecondaryLog == "" {
		cfg.Layout.SecondaryLog = def.Layout.SecondaryLog
	}
	if cfg.Layout.SkipDirs == nil {
		cfg.Layout.SkipDirs = def.Layout.SkipDirs
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
	if cfg.Output.ExactDir == "" {
		cfg.Output.ExactDir = def.Output.ExactDir
	}
}
