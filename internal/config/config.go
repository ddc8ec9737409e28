// Package config loads engine settings from an optional YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries every tunable of the engine and CLI.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	Solver    SolverConfig    `yaml:"solver"`
	Generator GeneratorConfig `yaml:"generator"`
	Hints     HintConfig      `yaml:"hints"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"ARCANUM_LOG_LEVEL" env-default:"info"`
}

type StorageConfig struct {
	// Backend selects the save store: "fs" or "badger".
	Backend string `yaml:"backend" env:"ARCANUM_STORAGE_BACKEND" env-default:"fs"`
	DataDir string `yaml:"data_dir" env:"ARCANUM_DATA_DIR" env-default:"./data"`
}

type SolverConfig struct {
	MaxNodes    int           `yaml:"max_nodes" env:"ARCANUM_SOLVER_MAX_NODES" env-default:"200000"`
	MaxDuration time.Duration `yaml:"max_duration" env:"ARCANUM_SOLVER_MAX_DURATION" env-default:"2s"`
}

type GeneratorConfig struct {
	Attempts int `yaml:"attempts" env:"ARCANUM_GENERATOR_ATTEMPTS" env-default:"10"`
}

type HintConfig struct {
	Budget int `yaml:"budget" env:"ARCANUM_HINT_BUDGET" env-default:"2"`
}

// Load reads the YAML file at path when it exists, falling back to
// environment variables with their defaults when it does not. A file
// that exists but fails to parse is an error, never a silent default.
func Load(path string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(path, &cfg)
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
