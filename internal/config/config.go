// Package config loads the gridpath CLI configuration from defaults, an
// optional YAML file, an optional .env file and GRIDPATH_* environment
// variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridpath"
)

// Environment variables read by Load.
const (
	EnvConfigPath   = "GRIDPATH_CONFIG"
	EnvLogLevel     = "GRIDPATH_LOG_LEVEL"
	EnvLogPretty    = "GRIDPATH_LOG_PRETTY"
	EnvConnectivity = "GRIDPATH_CONNECTIVITY"
	EnvStepCost     = "GRIDPATH_STEP_COST"
	EnvMaxCost      = "GRIDPATH_MAX_COST"
)

// ErrInvalid is returned by Validate (and Load) for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Search struct {
		// Connectivity is "4" or "8".
		Connectivity string `yaml:"connectivity"`
		StepCost     int64  `yaml:"step_cost"`
		// MaxCost caps the explored path cost; 0 disables the cap.
		MaxCost int64 `yaml:"max_cost"`
	} `yaml:"search"`
}

func defaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Search.Connectivity = "4"
	c.Search.StepCost = 1
	c.Search.MaxCost = 0
	return c
}

// Load builds the configuration. envFiles are passed to godotenv; when none
// are given ".env" in the working directory is tried. Missing env files are
// not an error, variables already set in the environment win over them.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	c := defaultConfig()
	if path := os.Getenv(EnvConfigPath); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogPretty); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLogPretty, v)
		}
		c.Logging.Pretty = b
	}
	if v := os.Getenv(EnvConnectivity); v != "" {
		c.Search.Connectivity = v
	}
	if v := os.Getenv(EnvStepCost); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvStepCost, v)
		}
		c.Search.StepCost = n
	}
	if v := os.Getenv(EnvMaxCost); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMaxCost, v)
		}
		c.Search.MaxCost = n
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks search settings.
func (c Config) Validate() error {
	if _, err := gridpath.ParseConnectivity(c.Search.Connectivity); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Search.StepCost <= 0 {
		return fmt.Errorf("%w: step_cost must be positive, got %d", ErrInvalid, c.Search.StepCost)
	}
	if c.Search.MaxCost < 0 {
		return fmt.Errorf("%w: max_cost must be non-negative, got %d", ErrInvalid, c.Search.MaxCost)
	}
	return nil
}

// GridOptions converts the search settings into gridpath options.
// c must be valid.
func (c Config) GridOptions() gridpath.GridOptions {
	conn, _ := gridpath.ParseConnectivity(c.Search.Connectivity)
	return gridpath.GridOptions{Conn: conn, StepCost: c.Search.StepCost}
}
