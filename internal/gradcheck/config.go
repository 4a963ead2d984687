package gradcheck

import (
	"bytes"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configurations that cannot drive a check.
var ErrInvalidConfig = errors.New("invalid gradcheck config")

// Config controls a gradient check run.
//
// Example file:
//
//	epsilon: 0.01
//	tolerance: 0.01
//	seed: 42
//	parallelism: 4
//	cases: [select/rank1-repeat, meandim/rank2-axis0]
type Config struct {
	// Epsilon is the central-difference step.
	Epsilon float64 `yaml:"epsilon"`

	// Tolerance is the largest accepted absolute difference between the
	// analytic and the numerical gradient of any element.
	Tolerance float64 `yaml:"tolerance"`

	// Seed seeds the input of the first case; case i uses Seed+i.
	Seed uint64 `yaml:"seed"`

	// Parallelism bounds the number of cases checked at once.
	Parallelism int `yaml:"parallelism"`

	// Cases restricts the run to the named cases. Empty means all.
	Cases []string `yaml:"cases,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Epsilon:     1e-2,
		Tolerance:   1e-2,
		Seed:        42,
		Parallelism: runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not read config")
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "could not parse config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Epsilon <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "epsilon must be positive, got %g", c.Epsilon)
	}
	if c.Tolerance <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tolerance must be positive, got %g", c.Tolerance)
	}
	if c.Parallelism < 1 {
		return errors.Wrapf(ErrInvalidConfig, "parallelism must be at least 1, got %d", c.Parallelism)
	}
	return nil
}
