package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlcsp/solver"
)

// Sentinel errors for configuration loading.
var (
	// ErrInvalidConfig is returned for unreadable files, malformed YAML,
	// unknown keys, and out-of-range values.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownOrdering is returned for an unrecognized ordering name.
	ErrUnknownOrdering = errors.New("config: unknown ordering")
)

// Config mirrors the YAML schema; see the package documentation.
// Pointer fields distinguish "absent" (keep the solver default) from an
// explicit false/zero.
type Config struct {
	TimeoutMS        *int64 `yaml:"timeout_ms"`
	Propagation      *bool  `yaml:"propagation"`
	FullPropagation  bool   `yaml:"full_propagation"`
	VariableOrdering string `yaml:"variable_ordering"`
	ValueOrdering    string `yaml:"value_ordering"`
	Seed             *int64 `yaml:"seed"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document. Unknown keys are rejected so that typos
// surface instead of silently keeping defaults.
func Parse(data []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c, nil
}

// Options converts the document into solver options, validating names and
// ranges. Absent fields contribute no option and keep the solver defaults.
func (c Config) Options() ([]solver.Option, error) {
	var opts []solver.Option

	if c.TimeoutMS != nil {
		if *c.TimeoutMS < 0 {
			return nil, fmt.Errorf("%w: negative timeout_ms %d", ErrInvalidConfig, *c.TimeoutMS)
		}
		opts = append(opts, solver.WithTimeout(time.Duration(*c.TimeoutMS)*time.Millisecond))
	}
	if c.Propagation != nil {
		opts = append(opts, solver.WithPropagation(*c.Propagation))
	}
	if c.FullPropagation {
		opts = append(opts, solver.WithFullPropagation())
	}
	if c.VariableOrdering != "" {
		v, err := parseVariableOrdering(c.VariableOrdering)
		if err != nil {
			return nil, err
		}
		opts = append(opts, solver.WithVariableOrdering(v))
	}
	if c.ValueOrdering != "" {
		v, err := parseValueOrdering(c.ValueOrdering)
		if err != nil {
			return nil, err
		}
		opts = append(opts, solver.WithValueOrdering(v))
	}
	if c.Seed != nil {
		opts = append(opts, solver.WithSeed(*c.Seed))
	}
	return opts, nil
}

// parseVariableOrdering maps the stable spellings back to the enum.
func parseVariableOrdering(name string) (solver.VariableOrdering, error) {
	for _, v := range []solver.VariableOrdering{solver.MRV, solver.Static, solver.Degree, solver.DynamicMRV} {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: variable_ordering %q", ErrUnknownOrdering, name)
}

// parseValueOrdering maps the stable spellings back to the enum.
func parseValueOrdering(name string) (solver.ValueOrdering, error) {
	for _, v := range []solver.ValueOrdering{solver.Natural, solver.LeastConstraining, solver.Random} {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: value_ordering %q", ErrUnknownOrdering, name)
}
