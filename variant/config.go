package variant

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"sigs.k8s.io/yaml"
)

//go:embed default.yaml
var defaultConfig []byte

// Config holds the candidate tables the generators sample from.
type Config struct {
	Roots                []float64 `json:"roots"`
	Coefficients         []float64 `json:"coefficients"`
	PositiveCoefficients []float64 `json:"positive_coefficients"`
	Frequencies          []float64 `json:"frequencies"`
	SystemFrequencies    []float64 `json:"system_frequencies"`
	EigenvectorEntries   []float64 `json:"eigenvector_entries"`
	MinEigenvectorWeight float64   `json:"min_eigenvector_weight"`
	MaxAttempts          int       `json:"max_attempts"`
}

// DefaultConfig returns the embedded tables.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultConfig)
	if err != nil {
		panic("variant: embedded default config: " + err.Error())
	}
	return cfg
}

// ParseConfig decodes YAML (or JSON) and validates the result. Unknown keys
// are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("variant: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the file at path; an empty path yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("variant: read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks that every sampling loop can terminate.
func (c Config) Validate() error {
	tables := []struct {
		name string
		vals []float64
	}{
		{"roots", c.Roots},
		{"coefficients", c.Coefficients},
		{"positive_coefficients", c.PositiveCoefficients},
		{"frequencies", c.Frequencies},
		{"system_frequencies", c.SystemFrequencies},
		{"eigenvector_entries", c.EigenvectorEntries},
	}
	for _, t := range tables {
		if len(t.vals) == 0 {
			return fmt.Errorf("variant: config table %s is empty", t.name)
		}
		for _, v := range t.vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("variant: config table %s holds non-finite %v", t.name, v)
			}
		}
	}
	for _, v := range c.Coefficients {
		if v == 0 {
			return errors.New("variant: coefficients must be nonzero")
		}
	}
	for _, v := range append(append([]float64(nil), c.Frequencies...), c.SystemFrequencies...) {
		if v <= 0 {
			return fmt.Errorf("variant: frequency %v is not positive", v)
		}
	}

	distinct := map[float64]bool{}
	magnitudes := map[float64]bool{}
	for _, r := range c.Roots {
		if r == 0 {
			return errors.New("variant: roots must be nonzero")
		}
		distinct[r] = true
		magnitudes[math.Abs(r)] = true
	}
	if len(magnitudes) < 2 {
		return errors.New("variant: roots need at least two distinct magnitudes")
	}
	if len(distinct) < 3 {
		return errors.New("variant: roots need at least three distinct values")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("variant: max_attempts must be positive, got %d", c.MaxAttempts)
	}
	return nil
}
