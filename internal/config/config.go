package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lapsim/internal/track"
	"github.com/san-kum/lapsim/internal/vehicle"
)

const (
	DefaultDt      = 0.01
	DefaultWorkers = 0 // 0 = number of CPUs
)

type Config struct {
	Vehicle vehicle.Params  `yaml:"vehicle"`
	Track   []track.Segment `yaml:"track"`
	Dt      float64         `yaml:"dt"`
	Sweep   SweepConfig     `yaml:"sweep"`
}

// SweepConfig describes a parameter sweep: either an explicit value list or
// an inclusive min/max range with a step.
type SweepConfig struct {
	Param   string    `yaml:"param"`
	Values  []float64 `yaml:"values"`
	Min     float64   `yaml:"min"`
	Max     float64   `yaml:"max"`
	Step    float64   `yaml:"step"`
	Workers int       `yaml:"workers"`
}

// Expand returns the swept value sequence in input order. Explicit values
// win over the range form.
func (s SweepConfig) Expand() ([]float64, error) {
	if len(s.Values) > 0 {
		out := make([]float64, len(s.Values))
		copy(out, s.Values)
		return out, nil
	}
	if s.Step <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %g", s.Step)
	}
	if s.Max < s.Min {
		return nil, fmt.Errorf("sweep max %g below min %g", s.Max, s.Min)
	}
	values := make([]float64, 0)
	for v := s.Min; v <= s.Max+1e-9; v += s.Step {
		values = append(values, v)
	}
	return values, nil
}

func DefaultConfig() *Config {
	return &Config{
		Vehicle: vehicle.Default(),
		Track:   monacoSegments(),
		Dt:      DefaultDt,
		Sweep: SweepConfig{
			Param: "downforce_coeff",
			Min:   2.5,
			Max:   4.5,
			Step:  0.25,
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

// BuildTrack assembles the configured segments into a track definition.
func (c *Config) BuildTrack() (*track.Track, error) {
	return track.FromSegments(c.Track)
}
