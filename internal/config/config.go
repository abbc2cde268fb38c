package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/inlet"
	"github.com/san-kum/busemann/internal/numerics"
)

const (
	DefaultMethod         = "pair"
	DefaultFreestreamMach = 5.0
	DefaultExitMach       = 2.5
	DefaultRecovery       = 0.95
	DefaultTolerance      = 1e-7
	DefaultWorkers        = 0
)

type Config struct {
	Method         string       `yaml:"method"`
	FreestreamMach float64      `yaml:"freestream_mach"`
	ExitMach       float64      `yaml:"exit_mach"`
	Recovery       float64      `yaml:"recovery"`
	Gamma          float64      `yaml:"gamma"`
	Steps          int          `yaml:"steps"`
	CaptureRadius  float64      `yaml:"capture_radius"`
	Integrator     string       `yaml:"integrator"`
	MaxNormalMach  float64      `yaml:"max_normal_mach"`
	Solver         SolverConfig `yaml:"solver"`
	Sweep          SweepConfig  `yaml:"sweep"`
}

type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

// SweepConfig is the Mach-pair grid used by the sweep command.
type SweepConfig struct {
	FreestreamMin float64 `yaml:"freestream_min"`
	FreestreamMax float64 `yaml:"freestream_max"`
	FreestreamN   int     `yaml:"freestream_n"`
	ExitMin       float64 `yaml:"exit_min"`
	ExitMax       float64 `yaml:"exit_max"`
	ExitN         int     `yaml:"exit_n"`
	Workers       int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:         DefaultMethod,
		FreestreamMach: DefaultFreestreamMach,
		ExitMach:       DefaultExitMach,
		Recovery:       DefaultRecovery,
		Gamma:          flow.GammaAir,
		Steps:          inlet.DefaultSteps,
		CaptureRadius:  inlet.DefaultCaptureRadius,
		Integrator:     "rk4",
		MaxNormalMach:  inlet.DefaultMaxNormalMach,
		Solver: SolverConfig{
			Tolerance:     DefaultTolerance,
			MaxIterations: numerics.DefaultMaxIterations,
		},
		Sweep: SweepConfig{
			FreestreamMin: 3.0,
			FreestreamMax: 7.0,
			FreestreamN:   5,
			ExitMin:       1.5,
			ExitMax:       3.0,
			ExitN:         4,
			Workers:       DefaultWorkers,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToDesign converts the file form to an inlet design configuration.
func (c *Config) ToDesign() (inlet.DesignConfig, error) {
	method, err := inlet.ParseMethod(c.Method)
	if err != nil {
		return inlet.DesignConfig{}, err
	}
	return inlet.DesignConfig{
		Method:         method,
		FreestreamMach: c.FreestreamMach,
		ExitMach:       c.ExitMach,
		Recovery:       c.Recovery,
		Gamma:          c.Gamma,
		Steps:          c.Steps,
		CaptureRadius:  c.CaptureRadius,
		Integrator:     c.Integrator,
		MaxNormalMach:  c.MaxNormalMach,
		Solver: numerics.SolverConfig{
			Tolerance:     c.Solver.Tolerance,
			MaxIterations: c.Solver.MaxIterations,
		},
	}, nil
}

// Validate checks the design part of the configuration.
func (c *Config) Validate() error {
	d, err := c.ToDesign()
	if err != nil {
		return err
	}
	return d.Validate()
}
