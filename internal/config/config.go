// Package config loads the process-wide configuration file. All values
// are read once at startup; the engine never re-reads configuration.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration file
type Config struct {
	Engine EngineSettings `hcl:"engine,block"`
}

// EngineSettings tunes the equity engine. The antithetic scale and
// convergence threshold defaults are empirical, which is why they live
// here instead of in code.
//
// The numeric knobs treat zero as unset: none of them has a meaningful
// zero setting (a zero scale would sample nothing, a zero threshold
// would never converge), so an explicit zero in the file falls back to
// the default exactly like an omitted attribute. Only the boolean
// antithetic toggle distinguishes unset from false.
type EngineSettings struct {
	Workers              int      `hcl:"workers,optional"`
	Iterations           int      `hcl:"iterations,optional"`
	Antithetic           *bool    `hcl:"antithetic,optional"`
	AntitheticScale      float64  `hcl:"antithetic_scale,optional"`
	Checkpoints          int      `hcl:"checkpoints,optional"`
	ConvergenceThreshold float64  `hcl:"convergence_threshold,optional"`
	ConvergenceWindow    int      `hcl:"convergence_window,optional"`
	Device               string   `hcl:"device,optional"`
	LogLevel             string   `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	antithetic := true
	return &Config{
		Engine: EngineSettings{
			Workers:              0, // all CPUs
			Antithetic:           &antithetic,
			AntitheticScale:      0.6,
			Checkpoints:          10,
			ConvergenceThreshold: 0.1,
			ConvergenceWindow:    3,
			Device:               "auto",
			LogLevel:             "info",
		},
	}
}

// Load reads configuration from an HCL file, returning defaults when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Engine.Antithetic == nil {
		cfg.Engine.Antithetic = def.Engine.Antithetic
	}
	if cfg.Engine.AntitheticScale == 0 {
		cfg.Engine.AntitheticScale = def.Engine.AntitheticScale
	}
	if cfg.Engine.Checkpoints == 0 {
		cfg.Engine.Checkpoints = def.Engine.Checkpoints
	}
	if cfg.Engine.ConvergenceThreshold == 0 {
		cfg.Engine.ConvergenceThreshold = def.Engine.ConvergenceThreshold
	}
	if cfg.Engine.ConvergenceWindow == 0 {
		cfg.Engine.ConvergenceWindow = def.Engine.ConvergenceWindow
	}
	if cfg.Engine.Device == "" {
		cfg.Engine.Device = def.Engine.Device
	}
	if cfg.Engine.LogLevel == "" {
		cfg.Engine.LogLevel = def.Engine.LogLevel
	}
}
