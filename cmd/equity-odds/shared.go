package main

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/internal/device"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/handrank"
)

// engineFlags are the settings every subcommand exposes. Flag values
// override the configuration file; zero values defer to it.
type engineFlags struct {
	Config     string `short:"c" help:"Path to HCL configuration file" default:"equity.hcl"`
	Iterations int    `short:"i" help:"Number of Monte Carlo trials (0 uses the per-player floor)"`
	Seed       *int64 `help:"Random seed for reproducible results"`
	Workers    int    `help:"Worker count (0 uses all CPUs)"`
	Device     string `help:"Computation device: auto, cpu or gpu" enum:"auto,cpu,gpu," default:""`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

// buildEngine resolves the configuration file, applies flag overrides,
// probes the computation device and constructs the engine.
func (f *engineFlags) buildEngine(logger *log.Logger) (*equity.Engine, error) {
	fileCfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	settings := fileCfg.Engine

	if f.Iterations > 0 {
		settings.Iterations = f.Iterations
	}
	if f.Workers > 0 {
		settings.Workers = f.Workers
	}
	if f.Device != "" {
		settings.Device = f.Device
	}

	capability := device.Detect(settings.Device, settings.Workers)
	logger.Info("computation device",
		"name", capability.Name,
		"accelerated", capability.Accelerated,
		"parallelism", capability.Parallelism)

	cfg := equity.Config{
		Iterations:           settings.Iterations,
		Antithetic:           settings.Antithetic == nil || *settings.Antithetic,
		AntitheticScale:      settings.AntitheticScale,
		Checkpoints:          settings.Checkpoints,
		ConvergenceThreshold: settings.ConvergenceThreshold,
		ConvergenceWindow:    settings.ConvergenceWindow,
		Device:               capability,
		Logger:               logger,
	}
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}

	return equity.New(handrank.New(), cfg), nil
}
