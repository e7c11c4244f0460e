// Package device describes the process-wide computation capability.
// The descriptor is resolved once at startup and injected into the
// engine, so tests can exercise both branches without global state.
package device

import "runtime"

// Capability describes where batch work can execute.
type Capability struct {
	// Accelerated reports whether an accelerated device was requested
	// and is usable. No accelerated kernel ships today, so batching
	// always runs on the CPU pool; the flag is informational.
	Accelerated bool

	// Name is "cpu" or "gpu".
	Name string

	// Parallelism is the number of concurrent batch workers available.
	Parallelism int
}

// Detect resolves a capability from a configured mode ("auto", "cpu"
// or "gpu") and worker count. Zero workers means all CPUs.
//
// Detect performs no hardware probe: Accelerated reflects what the
// configuration asked for, not what exists, and "auto" always resolves
// to the CPU pool. If an accelerated kernel ever ships, the probe
// belongs here.
func Detect(mode string, workers int) Capability {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cap := Capability{Name: "cpu", Parallelism: workers}
	if mode == "gpu" {
		// Honor the request so callers see what was asked for, but no
		// kernel exists; the engine falls back to CPU batching.
		cap.Accelerated = true
		cap.Name = "gpu"
	}
	return cap
}
