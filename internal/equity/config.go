package equity

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-equity/internal/device"
)

// Sample-count floors by player count. More players mean more variance
// per trial is absorbed by the larger field, so the floor shrinks.
const (
	floorFewPlayers  = 120000 // 2-3 players
	floorMidPlayers  = 100000 // 4-6 players
	floorManyPlayers = 80000  // 7-9 players

	// minChunkTrials bounds how small a convergence-checkpoint chunk
	// can get, so checkpoint overhead never dominates.
	minChunkTrials = 1000
)

// Config tunes the engine. The antithetic scale and convergence
// threshold are empirical values, kept configurable on purpose.
type Config struct {
	// Iterations is the caller-requested trial count. Counts below the
	// per-player-count floor are raised to it; counts above are
	// honored as-is. Zero means "use the floor".
	Iterations int

	// Antithetic pairs every primary draw with a suit-mirrored one and
	// scales the trial target down by AntitheticScale to hold compute
	// roughly constant.
	Antithetic      bool
	AntitheticScale float64

	// Checkpoints is how many convergence checkpoints the sampling
	// budget is divided into.
	Checkpoints int

	// ConvergenceThreshold is the average max-per-player percentage
	// movement (in points) below which sampling stops early.
	// ConvergenceWindow is how many recent snapshot-to-snapshot
	// comparisons that average spans.
	ConvergenceThreshold float64
	ConvergenceWindow    int

	// Seed fixes the random sequence for reproducible runs. Zero seeds
	// from the wall clock.
	Seed int64

	// Device is the process-wide capability descriptor resolved at
	// startup.
	Device device.Capability

	// Logger receives progress and early-stop events. Nil disables
	// logging.
	Logger *log.Logger
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Antithetic:           true,
		AntitheticScale:      0.6,
		Checkpoints:          10,
		ConvergenceThreshold: 0.1,
		ConvergenceWindow:    3,
		Device:               device.Detect("auto", 0),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.AntitheticScale <= 0 || c.AntitheticScale > 1 {
		c.AntitheticScale = def.AntitheticScale
	}
	if c.Checkpoints <= 0 {
		c.Checkpoints = def.Checkpoints
	}
	if c.ConvergenceThreshold <= 0 {
		c.ConvergenceThreshold = def.ConvergenceThreshold
	}
	if c.ConvergenceWindow <= 0 {
		c.ConvergenceWindow = def.ConvergenceWindow
	}
	if c.Device.Parallelism <= 0 {
		c.Device = def.Device
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// sampleFloor returns the minimum trial count for a player count.
func sampleFloor(players int) int {
	switch {
	case players <= 3:
		return floorFewPlayers
	case players <= 6:
		return floorMidPlayers
	default:
		return floorManyPlayers
	}
}
