package equity

import "math"

// convergenceMonitor tracks win-rate snapshots across sampling
// checkpoints and decides when the estimates have stabilised. The
// history is append-only within one evaluation and discarded with it.
type convergenceMonitor struct {
	threshold float64
	window    int
	history   [][]float64
}

func newConvergenceMonitor(threshold float64, window int) *convergenceMonitor {
	return &convergenceMonitor{threshold: threshold, window: window}
}

// observe appends a per-player win-rate snapshot (percentages).
func (m *convergenceMonitor) observe(snapshot []float64) {
	copied := make([]float64, len(snapshot))
	copy(copied, snapshot)
	m.history = append(m.history, copied)
}

// converged reports whether the trajectory has stabilised: at least 3
// snapshots recorded, and the average of the max-absolute-per-player
// movement over the most recent window of snapshot-to-snapshot
// comparisons below the threshold.
func (m *convergenceMonitor) converged() bool {
	if len(m.history) < 3 {
		return false
	}

	comparisons := m.window
	if available := len(m.history) - 1; comparisons > available {
		comparisons = available
	}

	sum := 0.0
	for i := len(m.history) - comparisons; i < len(m.history); i++ {
		sum += maxAbsDiff(m.history[i], m.history[i-1])
	}

	return sum/float64(comparisons) < m.threshold
}

func maxAbsDiff(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
