package equity

// counters accumulates per-player win and tie credit. Both are
// float64 from the start: ties carry fractional credit, and mixing
// integer wins with fractional ties in one tally invites coercion
// bugs. Invariant: sum(wins) + sum(ties) == float64(trials).
type counters struct {
	wins   []float64
	ties   []float64
	trials int
}

func newCounters(players int) *counters {
	return &counters{
		wins: make([]float64, players),
		ties: make([]float64, players),
	}
}

// credit records one completed trial. A sole winner takes a full unit;
// k tied winners take 1/k each.
func (c *counters) credit(winners []int) {
	if len(winners) == 1 {
		c.wins[winners[0]]++
	} else {
		share := 1.0 / float64(len(winners))
		for _, w := range winners {
			c.ties[w] += share
		}
	}
	c.trials++
}

// merge folds another counter set into this one element-wise.
func (c *counters) merge(other *counters) {
	for i := range c.wins {
		c.wins[i] += other.wins[i]
		c.ties[i] += other.ties[i]
	}
	c.trials += other.trials
}

// percentages converts accumulated credit into unrounded per-player
// win percentages.
func (c *counters) percentages() []float64 {
	pcts := make([]float64, len(c.wins))
	if c.trials == 0 {
		return pcts
	}
	for i := range pcts {
		pcts[i] = (c.wins[i] + c.ties[i]) / float64(c.trials) * 100
	}
	return pcts
}
