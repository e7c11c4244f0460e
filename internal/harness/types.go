// Package harness runs recorded equity cases through the engine and
// compares the computed win rates against collected reference rates.
package harness

// Case is one recorded evaluation: a table of hole cards, an optional
// board, and the win rates collected for it.
type Case struct {
	NumPlayers        int                `json:"num_players"`
	HoleCards         [][]string         `json:"hole_cards"`
	CommunityCards    []string           `json:"community_cards"`
	CollectedWinRates map[string]float64 `json:"collected_win_rates"`
}

// CaseResult records one executed case with the computed rates, the
// per-player differences against the collected rates, and the verdict.
type CaseResult struct {
	Case             int                `json:"test_case"`
	NumPlayers       int                `json:"num_players"`
	HoleCards        [][]string         `json:"hole_cards"`
	CommunityCards   []string           `json:"community_cards"`
	Expected         map[string]float64 `json:"expected_win_rates"`
	Calculated       map[string]float64 `json:"calculated_win_rates"`
	Differences      map[string]float64 `json:"differences"`
	ExecutionSeconds float64            `json:"execution_time"`
	Passed           bool               `json:"passed"`
}

// Report is the persisted outcome of a harness run.
type Report struct {
	Passed  int          `json:"passed"`
	Total   int          `json:"total"`
	Results []CaseResult `json:"results"`
}
