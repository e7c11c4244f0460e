package harness

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCases reads a JSON array of recorded cases from filename.
func LoadCases(filename string) ([]Case, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading cases: %w", err)
	}

	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parsing cases: %w", err)
	}

	for i, c := range cases {
		if c.NumPlayers != len(c.HoleCards) {
			return nil, fmt.Errorf("case %d: num_players is %d but %d hole card sets given", i+1, c.NumPlayers, len(c.HoleCards))
		}
	}
	return cases, nil
}
