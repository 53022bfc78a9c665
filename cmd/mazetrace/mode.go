package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

// runMode is what mazetrace does after construction.
type runMode int

const (
	runBFS runMode = iota
	runDFS
	runWalk
	runGradientStart
	runGradientEnd
)

var runModeNames = map[runMode]string{
	runBFS:           "bfs",
	runDFS:           "dfs",
	runWalk:          "walk",
	runGradientStart: "gradient-start",
	runGradientEnd:   "gradient-end",
}

func (r runMode) String() string {
	if s, ok := runModeNames[r]; ok {
		return s
	}

	return fmt.Sprintf("runMode(%d)", int(r))
}

func parseRunMode(s string) (runMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, name := range runModeNames {
		if s == name {
			return mode, nil
		}
	}

	return 0, fmt.Errorf("unknown mode %q", s)
}

// parseMoves turns a script such as "ddrr" or "d,d,r r" into directions.
// Commas and whitespace are ignored.
func parseMoves(script string) ([]gridgraph.Direction, error) {
	var out []gridgraph.Direction
	for i, r := range script {
		if r == ',' || r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		d, err := gridgraph.ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		out = append(out, d)
	}

	return out, nil
}
