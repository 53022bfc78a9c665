package gridgraph

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no WeightFn is given.
const DefaultEdgeWeight int64 = 1

// MaxRandomWeight is the exclusive upper bound of RandomWeightFn's base draw.
const MaxRandomWeight = 100

// BiasMultiplier scales the base draw of edges penalised by a Bias.
const BiasMultiplier = 50

// WeightFn produces the weight of the edge leaving (row, col) in direction dir.
// Build only ever passes South or East. It must be deterministic for a given
// RNG seed and call order (row-major, South before East).
type WeightFn func(row, col int, dir Direction) int64

// Bias skews random weights so that spanning trees favour long corridors
// along one axis.
type Bias int

const (
	// BiasNone draws every edge weight from the same distribution.
	BiasNone Bias = iota
	// BiasHorizontal penalises South edges, producing horizontal corridors.
	BiasHorizontal
	// BiasVertical penalises East edges, producing vertical corridors.
	BiasVertical
)

// String returns the lowercase bias name.
func (b Bias) String() string {
	switch b {
	case BiasNone:
		return "none"
	case BiasHorizontal:
		return "horizontal"
	case BiasVertical:
		return "vertical"
	}

	return fmt.Sprintf("bias(%d)", int(b))
}

// ParseBias accepts "none", "horizontal"/"h" and "vertical"/"v".
// The empty string parses as BiasNone.
func ParseBias(s string) (Bias, error) {
	switch s {
	case "", "none", "n":
		return BiasNone, nil
	case "horizontal", "h":
		return BiasHorizontal, nil
	case "vertical", "v":
		return BiasVertical, nil
	}

	return BiasNone, fmt.Errorf("gridgraph: unknown bias %q", s)
}

// Multiplier returns the factor applied to an edge created toward dir.
func (b Bias) Multiplier(dir Direction) int64 {
	switch {
	case b == BiasHorizontal && (dir == South || dir == North):
		return BiasMultiplier
	case b == BiasVertical && (dir == East || dir == West):
		return BiasMultiplier
	}

	return 1
}

// DefaultWeightFn always returns DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_, _ int, _ Direction) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_, _ int, _ Direction) int64 {
		return value
	}
}

// RandomWeightFn returns a WeightFn drawing rng.Intn(MaxRandomWeight) for each
// edge and multiplying it by bias.Multiplier(dir). One value is drawn per call,
// so a seeded rng reproduces the same grid.
// Panics if rng is nil.
func RandomWeightFn(rng *rand.Rand, bias Bias) WeightFn {
	if rng == nil {
		panic("RandomWeightFn: rng must not be nil")
	}

	return func(_, _ int, dir Direction) int64 {
		return int64(rng.Intn(MaxRandomWeight)) * bias.Multiplier(dir)
	}
}
