package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/search"
)

// MinSide is the smallest width or height Resize will accept.
const MinSide = 5

// NoBand is reported by CellView.GradientBand outside ModeGradient.
const NoBand = -1

// Bands is the number of gradient bands.
const Bands = 5

// Sentinel errors carried by precondition panics.
var (
	// ErrNoMaze: the call needs a generated maze but Regenerate was never called.
	ErrNoMaze = errors.New("maze: no maze generated")

	// ErrNotTraversing: RequestMove outside ModeUserTraversal.
	ErrNotTraversing = errors.New("maze: not in user traversal")

	// ErrCellOutOfRange: a cell argument lies outside the grid.
	ErrCellOutOfRange = errors.New("maze: cell out of range")

	// ErrIdleRequested: Idle cannot be re-entered through SetMode.
	ErrIdleRequested = errors.New("maze: idle mode cannot be requested")

	// ErrInvalidDirection: RequestMove with a direction outside N/E/S/W.
	ErrInvalidDirection = errors.New("maze: invalid direction")
)

// Mode identifies the active state of a Maze.
type Mode int

const (
	ModeIdle Mode = iota
	ModeMazeBuild
	ModeSearchBFS
	ModeSearchDFS
	ModePathReplay
	ModeUserTraversal
	ModeGradient
)

// String returns the human-readable title of the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeMazeBuild:
		return "Maze Construction"
	case ModeSearchBFS:
		return "Breadth-First Search"
	case ModeSearchDFS:
		return "Depth-First Search"
	case ModePathReplay:
		return "Path Replay"
	case ModeUserTraversal:
		return "User"
	case ModeGradient:
		return "Color Gradient"
	}

	return fmt.Sprintf("mode(%d)", int(m))
}

// Searching reports whether m is one of the search replay modes.
func (m Mode) Searching() bool {
	return m == ModeSearchBFS || m == ModeSearchDFS
}

// Option configures a Maze.
type Option func(*Options)

// Options holds Maze configuration.
type Options struct {
	// Rand is the default random source for Regenerate.
	Rand *rand.Rand

	// ShowVisited controls whether search replays reveal visited cells and
	// whether QueryCell reports them.
	ShowVisited bool

	// SearchOrder drives the route computation and the gradient.
	SearchOrder search.Order
}

// DefaultOptions returns show-visited on, depth-first route search and a
// time-seeded random source.
func DefaultOptions() Options {
	return Options{
		ShowVisited: true,
		SearchOrder: search.DepthFirst,
	}
}

// WithSeed seeds the maze's own random source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the maze's random source.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithShowVisited sets the initial show-visited flag.
func WithShowVisited(show bool) Option {
	return func(o *Options) {
		o.ShowVisited = show
	}
}

// WithSearchOrder selects the order used for the route and the gradient.
func WithSearchOrder(order search.Order) Option {
	return func(o *Options) {
		o.SearchOrder = order
	}
}

func (o *Options) finalize() {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// Snapshot describes one generated maze.
type Snapshot struct {
	ID          uuid.UUID
	Width       int
	Height      int
	Bias        gridgraph.Bias
	Start       gridgraph.Cell
	End         gridgraph.Cell
	TotalEdges  int              // edges of the full grid
	Tree        []gridgraph.Edge // spanning-tree edges in acceptance order
	TotalWeight int64
	Route       []gridgraph.Cell // start → end
}

// StepResult reports what one Advance call did.
type StepResult struct {
	// Mode is the active mode after the call.
	Mode Mode
	// Changed is true when an item was revealed.
	Changed bool
	// Transitioned is true when the call switched modes.
	Transitioned bool
	// Edge is the revealed passage in ModeMazeBuild.
	Edge gridgraph.Edge
	// Cell is the revealed cell in search and path replay.
	Cell gridgraph.Cell
	// WrongMove marks a revealed search cell that is off the route.
	WrongMove bool
	// Finished is true once path replay has revealed the whole route.
	Finished bool
}

// MoveResult reports what one RequestMove call did.
type MoveResult struct {
	Moved      bool
	From, To   gridgraph.Cell
	WrongMove  bool
	ReachedEnd bool
	Mode       Mode
}

// Metrics are the counters shown to the player.
type Metrics struct {
	Steps      int
	WrongMoves int
}

// CellView is the per-cell data a renderer needs.
type CellView struct {
	// Open is indexed by gridgraph.Direction (North, East, South, West).
	Open         [4]bool
	Visited      bool
	OnFinalPath  bool
	GradientBand int
	Current      bool
	Start        bool
	End          bool
}
