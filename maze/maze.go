package maze

import (
	"math/rand"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/kruskal"
	"github.com/katalvlaran/lvlath-maze/search"
)

// Maze is the replay engine for one generated maze at a time.
type Maze struct {
	opts        Options
	showVisited bool
	bias        gridgraph.Bias

	graph *gridgraph.GridGraph
	tree  *gridgraph.EdgeSet // every spanning-tree edge
	snap  *Snapshot

	revealed  *gridgraph.EdgeSet // passages drawn so far
	onRoute   *hashset.Set       // cells of snap.Route
	visited   *hashset.Set       // cells revealed by search replay or walked by the user
	pathShown *hashset.Set       // route cells revealed by path replay

	state   state
	title   string
	pos     gridgraph.Cell
	metrics Metrics
}

// New returns an idle Maze. Call Regenerate before anything else.
func New(opts ...Option) *Maze {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.finalize()

	return &Maze{
		opts:        o,
		showVisited: o.ShowVisited,
		revealed:    gridgraph.NewEdgeSet(),
		onRoute:     hashset.New(),
		visited:     hashset.New(),
		pathShown:   hashset.New(),
		state:       idleState{},
		title:       ModeIdle.String(),
	}
}

// Regenerate discards the current maze and builds a fresh width×height one.
// Edge weights are drawn from rng (nil uses the maze's own source) and skewed
// by bias; the spanning tree and the start → end route are computed at once,
// then the maze enters ModeMazeBuild with no passage revealed.
// Panics with gridgraph.ErrInvalidSize if a side is below 1.
// Complexity: O(E log E) for the tree plus O(V) for the route.
func (m *Maze) Regenerate(width, height int, bias gridgraph.Bias, rng *rand.Rand) *Snapshot {
	if width < 1 || height < 1 {
		panic(errors.Wrapf(gridgraph.ErrInvalidSize, "Regenerate(%d, %d)", width, height))
	}
	if rng == nil {
		rng = m.opts.Rand
	}

	g, err := gridgraph.Build(width, height, gridgraph.RandomWeightFn(rng, bias))
	if err != nil {
		panic(errors.Wrap(err, "build grid"))
	}
	res, err := kruskal.SpanningTree(g)
	if err != nil {
		panic(errors.Wrap(err, "spanning tree"))
	}
	open := res.Open()

	start := gridgraph.Cell{Row: 0, Col: 0}
	end := gridgraph.Cell{Row: height - 1, Col: width - 1}
	tr, err := search.Run(g, open, start, end, search.WithOrder(m.opts.SearchOrder))
	if err != nil {
		panic(errors.Wrap(err, "route search"))
	}
	route, err := tr.Route()
	if err != nil {
		panic(errors.Wrap(err, "route backtrack"))
	}

	m.graph, m.tree, m.bias = g, open, bias
	m.snap = &Snapshot{
		ID:          uuid.New(),
		Width:       width,
		Height:      height,
		Bias:        bias,
		Start:       start,
		End:         end,
		TotalEdges:  g.NumEdges(),
		Tree:        res.Edges,
		TotalWeight: res.TotalWeight,
		Route:       route,
	}
	m.onRoute.Clear()
	for _, c := range route {
		m.onRoute.Add(c)
	}
	klog.V(2).Infof("maze %s: generated %dx%d bias=%s tree=%d/%d route=%d",
		m.snap.ID, width, height, bias, len(res.Edges), g.NumEdges(), len(route))

	m.enterBuild()

	return m.Snapshot()
}

// Resize regenerates with the current bias, clamping each side to MinSide.
func (m *Maze) Resize(width, height int) *Snapshot {
	if width < MinSide {
		width = MinSide
	}
	if height < MinSide {
		height = MinSide
	}

	return m.Regenerate(width, height, m.bias, nil)
}

// Rebias regenerates at the current size with a new bias.
// Panics with ErrNoMaze before the first Regenerate.
func (m *Maze) Rebias(bias gridgraph.Bias) *Snapshot {
	m.mustHaveMaze("Rebias")

	return m.Regenerate(m.snap.Width, m.snap.Height, bias, nil)
}

// SetMode requests a mode change. It returns false, changing nothing, while a
// maze construction replay is still running. Entering a mode resets the
// metrics, the visited set and the revealed route.
//
//   - ModeMazeBuild replays construction of the current maze from scratch.
//   - ModeSearchBFS / ModeSearchDFS run the search now; with show-visited off
//     the maze goes straight to ModePathReplay.
//   - ModeGradient colours by distance from the start cell (see ShowGradient).
//
// Panics with ErrNoMaze before the first Regenerate and with ErrIdleRequested
// for ModeIdle.
func (m *Maze) SetMode(mode Mode) bool {
	m.mustHaveMaze("SetMode")
	if mode == ModeIdle {
		panic(errors.Wrap(ErrIdleRequested, "SetMode"))
	}
	if m.building() {
		klog.V(4).Infof("maze %s: %s ignored during construction", m.snap.ID, mode)
		return false
	}

	switch mode {
	case ModeMazeBuild:
		m.enterBuild()
	case ModeSearchBFS:
		m.enterSearch(search.BreadthFirst)
	case ModeSearchDFS:
		m.enterSearch(search.DepthFirst)
	case ModePathReplay:
		m.resetProgress()
		m.title = ModePathReplay.String()
		m.enterPath()
	case ModeUserTraversal:
		m.enterUser()
	case ModeGradient:
		return m.ShowGradient(m.snap.Start)
	default:
		panic(errors.Errorf("maze: unknown mode %d", int(mode)))
	}

	return true
}

// ToggleShowVisited flips the show-visited flag and reports whether it did.
// The flag is locked during construction, search replay and the gradient.
func (m *Maze) ToggleShowVisited() bool {
	switch m.state.(type) {
	case *buildState, *searchState, *gradientState:
		return false
	}
	m.showVisited = !m.showVisited
	klog.V(4).Infof("maze: show visited = %t", m.showVisited)

	return true
}

// ShowVisited reports the current show-visited flag.
func (m *Maze) ShowVisited() bool { return m.showVisited }

// Mode returns the active mode.
func (m *Maze) Mode() Mode { return m.state.mode() }

// Title returns the caption a host displays for the active mode. Automatic
// transitions into path replay keep the caption of the mode that led there.
func (m *Maze) Title() string { return m.title }

// Position returns the user's cell. It is the start cell outside traversal
// until the first move.
func (m *Maze) Position() gridgraph.Cell { return m.pos }

// Metrics returns the step counters of the current mode.
func (m *Maze) Metrics() Metrics { return m.metrics }

// Finished reports whether path replay has revealed the whole route.
func (m *Maze) Finished() bool {
	p, ok := m.state.(*pathState)

	return ok && p.finished
}

// Route returns a copy of the start → end route, nil before the first Regenerate.
func (m *Maze) Route() []gridgraph.Cell {
	if m.snap == nil {
		return nil
	}

	return append([]gridgraph.Cell(nil), m.snap.Route...)
}

// Snapshot returns a copy of the current maze description, nil before the
// first Regenerate.
func (m *Maze) Snapshot() *Snapshot {
	if m.snap == nil {
		return nil
	}
	s := *m.snap
	s.Tree = append([]gridgraph.Edge(nil), m.snap.Tree...)
	s.Route = append([]gridgraph.Cell(nil), m.snap.Route...)

	return &s
}

// QueryCell returns what a renderer needs for the cell at (row, col).
// Panics with ErrNoMaze before the first Regenerate and with
// ErrCellOutOfRange off the grid.
// Complexity: O(1).
func (m *Maze) QueryCell(row, col int) CellView {
	m.mustHaveMaze("QueryCell")
	c := gridgraph.Cell{Row: row, Col: col}
	m.mustContain("QueryCell", c)

	v := CellView{
		Visited:      m.showVisited && m.visited.Contains(c),
		OnFinalPath:  m.pathShown.Contains(c),
		GradientBand: NoBand,
		Start:        c == m.snap.Start,
		End:          c == m.snap.End,
	}
	for _, d := range gridgraph.Directions {
		if e, ok := m.graph.EdgeToward(c, d); ok {
			v.Open[d] = m.revealed.Contains(e.ID)
		}
	}
	switch st := m.state.(type) {
	case *gradientState:
		v.GradientBand = st.bands[m.graph.Index(c)]
	case *userState:
		v.Current = c == m.pos
	}

	return v
}

// enterBuild clears all revealed passages and starts the construction replay.
func (m *Maze) enterBuild() {
	m.revealed.Clear()
	m.resetProgress()
	m.title = ModeMazeBuild.String()
	m.transition(&buildState{})
}

// enterSearch runs a full search from start to end and starts its replay.
func (m *Maze) enterSearch(order search.Order) {
	tr, err := search.Run(m.graph, m.tree, m.snap.Start, m.snap.End, search.WithOrder(order))
	if err != nil {
		panic(errors.Wrapf(err, "%s over the spanning tree", order))
	}
	m.resetProgress()
	st := &searchState{trace: tr}
	m.title = st.mode().String()
	if !m.showVisited {
		m.enterPath()
		return
	}
	m.transition(st)
}

// enterPath starts the route replay, keeping metrics and visited cells.
func (m *Maze) enterPath() {
	m.pathShown.Clear()
	m.transition(&pathState{})
}

// enterUser places the user on the start cell.
func (m *Maze) enterUser() {
	m.resetProgress()
	m.pos = m.snap.Start
	m.title = ModeUserTraversal.String()
	m.transition(&userState{})
}

// resetProgress zeroes the per-mode observables.
func (m *Maze) resetProgress() {
	m.metrics = Metrics{}
	m.visited.Clear()
	m.pathShown.Clear()
	m.pos = m.snap.Start
}

func (m *Maze) transition(next state) {
	klog.V(2).Infof("maze %s: %s -> %s", m.snap.ID, m.state.mode(), next.mode())
	m.state = next
}

func (m *Maze) building() bool {
	_, ok := m.state.(*buildState)

	return ok
}

func (m *Maze) mustHaveMaze(op string) {
	if m.snap == nil {
		panic(errors.Wrap(ErrNoMaze, op))
	}
}

func (m *Maze) mustContain(op string, c gridgraph.Cell) {
	if !m.graph.InBounds(c) {
		panic(errors.Wrapf(ErrCellOutOfRange, "%s %v in %dx%d", op, c, m.snap.Width, m.snap.Height))
	}
}
