package maze

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

// Advance reveals one more item of the active replay:
//
//   - ModeMazeBuild: the next spanning-tree edge. After the last one the maze
//     switches to ModeUserTraversal in the same call.
//   - ModeSearchBFS / ModeSearchDFS: the next visited cell. Steps always grows
//     by one; WrongMoves grows when the cell is off the route. After the last
//     cell the maze switches to ModePathReplay in the same call.
//   - ModePathReplay: the next route cell, start first. Once the whole route
//     is shown Advance is a no-op reporting Finished.
//   - ModeUserTraversal, ModeGradient: no-op.
//
// Panics with ErrNoMaze in ModeIdle.
func (m *Maze) Advance() StepResult {
	switch st := m.state.(type) {
	case idleState:
		panic(errors.Wrap(ErrNoMaze, "Advance in idle mode"))
	case *buildState:
		return m.advanceBuild(st)
	case *searchState:
		return m.advanceSearch(st)
	case *pathState:
		return m.advancePath(st)
	}

	return StepResult{Mode: m.Mode()}
}

func (m *Maze) advanceBuild(st *buildState) StepResult {
	var res StepResult
	if st.cursor < len(m.snap.Tree) {
		res.Edge = m.snap.Tree[st.cursor]
		res.Changed = true
		m.revealed.Add(res.Edge.ID)
		st.cursor++
		klog.V(4).Infof("maze %s: revealed edge %v", m.snap.ID, res.Edge)
	}
	if st.cursor == len(m.snap.Tree) {
		m.enterUser()
		res.Transitioned = true
	}
	res.Mode = m.Mode()

	return res
}

func (m *Maze) advanceSearch(st *searchState) StepResult {
	var res StepResult
	visits := st.trace.Visits
	if st.cursor < len(visits) {
		c := visits[st.cursor]
		st.cursor++
		res.Cell, res.Changed = c, true
		res.WrongMove = m.record(c)
		klog.V(4).Infof("maze %s: %s visited %v wrong=%t", m.snap.ID, st.mode(), c, res.WrongMove)
	}
	if st.cursor == len(visits) {
		m.enterPath()
		res.Transitioned = true
	}
	res.Mode = m.Mode()

	return res
}

func (m *Maze) advancePath(st *pathState) StepResult {
	res := StepResult{Mode: ModePathReplay, Finished: st.finished}
	if st.finished {
		return res
	}
	route := m.snap.Route
	res.Cell, res.Changed = route[st.cursor], true
	m.pathShown.Add(res.Cell)
	st.cursor++
	if st.cursor == len(route) {
		st.finished, res.Finished = true, true
		klog.V(2).Infof("maze %s: path replay finished, %d cells", m.snap.ID, len(route))
	}

	return res
}

// RequestMove walks the user one cell in direction d. Moving into a wall or
// off the grid changes nothing and reports Moved == false. A successful move
// counts one step, plus one wrong move when the destination is off the route.
// Reaching the end cell switches to ModePathReplay.
// Panics with ErrNotTraversing outside ModeUserTraversal and with
// ErrInvalidDirection for an undefined direction.
func (m *Maze) RequestMove(d gridgraph.Direction) MoveResult {
	if _, ok := m.state.(*userState); !ok {
		panic(errors.Wrapf(ErrNotTraversing, "RequestMove(%s) in %s", d, m.Mode()))
	}
	if !d.Valid() {
		panic(errors.Wrapf(ErrInvalidDirection, "RequestMove(%d)", int(d)))
	}

	res := MoveResult{From: m.pos, To: m.pos, Mode: ModeUserTraversal}
	e, ok := m.graph.EdgeToward(m.pos, d)
	if !ok || !m.revealed.Contains(e.ID) {
		klog.V(4).Infof("maze %s: blocked %s at %v", m.snap.ID, d, m.pos)
		return res
	}

	m.pos = e.Other(m.pos)
	res.To, res.Moved = m.pos, true
	res.WrongMove = m.record(m.pos)
	klog.V(4).Infof("maze %s: moved %s to %v wrong=%t", m.snap.ID, d, m.pos, res.WrongMove)
	if m.pos == m.snap.End {
		res.ReachedEnd = true
		m.enterPath()
		res.Mode = ModePathReplay
	}

	return res
}

// record marks c visited and updates the counters. It reports whether c is
// off the route.
func (m *Maze) record(c gridgraph.Cell) bool {
	m.visited.Add(c)
	m.metrics.Steps++
	if m.onRoute.Contains(c) {
		return false
	}
	m.metrics.WrongMoves++

	return true
}
