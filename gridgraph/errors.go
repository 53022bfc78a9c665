package gridgraph

import "errors"

var (
	// ErrInvalidSize indicates a width or height below 1.
	ErrInvalidSize = errors.New("gridgraph: width and height must be at least 1")
	// ErrInvalidEdgeEndpoint indicates a cell that is neither endpoint of an edge.
	ErrInvalidEdgeEndpoint = errors.New("gridgraph: cell is not an endpoint of edge")
	// ErrCellOutOfRange indicates a cell outside the grid boundaries.
	ErrCellOutOfRange = errors.New("gridgraph: cell out of range")
)
