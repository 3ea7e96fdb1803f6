// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package icosahex

import (
	"errors"

	"github.com/2dChan/icosahex/ijk"
)

// ErrNilTopology is returned by NewGrid when no topology is supplied.
var ErrNilTopology = errors.New("icosahex: topology must not be nil")

// Topology supplies the per-base-cell face geometry of the embedding grid
// system. Implementations must be safe for concurrent use; in practice they
// are immutable tables initialized once.
type Topology interface {
	// FaceIJK projects a cell onto the icosahedron face it currently
	// occupies and the cell's coordinate on that face's planar grid.
	FaceIJK(c Cell) (Face, ijk.Coord)

	// HomeFace returns the face a base cell's center is assigned to.
	HomeFace(b BaseCell) Face

	// FaceRotation returns the number of 60° counter-clockwise turns, in
	// 0..5, aligning base cell b's home-face orientation with face f. The
	// base cell must overlap f.
	FaceRotation(b BaseCell, f Face) int
}

// Grid answers vertex orientation queries for cells, resolving face geometry
// through a Topology. A Grid holds no state of its own: every method is a
// pure function of its arguments, safe for unsynchronized concurrent use.
type Grid struct {
	topo Topology
}

// NewGrid returns a Grid over the given topology.
func NewGrid(topo Topology) (*Grid, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	return &Grid{topo: topo}, nil
}
