// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package icosahex

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/2dChan/icosahex/ijk"
)

// stubTopology pins a cell's projection and the base-cell face relation to
// fixed values, isolating the rotation arithmetic under test.
type stubTopology struct {
	face Face
	home Face
	rot  int
}

func (t stubTopology) FaceIJK(Cell) (Face, ijk.Coord) { return t.face, ijk.Coord{} }

func (t stubTopology) HomeFace(BaseCell) Face { return t.home }

func (t stubTopology) FaceRotation(BaseCell, Face) int { return t.rot }

func mustGrid(t *testing.T, topo Topology) *Grid {
	t.Helper()
	g, err := NewGrid(topo)
	if err != nil {
		t.Fatalf("NewGrid error = %v, want nil", err)
	}
	return g
}

func mustCell(t *testing.T, res int, base BaseCell, digits []Direction) Cell {
	t.Helper()
	c, err := NewCell(res, base, digits)
	if err != nil {
		t.Fatalf("NewCell(%v, %v, %v) error = %v, want nil", res, base, digits, err)
	}
	return c
}

func TestNewGrid_NilTopology(t *testing.T) {
	if _, err := NewGrid(nil); err == nil {
		t.Errorf("NewGrid(nil) error = nil, want non-nil")
	}
}

// Base cell 14 faces in direction order J, JK, I, IK, IJ: 6, 11, 2, 7, 1.
// Its IK face is 7 and its JK face is 11. Base cell 4 (polar) has faces
// 4, 0, 2, 1, 3 in the same order. The expectations below are derived from
// those literal table entries.
func TestVertexRotations(t *testing.T) {
	tests := []struct {
		name   string
		base   BaseCell
		digits []Direction
		topo   stubTopology
		want   int
	}{
		{
			name: "hexagon on home face",
			base: 20,
			topo: stubTopology{face: 5, home: 5, rot: 0},
			want: 0,
		},
		{
			name: "hexagon takes face rotation unmodified",
			base: 20,
			topo: stubTopology{face: 6, home: 5, rot: 4},
			want: 4,
		},
		{
			name: "hexagon child of pentagon base is still corrected",

			// A hexagon cell, but its base cell is a pentagon: the IK-face
			// correction applies at the base-cell level.
			base:   14,
			digits: []Direction{DirJ},
			topo:   stubTopology{face: 7, home: 6, rot: 0},
			want:   1,
		},
		{
			name: "pentagon on home face",
			base: 4,
			topo: stubTopology{face: 2, home: 2, rot: 0},
			want: 0,
		},
		{
			name: "polar pentagon off home face",

			// Face 3 is neither base cell 4's IK face (1) nor its JK face
			// (0); only the polar branch fires on top of the base rotation.
			base: 4,
			topo: stubTopology{face: 3, home: 2, rot: 2},
			want: 3,
		},
		{
			name: "polar pentagon rotation wraps",
			base: 4,
			topo: stubTopology{face: 3, home: 2, rot: 5},
			want: 0,
		},
		{
			name: "non-polar pentagon on its ik face",
			base: 14,
			topo: stubTopology{face: 7, home: 6, rot: 0},
			want: 1,
		},
		{
			name: "non-polar pentagon off home on a plain face",
			base: 14,
			topo: stubTopology{face: 2, home: 6, rot: 4},
			want: 4,
		},
		{
			name: "jk to ik crossing cancels the ik face turn",

			// Both adjustments fire: +1 for the IK face, then +5 for the
			// crossing, netting the base rotation again.
			base:   14,
			digits: []Direction{DirJK},
			topo:   stubTopology{face: 7, home: 6, rot: 0},
			want:   0,
		},
		{
			name:   "ik to jk crossing rotates ccw",
			base:   14,
			digits: []Direction{DirIK},
			topo:   stubTopology{face: 11, home: 6, rot: 0},
			want:   1,
		},
		{
			name:   "ik leading digit off the jk face is uncorrected",
			base:   14,
			digits: []Direction{DirIK},
			topo:   stubTopology{face: 2, home: 6, rot: 3},
			want:   3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.topo)
			c := mustCell(t, len(tt.digits), tt.base, tt.digits)
			if got := g.VertexRotations(c); got != tt.want {
				t.Errorf("g.VertexRotations(%s) = %v, want %v", c, got, tt.want)
			}
		})
	}
}

func TestVertexNumForDirection_Invalid(t *testing.T) {
	g := mustGrid(t, stubTopology{})
	hex := mustCell(t, 0, 20, nil)
	pent := mustCell(t, 0, 14, nil)

	tests := []struct {
		name string
		cell Cell
		dir  Direction
	}{
		{"center on hexagon", hex, DirCenter},
		{"center on pentagon", pent, DirCenter},
		{"invalid digit", hex, DirInvalid},
		{"out of range", hex, Direction(9)},
		{"negative", hex, Direction(-2)},
		{"k on pentagon", pent, DirK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.VertexNumForDirection(tt.cell, tt.dir); got != InvalidVertex {
				t.Errorf("g.VertexNumForDirection(%s, %v) = %v, want InvalidVertex",
					tt.cell, tt.dir, got)
			}
		})
	}

	// K stays valid on a hexagon child of a pentagon base cell.
	hexChild := mustCell(t, 1, 14, []Direction{DirJ})
	if got := g.VertexNumForDirection(hexChild, DirK); got == InvalidVertex {
		t.Errorf("g.VertexNumForDirection(%s, DirK) = InvalidVertex, want a vertex", hexChild)
	}
}

func TestVertexNumForDirection_Unrotated(t *testing.T) {
	// Base cell 4 on its home face has rotation 0, so direction J must map
	// straight through the pentagon table.
	g := mustGrid(t, stubTopology{face: 2, home: 2, rot: 0})
	pent := mustCell(t, 0, 4, nil)
	if got, want := g.VertexNumForDirection(pent, DirJ), directionToVertexNumPent[DirJ]; got != want {
		t.Errorf("g.VertexNumForDirection(%s, DirJ) = %v, want %v", pent, got, want)
	}
}

func TestVertexNumForDirection_Permutation(t *testing.T) {
	hexDirs := []Direction{DirK, DirJ, DirJK, DirI, DirIK, DirIJ}
	pentDirs := []Direction{DirJ, DirJK, DirI, DirIK, DirIJ}

	for rot := 0; rot < 6; rot++ {
		g := mustGrid(t, stubTopology{face: 9, home: 9, rot: rot})

		hex := mustCell(t, 0, 20, nil)
		seen := make(map[VertexNum]bool)
		for _, d := range hexDirs {
			v := g.VertexNumForDirection(hex, d)
			if v < 0 || v >= NumHexVerts {
				t.Errorf("rot %d: hexagon vertex for %v = %v, want 0..5", rot, d, v)
			}
			seen[v] = true
		}
		if len(seen) != NumHexVerts {
			t.Errorf("rot %d: hexagon vertices not a permutation: %v", rot, seen)
		}

		pent := mustCell(t, 0, 14, nil)
		seen = make(map[VertexNum]bool)
		for _, d := range pentDirs {
			v := g.VertexNumForDirection(pent, d)
			if v < 0 || v >= NumPentVerts {
				t.Errorf("rot %d: pentagon vertex for %v = %v, want 0..4", rot, d, v)
			}
			seen[v] = true
		}
		if len(seen) != NumPentVerts {
			t.Errorf("rot %d: pentagon vertices not a permutation: %v", rot, seen)
		}
	}
}

func TestVertexNumForDirection_CyclicOrder(t *testing.T) {
	// Directions taken in cyclic order around the cell must map to
	// consecutive vertex numbers under every rotation.
	hexOrder := []Direction{DirIJ, DirJ, DirJK, DirK, DirIK, DirI}
	pentOrder := []Direction{DirIJ, DirJ, DirJK, DirIK, DirI}

	for rot := 0; rot < 6; rot++ {
		g := mustGrid(t, stubTopology{face: 9, home: 9, rot: rot})

		hex := mustCell(t, 0, 20, nil)
		first := g.VertexNumForDirection(hex, hexOrder[0])
		want := make([]VertexNum, len(hexOrder))
		got := make([]VertexNum, len(hexOrder))
		for i, d := range hexOrder {
			want[i] = VertexNum((int(first) + i) % NumHexVerts)
			got[i] = g.VertexNumForDirection(hex, d)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("rot %d: hexagon vertex order mismatch (-want +got):\n%s", rot, diff)
		}

		pent := mustCell(t, 0, 14, nil)
		first = g.VertexNumForDirection(pent, pentOrder[0])
		want = make([]VertexNum, len(pentOrder))
		got = make([]VertexNum, len(pentOrder))
		for i, d := range pentOrder {
			want[i] = VertexNum((int(first) + i) % NumPentVerts)
			got[i] = g.VertexNumForDirection(pent, d)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("rot %d: pentagon vertex order mismatch (-want +got):\n%s", rot, diff)
		}
	}
}

func TestDirectionFaces(t *testing.T) {
	faces, ok := DirectionFaces(14)
	if !ok {
		t.Fatalf("DirectionFaces(14) ok = false, want true")
	}
	want := [NumPentVerts]Face{6, 11, 2, 7, 1}
	if diff := cmp.Diff(want, faces); diff != "" {
		t.Errorf("DirectionFaces(14) mismatch (-want +got):\n%s", diff)
	}

	if _, ok := DirectionFaces(20); ok {
		t.Errorf("DirectionFaces(20) ok = true, want false for a hexagon base cell")
	}
}

func TestPentagonDirectionFaces_Table(t *testing.T) {
	if len(pentagonDirectionFaces) != NumPentagons {
		t.Fatalf("pentagon table has %d entries, want %d", len(pentagonDirectionFaces), NumPentagons)
	}
	for _, entry := range pentagonDirectionFaces {
		if !entry.baseCell.IsPentagon() {
			t.Errorf("table entry for base cell %d, which is not a pentagon", entry.baseCell)
		}
		seen := make(map[Face]bool)
		for _, f := range entry.faces {
			if f < 0 || f >= NumFaces {
				t.Errorf("base cell %d touches face %d, want 0..19", entry.baseCell, f)
			}
			if seen[f] {
				t.Errorf("base cell %d lists face %d twice", entry.baseCell, f)
			}
			seen[f] = true
		}
	}
}
