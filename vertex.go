// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package icosahex

// VertexNum is the canonical index of one topological corner of a cell:
// 0..5 for hexagons, 0..4 for pentagons.
type VertexNum int

// InvalidVertex signals a (cell, direction) pair with no corresponding
// vertex. It is an expected result, not an error: probing all six nominal
// directions on a pentagon always hits it once.
const InvalidVertex VertexNum = -1

// Index of a direction within a pentagon's direction-ordered face list,
// which starts at DirJ.
const directionIndexOffset = 2

// directionFaces holds, for one pentagon base cell, the five icosahedron
// faces it touches in directional order J, JK, I, IK, IJ.
type directionFaces struct {
	baseCell BaseCell
	faces    [NumPentVerts]Face
}

// pentagonDirectionFaces maps each pentagon base cell to its faces.
var pentagonDirectionFaces = [NumPentagons]directionFaces{
	{4, [NumPentVerts]Face{4, 0, 2, 1, 3}},
	{14, [NumPentVerts]Face{6, 11, 2, 7, 1}},
	{24, [NumPentVerts]Face{5, 10, 1, 6, 0}},
	{38, [NumPentVerts]Face{7, 12, 3, 8, 2}},
	{49, [NumPentVerts]Face{9, 14, 0, 5, 4}},
	{58, [NumPentVerts]Face{8, 13, 4, 9, 3}},
	{63, [NumPentVerts]Face{11, 6, 15, 10, 16}},
	{72, [NumPentVerts]Face{12, 7, 16, 11, 17}},
	{83, [NumPentVerts]Face{10, 5, 19, 14, 15}},
	{97, [NumPentVerts]Face{13, 8, 17, 12, 18}},
	{107, [NumPentVerts]Face{14, 9, 18, 13, 19}},
	{117, [NumPentVerts]Face{15, 19, 17, 18, 16}},
}

// directionToVertexNumHex maps a direction to the unrotated first vertex of
// the edge toward that neighbor for a six-sided cell. Direction 0 (center)
// is unused.
var directionToVertexNumHex = [8]VertexNum{
	InvalidVertex, 3, 1, 2, 5, 4, 0, InvalidVertex,
}

// directionToVertexNumPent is the pentagon equivalent. Directions 0 (center)
// and 1 (the deleted K axis) are unused.
var directionToVertexNumPent = [8]VertexNum{
	InvalidVertex, InvalidVertex, 1, 2, 4, 3, 0, InvalidVertex,
}

// VertexRotations returns the number of 60° counter-clockwise rotations, in
// 0..5, between the cell's canonical direction numbering and its actual
// orientation on the face it currently occupies. For hexagon cells this is
// exactly the topology's base-cell-to-face rotation; pentagon cells take up
// to two further corrections for the distortion around their deleted K axis.
func (g *Grid) VertexRotations(c Cell) int {
	face, _ := g.topo.FaceIJK(c)
	base := c.BaseCell()
	rot := g.topo.FaceRotation(base, face)

	if !base.IsPentagon() {
		return rot
	}

	var df directionFaces
	for _, entry := range pentagonDirectionFaces {
		if entry.baseCell == base {
			df = entry
			break
		}
	}
	ikFace := df.faces[DirIK-directionIndexOffset]
	jkFace := df.faces[DirJK-directionIndexOffset]

	// Polar pentagons, and the face across the pentagon's IK edge, sit where
	// the deleted K axis breaks the hexagonal tiling symmetry and need one
	// extra turn.
	if face != g.topo.HomeFace(base) && (base.IsPolarPentagon() || face == ikFace) {
		rot = (rot + 1) % 6
	}

	// A cell whose address crosses the pentagon's deleted digit subsequence
	// realigns by one turn, the sense depending on which side it crosses from.
	switch leading := c.LeadingNonZeroDigit(); {
	case leading == DirJK && face == ikFace:
		// JK into IK: rotate clockwise.
		rot = (rot + 5) % 6
	case leading == DirIK && face == jkFace:
		// IK into JK: rotate counter-clockwise.
		rot = (rot + 1) % 6
	}

	return rot
}

// VertexNumForDirection returns the first topological vertex of the edge
// bordering the neighbor in the given direction; the shared edge runs from
// this vertex to the next one in canonical order. It returns InvalidVertex
// when the direction has no vertex on this cell: the center direction, an
// out-of-range value, or the deleted K axis of a pentagon.
func (g *Grid) VertexNumForDirection(c Cell, direction Direction) VertexNum {
	isPentagon := c.IsPentagon()
	if !direction.Valid() || (isPentagon && direction == DirK) {
		return InvalidVertex
	}

	rotations := g.VertexRotations(c)

	// Adding the vertex count before the modulus keeps the operand
	// non-negative under Go's truncated division.
	if isPentagon {
		return VertexNum((int(directionToVertexNumPent[direction]) +
			NumPentVerts - rotations) % NumPentVerts)
	}
	return VertexNum((int(directionToVertexNumHex[direction]) +
		NumHexVerts - rotations) % NumHexVerts)
}

// DirectionFaces returns the five faces touched by a pentagon base cell in
// directional order J, JK, I, IK, IJ. ok is false if b is not a pentagon.
func DirectionFaces(b BaseCell) (faces [NumPentVerts]Face, ok bool) {
	for _, entry := range pentagonDirectionFaces {
		if entry.baseCell == b {
			return entry.faces, true
		}
	}
	return faces, false
}
