// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package icosa builds the regular icosahedron underlying the grid: 12 unit
// vertices, 20 triangular faces recovered from the convex hull, face centers
// on the sphere, and face/vertex adjacency. Each icosahedron vertex is
// incident to exactly five faces and seats one pentagon cell of the grid.
package icosa

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	// NumVertices, NumFaces and NumEdges are the icosahedron's counts.
	NumVertices = 12
	NumFaces    = 20
	NumEdges    = 30
	// FacesPerVertex is the number of faces meeting at each vertex.
	FacesPerVertex = 5

	hullEps = 1e-12
)

var (
	errHullIndices = errors.New("icosa: inconsistent number of indices returned from QuickHull")
	errOpenEdge    = errors.New("icosa: hull edge not shared by exactly two faces")
)

// Icosahedron is the immutable geometry of the regular icosahedron inscribed
// in the unit sphere.
type Icosahedron struct {
	// Vertices are the 12 unit vertices.
	Vertices []s2.Point
	// Faces hold each face's vertex indices, sorted CCW looking out of the
	// sphere.
	Faces [][3]int
	// FaceNeighbors[f][e] is the face sharing face f's edge e, where edge e
	// runs from Faces[f][e] to Faces[f][(e+1)%3].
	FaceNeighbors [][3]int
	// VertexFaces[v] are the five faces incident to vertex v, sorted CCW
	// around the vertex.
	VertexFaces [][]int
}

// New constructs the icosahedron. The result is deterministic for a given
// build of the hull library; face and vertex numbering is internal to this
// package and carries no meaning beyond it.
func New() (*Icosahedron, error) {
	vertices := canonicalVertices()

	r3vertices := make([]r3.Vector, NumVertices)
	for i, p := range vertices {
		r3vertices[i] = p.Vector
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(r3vertices, true, true, hullEps)
	if len(ch.Indices) != NumFaces*3 {
		return nil, errHullIndices
	}

	ic := &Icosahedron{
		Vertices:      vertices,
		Faces:         make([][3]int, NumFaces),
		FaceNeighbors: make([][3]int, NumFaces),
		VertexFaces:   make([][]int, NumVertices),
	}
	for f := 0; f < NumFaces; f++ {
		base := f * 3
		ic.Faces[f] = [3]int{ch.Indices[base], ch.Indices[base+1], ch.Indices[base+2]}
		sortFaceVerticesCCW(&ic.Faces[f], ic.Vertices)
	}

	if err := ic.buildFaceNeighbors(); err != nil {
		return nil, err
	}
	ic.buildVertexFaces()

	return ic, nil
}

// canonicalVertices returns the 12 vertices of the regular icosahedron,
// built from the golden ratio and normalized onto the unit sphere.
func canonicalVertices() []s2.Point {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []r3.Vector{
		{X: -1, Y: phi, Z: 0}, {X: 1, Y: phi, Z: 0},
		{X: -1, Y: -phi, Z: 0}, {X: 1, Y: -phi, Z: 0},
		{X: 0, Y: -1, Z: phi}, {X: 0, Y: 1, Z: phi},
		{X: 0, Y: -1, Z: -phi}, {X: 0, Y: 1, Z: -phi},
		{X: phi, Y: 0, Z: -1}, {X: phi, Y: 0, Z: 1},
		{X: -phi, Y: 0, Z: -1}, {X: -phi, Y: 0, Z: 1},
	}
	vertices := make([]s2.Point, len(raw))
	for i, v := range raw {
		vertices[i] = s2.Point{Vector: v.Normalize()}
	}
	return vertices
}

// buildFaceNeighbors pairs up faces over shared edges. Every edge of a
// closed manifold hull belongs to exactly two faces.
func (ic *Icosahedron) buildFaceNeighbors() error {
	type edgeFace struct {
		face int
		edge int
	}
	edges := make(map[[2]int][]edgeFace, NumEdges)
	for f, face := range ic.Faces {
		for e := 0; e < 3; e++ {
			a, b := face[e], face[(e+1)%3]
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}] = append(edges[[2]int{a, b}], edgeFace{face: f, edge: e})
		}
	}
	if len(edges) != NumEdges {
		return errOpenEdge
	}
	for _, pair := range edges {
		if len(pair) != 2 {
			return errOpenEdge
		}
		ic.FaceNeighbors[pair[0].face][pair[0].edge] = pair[1].face
		ic.FaceNeighbors[pair[1].face][pair[1].edge] = pair[0].face
	}
	return nil
}

// buildVertexFaces collects the faces incident to each vertex and orders
// them CCW around it, chaining each face to the one across its outgoing edge.
func (ic *Icosahedron) buildVertexFaces() {
	for f, face := range ic.Faces {
		for _, v := range face {
			ic.VertexFaces[v] = append(ic.VertexFaces[v], f)
		}
	}
	for v, faces := range ic.VertexFaces {
		n := len(faces)
		for i := 1; i < n; i++ {
			nxt := nextVertex(ic.Faces[faces[i-1]], v)
			for j := i; j < n; j++ {
				if prevVertex(ic.Faces[faces[j]], v) == nxt {
					faces[i], faces[j] = faces[j], faces[i]
					break
				}
			}
		}
	}
}

// FaceCenter returns the unit center point of face f.
func (ic *Icosahedron) FaceCenter(f int) s2.Point {
	p0, p1, p2 := ic.FaceVertices(f)
	return s2.Point{Vector: p0.Add(p1.Vector).Add(p2.Vector).Normalize()}
}

// FaceCenterLatLng returns the center of face f as a latitude/longitude.
func (ic *Icosahedron) FaceCenterLatLng(f int) s2.LatLng {
	return s2.LatLngFromPoint(ic.FaceCenter(f))
}

// FaceVertices returns the three vertex points of face f in CCW order.
// It panics if f is out of range.
func (ic *Icosahedron) FaceVertices(f int) (s2.Point, s2.Point, s2.Point) {
	if f < 0 || f >= len(ic.Faces) {
		panic("icosa: FaceVertices: face out of range")
	}
	t := ic.Faces[f]
	return ic.Vertices[t[0]], ic.Vertices[t[1]], ic.Vertices[t[2]]
}

// FacesAdjacent reports whether faces a and b share an edge.
func (ic *Icosahedron) FacesAdjacent(a, b int) bool {
	for _, n := range ic.FaceNeighbors[a] {
		if n == b {
			return true
		}
	}
	return false
}

func sortFaceVerticesCCW(t *[3]int, v []s2.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0.Vector).Cross(p2.Sub(p0.Vector))
	if norm.Dot(p0.Vector) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func prevVertex(t [3]int, v int) int {
	switch v {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("icosa: prevVertex: vertex not in face")
}

func nextVertex(t [3]int, v int) int {
	switch v {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("icosa: nextVertex: vertex not in face")
}
