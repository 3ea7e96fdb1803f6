// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package ijk implements integer coordinate arithmetic on a planar hexagonal
// grid using three non-orthogonal axes i, j, k spaced 120° apart. Every cell
// center has a normalized coordinate with all components non-negative and at
// least one component zero.
package ijk

// Digit values returned by UnitDigit. A digit identifies one of the seven
// unit coordinates: the origin (0) or one of the six unit axis combinations.
const (
	CenterDigit  = 0
	KDigit       = 1
	JDigit       = 2
	JKDigit      = 3
	IDigit       = 4
	IKDigit      = 5
	IJDigit      = 6
	InvalidDigit = 7
)

// Coord is a coordinate on the i, j, k axes. The zero value is the origin.
type Coord struct {
	I int
	J int
	K int
}

// Cube is the equivalent cube coordinate with X+Y+Z = 0.
type Cube struct {
	X int
	Y int
	Z int
}

// Axial is the two-axis form of a cube coordinate: Q = X, R = Z.
type Axial struct {
	Q int
	R int
}

// unitVecs[d] is the unit coordinate for digit d.
var unitVecs = [7]Coord{
	{0, 0, 0}, // center
	{0, 0, 1}, // k
	{0, 1, 0}, // j
	{0, 1, 1}, // jk
	{1, 0, 0}, // i
	{1, 0, 1}, // ik
	{1, 1, 0}, // ij
}

// UnitVector returns the unit coordinate for digit d.
// It panics if d is not in [CenterDigit, IJDigit].
func UnitVector(d int) Coord {
	if d < CenterDigit || d > IJDigit {
		panic("ijk: UnitVector: digit out of range")
	}
	return unitVecs[d]
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.I + o.I, c.J + o.J, c.K + o.K}
}

// Sub returns c-o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.I - o.I, c.J - o.J, c.K - o.K}
}

// Scale returns c scaled by f.
func (c Coord) Scale(f int) Coord {
	return Coord{c.I * f, c.J * f, c.K * f}
}

// Normalize returns the canonical form of c: the same grid position with all
// components non-negative and at least one component zero.
func (c Coord) Normalize() Coord {
	if c.I < 0 {
		c.J -= c.I
		c.K -= c.I
		c.I = 0
	}
	if c.J < 0 {
		c.I -= c.J
		c.K -= c.J
		c.J = 0
	}
	if c.K < 0 {
		c.I -= c.K
		c.J -= c.K
		c.K = 0
	}
	min := c.I
	if c.J < min {
		min = c.J
	}
	if c.K < min {
		min = c.K
	}
	if min > 0 {
		c.I -= min
		c.J -= min
		c.K -= min
	}
	return c
}

// UnitDigit returns the digit whose unit coordinate equals c after
// normalization, or InvalidDigit if c is not a unit coordinate.
func (c Coord) UnitDigit() int {
	n := c.Normalize()
	for d, u := range unitVecs {
		if n == u {
			return d
		}
	}
	return InvalidDigit
}

// Rotate60CCW returns c rotated 60° counter-clockwise about the origin.
func (c Coord) Rotate60CCW() Coord {
	// i → ij, j → jk, k → ik
	iv := Coord{1, 1, 0}.Scale(c.I)
	jv := Coord{0, 1, 1}.Scale(c.J)
	kv := Coord{1, 0, 1}.Scale(c.K)
	return iv.Add(jv).Add(kv).Normalize()
}

// Rotate60CW returns c rotated 60° clockwise about the origin.
func (c Coord) Rotate60CW() Coord {
	// i → ik, j → ij, k → jk
	iv := Coord{1, 0, 1}.Scale(c.I)
	jv := Coord{1, 1, 0}.Scale(c.J)
	kv := Coord{0, 1, 1}.Scale(c.K)
	return iv.Add(jv).Add(kv).Normalize()
}

// Neighbor returns the coordinate one cell away from c toward digit d.
// For CenterDigit it returns c itself.
// It panics if d is not in [CenterDigit, IJDigit].
func (c Coord) Neighbor(d int) Coord {
	return c.Add(UnitVector(d)).Normalize()
}

// Distance returns the grid distance between a and b in cells.
func Distance(a, b Coord) int {
	d := a.Sub(b).Normalize()
	max := d.I
	if d.J > max {
		max = d.J
	}
	if d.K > max {
		max = d.K
	}
	return max
}

// Cube converts c to cube coordinates.
func (c Coord) Cube() Cube {
	x := -c.I + c.K
	y := c.J - c.K
	return Cube{X: x, Y: y, Z: -x - y}
}

// FromCube converts a cube coordinate to its normalized ijk form.
func FromCube(cb Cube) Coord {
	return Coord{I: -cb.X, J: cb.Y, K: 0}.Normalize()
}

// Axial converts c to axial coordinates.
func (c Coord) Axial() Axial {
	cb := c.Cube()
	return Axial{Q: cb.X, R: cb.Z}
}

// FromAxial converts an axial coordinate to its normalized ijk form.
func FromAxial(a Axial) Coord {
	return FromCube(Cube{X: a.Q, Y: -a.Q - a.R, Z: a.R})
}
