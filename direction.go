// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package icosahex

// Direction is one of the seven symbolic axis values of the grid's digit
// system. A direction names both a neighbor of a cell and, as a digit, the
// cell's offset from its parent at the next coarser resolution. DirCenter is
// never a valid neighbor direction, and DirK is the pentagon's deleted axis.
type Direction int

const (
	DirCenter Direction = iota
	DirK
	DirJ
	DirJK
	DirI
	DirIK
	DirIJ
	// DirInvalid marks unused digit slots in a cell index and out-of-range
	// direction values.
	DirInvalid
)

// Valid reports whether d is a usable neighbor direction
// (one of K, J, JK, I, IK, IJ).
func (d Direction) Valid() bool {
	return d > DirCenter && d < DirInvalid
}

// RotateCCW returns d rotated one 60° turn counter-clockwise.
// Center and invalid values are returned unchanged.
func (d Direction) RotateCCW() Direction {
	switch d {
	case DirK:
		return DirIK
	case DirIK:
		return DirI
	case DirI:
		return DirIJ
	case DirIJ:
		return DirJ
	case DirJ:
		return DirJK
	case DirJK:
		return DirK
	default:
		return d
	}
}

// RotateCW returns d rotated one 60° turn clockwise.
// Center and invalid values are returned unchanged.
func (d Direction) RotateCW() Direction {
	switch d {
	case DirK:
		return DirJK
	case DirJK:
		return DirJ
	case DirJ:
		return DirIJ
	case DirIJ:
		return DirI
	case DirI:
		return DirIK
	case DirIK:
		return DirK
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirCenter:
		return "Center"
	case DirK:
		return "K"
	case DirJ:
		return "J"
	case DirJK:
		return "JK"
	case DirI:
		return "I"
	case DirIK:
		return "IK"
	case DirIJ:
		return "IJ"
	default:
		return "Invalid"
	}
}
