// Package icosahex computes vertex orientation for cells of a hierarchical
// hexagonal grid laid over the 20 faces of an icosahedron projected onto the
// sphere. Twelve cells per resolution are pentagons so the tiling can close;
// the package resolves the rotation offset between a cell's canonical
// direction numbering and its actual orientation on its current face, and
// maps neighbor directions to topological vertex numbers.

package icosahex

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// MaxResolution is the finest grid resolution.
	MaxResolution = 15
	// NumBaseCells is the number of resolution-0 cells.
	NumBaseCells = 122
	// NumFaces is the number of icosahedron faces.
	NumFaces = 20
	// NumPentagons is the number of pentagon base cells per resolution.
	NumPentagons = 12

	// NumHexVerts and NumPentVerts are the topological vertex counts of the
	// two cell shapes.
	NumHexVerts  = 6
	NumPentVerts = 5
)

// Cell index bit layout, most significant bit first: 12 zero bits, 4 bits of
// resolution, 7 bits of base cell, then 3 bits per digit for resolutions
// 1..15. Digit slots beyond the cell's resolution hold DirInvalid.
const (
	perDigitBits   = 3
	digitMask      = 7
	baseCellOffset = 45
	baseCellMask   = 0x7f
	resOffset      = 52
	resMask        = 0xf
)

// Sentinel errors for cell construction.
var (
	ErrResolution = errors.New("icosahex: resolution out of range")
	ErrBaseCell   = errors.New("icosahex: base cell out of range")
	ErrDigits     = errors.New("icosahex: digit count must equal resolution")
	ErrDigit      = errors.New("icosahex: digit out of range")
	ErrPentagonK  = errors.New("icosahex: pentagon cell may not lead with the K digit")
)

// Cell is an opaque index identifying one grid cell at one resolution.
type Cell uint64

// BaseCell identifies one of the 122 resolution-0 cells.
type BaseCell int

// Face identifies one of the 20 icosahedron faces.
type Face int

// pentagonBaseCells lists the twelve pentagon base cells in ascending order.
var pentagonBaseCells = [NumPentagons]BaseCell{
	4, 14, 24, 38, 49, 58, 63, 72, 83, 97, 107, 117,
}

// The two pentagon base cells seated on the icosahedron's polar vertices.
const (
	northPolarBaseCell BaseCell = 4
	southPolarBaseCell BaseCell = 117
)

// Valid reports whether b is a real base cell id.
func (b BaseCell) Valid() bool {
	return b >= 0 && b < NumBaseCells
}

// IsPentagon reports whether base cell b is a pentagon.
func (b BaseCell) IsPentagon() bool {
	for _, p := range pentagonBaseCells {
		if b == p {
			return true
		}
	}
	return false
}

// IsPolarPentagon reports whether b is one of the two pentagon base cells
// adjacent to the icosahedron's polar vertices.
func (b BaseCell) IsPolarPentagon() bool {
	return b == northPolarBaseCell || b == southPolarBaseCell
}

// NewCell builds a cell index from a resolution, a base cell, and the digit
// path from the base cell down to the cell, coarsest digit first. len(digits)
// must equal res. Pentagon descendants may not have DirK as their leading
// non-zero digit: that direction is the pentagon's deleted axis.
func NewCell(res int, base BaseCell, digits []Direction) (Cell, error) {
	if res < 0 || res > MaxResolution {
		return 0, fmt.Errorf("%w: %d", ErrResolution, res)
	}
	if !base.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrBaseCell, base)
	}
	if len(digits) != res {
		return 0, fmt.Errorf("%w: got %d digits for resolution %d", ErrDigits, len(digits), res)
	}

	c := Cell(uint64(res)<<resOffset | uint64(base)<<baseCellOffset)
	leadingSeen := false
	for r, d := range digits {
		if !d.Valid() && d != DirCenter {
			return 0, fmt.Errorf("%w: %d at resolution %d", ErrDigit, d, r+1)
		}
		if !leadingSeen && d != DirCenter {
			leadingSeen = true
			if base.IsPentagon() && d == DirK {
				return 0, ErrPentagonK
			}
		}
		c |= Cell(uint64(d) << digitShift(r+1))
	}
	// Unused digit slots are filled with the invalid digit so that every
	// (resolution, path) pair has a unique index.
	for r := res + 1; r <= MaxResolution; r++ {
		c |= Cell(uint64(DirInvalid) << digitShift(r))
	}
	return c, nil
}

func digitShift(res int) uint {
	return uint((MaxResolution - res) * perDigitBits)
}

// Resolution returns the cell's resolution, 0..15.
func (c Cell) Resolution() int {
	return int(c>>resOffset) & resMask
}

// BaseCell returns the cell's resolution-0 ancestor.
func (c Cell) BaseCell() BaseCell {
	return BaseCell(c>>baseCellOffset) & baseCellMask
}

// Digit returns the cell's digit at resolution r, 1..Resolution().
// It panics if r is out of that range.
func (c Cell) Digit(r int) Direction {
	if r < 1 || r > c.Resolution() {
		panic("icosahex: Digit: resolution out of range")
	}
	return Direction(c>>digitShift(r)) & digitMask
}

// LeadingNonZeroDigit returns the cell's first non-center digit, its
// direction from its immediate parent. It returns DirCenter when every digit
// is the center digit, in particular for any resolution-0 cell.
func (c Cell) LeadingNonZeroDigit() Direction {
	for r := 1; r <= c.Resolution(); r++ {
		if d := c.Digit(r); d != DirCenter {
			return d
		}
	}
	return DirCenter
}

// IsPentagon reports whether the cell is five-sided. Only cells centered on a
// pentagon base cell are pentagons: any non-center digit steps the cell off
// the pentagon's axis and it becomes a hexagon.
func (c Cell) IsPentagon() bool {
	return c.BaseCell().IsPentagon() && c.LeadingNonZeroDigit() == DirCenter
}

// IsValid reports whether c is a well-formed cell index.
func (c Cell) IsValid() bool {
	if c>>(resOffset+4) != 0 {
		return false
	}
	if !c.BaseCell().Valid() {
		return false
	}
	res := c.Resolution()
	leadingSeen := false
	for r := 1; r <= MaxResolution; r++ {
		d := Direction(c>>digitShift(r)) & digitMask
		if r > res {
			if d != DirInvalid {
				return false
			}
			continue
		}
		if d == DirInvalid {
			return false
		}
		if !leadingSeen && d != DirCenter {
			leadingSeen = true
			if c.BaseCell().IsPentagon() && d == DirK {
				return false
			}
		}
	}
	return true
}

// String returns the index in lowercase hexadecimal.
func (c Cell) String() string {
	return strconv.FormatUint(uint64(c), 16)
}
