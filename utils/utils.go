// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating cell indexes for
// tests and benchmarks.
package utils

import (
	"math/rand"

	"github.com/2dChan/icosahex"
)

// GenerateRandomCells generates cnt valid cell indexes at the given
// resolution, drawn uniformly over base cells and digit paths. Digit paths
// that would put the K digit in a pentagon's leading position are nudged to
// the J digit to stay valid. The seed parameter ensures reproducibility.
func GenerateRandomCells(cnt, res int, seed int64) []icosahex.Cell {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	cells := make([]icosahex.Cell, cnt)

	digits := make([]icosahex.Direction, res)
	for i := 0; i < cnt; i++ {
		base := icosahex.BaseCell(random.Intn(icosahex.NumBaseCells))
		leadingSeen := false
		for r := 0; r < res; r++ {
			d := icosahex.Direction(random.Intn(7))
			if !leadingSeen && d != icosahex.DirCenter {
				leadingSeen = true
				if base.IsPentagon() && d == icosahex.DirK {
					d = icosahex.DirJ
				}
			}
			digits[r] = d
		}
		cell, err := icosahex.NewCell(res, base, digits)
		if err != nil {
			panic(err)
		}
		cells[i] = cell
	}

	return cells
}
