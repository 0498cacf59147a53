// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • Node IDs "r,c" for r∈[0..rows-1], c∈[0..cols-1], inserted row-major.
//   • 4-neighborhood: (r,c)–(r,c+1) and (r,c)–(r+1,c).
//   • Bipartite by (r+c) parity, so χ = 2 whenever the grid has an edge.
//
// Complexity:
//   • Time O(rows·cols), Space O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodGrid   = "Grid"
	minGridDim   = 1
	gridIDFormat = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
// Grid IDs are positional and ignore the configured IDFn.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if err := addNodes(g, methodGrid, gridID(r, c)); err != nil {
					return err
				}
			}
		}

		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, methodGrid, gridID(r, c), gridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, gridID(r, c), gridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

func gridID(r, c int) string { return fmt.Sprintf(gridIDFormat, r, c) }
