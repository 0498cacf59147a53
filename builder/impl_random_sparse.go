// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, is an edge
//     independently with probability p.
//
// Contract:
//   • n ≥ 1, else ErrTooFewVertices.
//   • p ∈ [0,1], else ErrInvalidProbability.
//   • p=0 and p=1 are deterministic and need no RNG; 0<p<1 requires
//     WithSeed or WithRand, else ErrNeedRandSource.
//
// Determinism:
//   • Fixed trial order (i asc, j asc) ⇒ identical graphs for a fixed seed.
//
// Complexity:
//   • Time O(n²) trials, Space O(n + |E|).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addIndexedNodes(g, methodRandomSparse, cfg, n)
		if err != nil {
			return err
		}

		switch p {
		case probMin:
			return nil
		case probMax:
			return addCompleteEdges(g, methodRandomSparse, ids)
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					if err = addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
