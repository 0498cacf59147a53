// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Canonical model:
//   • Left IDs "{leftPrefix}{i}", i=0..n1-1; right IDs "{rightPrefix}{j}", j=0..n2-1.
//   • Every left node is adjacent to every right node; edges = n1·n2; χ = 2.
//
// Determinism:
//   • Edge emission order: i asc over L, inner j asc over R.
//
// Complexity:
//   • Time O(n1·n2), Space O(n1+n2+n1·n2).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/chromatic/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := partition(cfg.leftPrefix, n1)
		right := partition(cfg.rightPrefix, n2)
		if err := addNodes(g, methodCompleteBipartite, left...); err != nil {
			return err
		}
		if err := addNodes(g, methodCompleteBipartite, right...); err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// partition returns prefix+"0" .. prefix+(n-1).
func partition(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}
