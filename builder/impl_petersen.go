// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// impl_petersen.go - implementation of the Petersen() constructor.
//
// Canonical model:
//   • Outer 5-cycle idFn(0..4); inner pentagram idFn(5..9) with 5+i–5+((i+2) mod 5).
//   • Spokes idFn(i)–idFn(5+i).
//   • 10 nodes, 15 edges, 3-regular, girth 5, χ = 3.

package builder

import "github.com/katalvlaran/chromatic/core"

const (
	methodPetersen = "Petersen"
	petersenRing   = 5
)

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addIndexedNodes(g, methodPetersen, cfg, 2*petersenRing)
		if err != nil {
			return err
		}
		outer, inner := ids[:petersenRing], ids[petersenRing:]

		if err = addRing(g, methodPetersen, outer); err != nil {
			return err
		}
		for i := 0; i < petersenRing; i++ {
			if err = addEdge(g, methodPetersen, outer[i], inner[i]); err != nil {
				return err
			}
			if err = addEdge(g, methodPetersen, inner[i], inner[(i+2)%petersenRing]); err != nil {
				return err
			}
		}

		return nil
	}
}
