// SPDX-License-Identifier: MIT
// Package: chromatic/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors PANIC on nil inputs; constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix): "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn: "A".."Z".
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn: "A".."Z","AA",...
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithPaddedIDs sets the ID scheme to PaddedIDFn(width).
func WithPaddedIDs(width int) BuilderOption {
	return WithIDScheme(PaddedIDFn(width))
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithPartitionPrefix sets bipartite side labels. Empty values mean "use defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
