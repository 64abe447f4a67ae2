// Package lvlroot is a compact toolkit for bracketed scalar root finding,
// built around the ITP (Interpolate–Truncate–Project) method.
//
// 🚀 What is lvlroot?
//
//	A small, focused library that solves f(x) = 0 on a sign-changing
//	interval [lb, ub] and brings together:
//		• itp:      the ITP solver — bisection's worst-case guarantee with
//		            superlinear convergence on smooth roots
//		• funcexpr: textual formulas ("x*x*x - 2*x + 2") compiled into
//		            evaluable functions for the solver
//		• lvlroot:  a CLI wrapping both for one-off root hunts
//
// ✨ Why choose lvlroot?
//
//   - Guaranteed termination – the projection step caps iterations at the
//     bisection bound plus a configurable slack
//   - Validated, immutable configuration – safe to share across goroutines
//   - Explicit scratch/params evaluation contract – reuse caller-owned
//     workspace without allocations in the hot loop
//   - Pure Go core – no cgo
//
// Under the hood, everything is organized under two subpackages and a CLI:
//
//	itp/         — Config, FindRoot, the ITP iteration itself
//	funcexpr/    — govaluate-backed expression → itp.Func bridge
//	cmd/lvlroot/ — cobra CLI: lvlroot solve --expr "..." --lb .. --ub ..
//
// Quick sketch of one iteration:
//
//	a────x_rf──x_t──x_bin────────b
//	     └ interpolate └ truncate toward the midpoint, then project into
//	       the shrinking minimax radius and evaluate.
//
// Dive into itp/doc.go for the full algorithm description and into the
// package example tests for runnable scenarios.
//
//	go get github.com/katalvlaran/lvlroot/itp
package lvlroot
