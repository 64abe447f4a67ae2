// Package itp finds a root of a continuous scalar function on a bracketing
// interval using the ITP (Interpolate–Truncate–Project) method.
//
// 🚀 What is ITP?
//
//	ITP is a bracketing root finder that keeps bisection's guaranteed
//	worst case while converging superlinearly on well-behaved roots.
//	Each iteration it:
//	  • Interpolates — takes the regula-falsi (secant) point
//	  • Truncates    — nudges it toward the midpoint by K1·(b−a)^K2
//	  • Projects     — clamps it into a shrinking radius around the midpoint
//	so the iteration count never exceeds the bisection bound by more
//	than the configured slack N0, yet on smooth functions it is usually
//	far faster than bisection.
//
// ✨ Key features:
//   - validated, immutable Config — safe to share across goroutines
//   - dual stopping criteria: |f(x)| < FTol or bracket width ≤ XTol
//   - explicit scratch/params handles so evaluation can reuse caller-owned
//     workspace without the solver knowing its shape
//   - optional per-iteration observer for tracing convergence
//   - hard MaxIters cap independent of the tolerances
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlroot/itp"
//
//	cfg, err := itp.NewConfig(
//	    itp.WithFTol(1e-3),
//	    itp.WithXTol(1e-3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube := func(_ any, x float64, _ any) float64 { return x*x*x - 2*x + 2 }
//	root, converged, err := itp.FindRoot(nil, cube, nil, -100, 5, cfg)
//
// The caller must supply a valid bracket: f(lb) and f(ub) with strictly
// opposite signs. When they are not, FindRoot returns (NaN, false, nil) —
// check the root for finiteness whenever converged is false.
//
// Performance:
//
//   - Time:   O(⌈log₂((ub−lb)/XTol)⌉ + N0) evaluations worst case
//   - Memory: O(1)
//
// See example_test.go for runnable scenarios.
package itp
