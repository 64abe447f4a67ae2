// Package itp implements the ITP (Interpolate–Truncate–Project) method for
// bracketed scalar root finding.
//
// Algorithm outline (per iteration, while b−a > XTol and iterations < MaxIters):
//  1. Interpolation: regula-falsi point x_rf = (a·f_b − b·f_a) / (f_b − f_a).
//  2. Bisection point: x_bin = (a + b) / 2.
//  3. Truncation: δ = K1·(b−a)^K2. If δ ≤ |x_bin − x_rf|, shift x_rf toward
//     x_bin by δ; otherwise take x_bin outright. Prevents the interpolation
//     point from stalling arbitrarily close to one endpoint.
//  4. Projection: clamp the truncated point into the shrinking minimax radius
//     r_k = (XTol/2)·C − (b−a)/2 around x_bin, where C halves every iteration
//     starting from 2^(n_max+1) and n_max = ⌈log₂((ub−lb)/XTol)⌉ + N0. This
//     caps the worst case at the bisection bound plus N0 iterations.
//  5. Guard: clamp the candidate into [lb, ub] against floating-point
//     overshoot at the original bounds.
//  6. Evaluate f; |f(w)| < FTol returns immediately with converged = true.
//  7. Bracket update by the regula-falsi rule, preserving opposite endpoint
//     signs (an exact zero collapses the bracket to a point).
//
// Complexity:
//
//	– Time:  O(n_max) function evaluations worst case, typically far fewer
//	   (the interpolation step converges superlinearly on smooth roots).
//	– Space: O(1).
package itp

import (
	"fmt"
	"math"
)

// NewConfig builds a validated, immutable Config from the defaults overlaid
// with the supplied options.
//
// Invariants enforced, in order (the first violation determines the error):
//  1. K1 > 0                  (ErrNonPositiveK1)
//  2. K2Min ≤ K2 < K2Max      (ErrBadK2)
//  3. N0 ≥ 0                  (ErrNegativeN0)
//  4. XTol > 0                (ErrNonPositiveXTol)
//  5. FTol > 0                (ErrNonPositiveFTol)
//  6. MaxIters ≥ 0            (ErrNegativeIters)
//
// No partially valid Config is ever returned: on violation the zero Config
// accompanies the sentinel error. Construction has no side effects.
func NewConfig(opts ...Option) (Config, error) {
	// 1) Start from defaults and apply each functional option.
	cfg := Config{
		fTol:     DefaultFTol,
		xTol:     DefaultXTol,
		k1:       DefaultK1,
		k2:       DefaultK2,
		n0:       DefaultN0,
		maxIters: UnboundedIters,
	}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate every invariant in declaration order; fail on the first.
	//    NaN fails each comparison below, so it is rejected alongside the
	//    out-of-range values.
	if !(cfg.k1 > 0) {
		return Config{}, fmt.Errorf("%w: got %g", ErrNonPositiveK1, cfg.k1)
	}
	if !(cfg.k2 >= K2Min && cfg.k2 < K2Max) {
		return Config{}, fmt.Errorf("%w: got %g", ErrBadK2, cfg.k2)
	}
	if cfg.n0 < 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrNegativeN0, cfg.n0)
	}
	if !(cfg.xTol > 0) {
		return Config{}, fmt.Errorf("%w: got %g", ErrNonPositiveXTol, cfg.xTol)
	}
	if !(cfg.fTol > 0) {
		return Config{}, fmt.Errorf("%w: got %g", ErrNonPositiveFTol, cfg.fTol)
	}
	if cfg.maxIters < 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrNegativeIters, cfg.maxIters)
	}

	return cfg, nil
}

// FindRoot locates one root of f on the bracketing interval [lb, ub] using
// the ITP method configured by cfg.
//
// scratch and params are passed through to every evaluation of f unchanged
// (see Func); either may be nil.
//
// Returns:
//
//   - root:      the located root, or the clamped bracket midpoint when the
//     loop exits on XTol or on the iteration cap, or NaN when the
//     endpoints do not bracket a sign change.
//   - converged: true only for FTol convergence (|f(root)| < FTol). An XTol
//     or budget exit yields a finite root with converged = false.
//   - err:       ErrNilFunc or ErrInvalidInterval on precondition violation,
//     detected before any evaluation of f.
//
// The sign-change precondition can only be checked by evaluating f at both
// endpoints, so its violation is reported softly: (NaN, false, nil). Callers
// distinguishing "budget exhausted, approximate root" from "invalid bracket"
// must therefore test the root for finiteness when converged is false.
//
// Per-call bracket state lives on the stack and is discarded on return;
// FindRoot is safe to call concurrently with a shared Config as long as each
// call owns its scratch.
func FindRoot(scratch any, f Func, params any, lb, ub float64, cfg Config) (float64, bool, error) {
	// 1) Fail-fast preconditions: these never require evaluating f.
	if f == nil {
		return math.NaN(), false, ErrNilFunc
	}
	if lb >= ub {
		return math.NaN(), false, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, lb, ub)
	}

	// 2) Evaluate both endpoints once and demand strictly opposite signs.
	//    A zero, NaN, or same-signed endpoint value means no bracket: report
	//    it softly with a non-finite root, since the two evaluations were
	//    unavoidable either way.
	fa := f(scratch, lb, params)
	fb := f(scratch, ub, params)
	if fa == 0 || fb == 0 || math.IsNaN(fa) || math.IsNaN(fb) ||
		math.Signbit(fa) == math.Signbit(fb) {
		return math.NaN(), false, nil
	}

	// 3) Projection schedule: nMax = ⌈log₂((ub−lb)/XTol)⌉ + N0 is the
	//    theoretical bisection iteration bound plus slack; the scale factor
	//    C starts at 2^(nMax+1) and halves every iteration.
	nMax := math.Ceil(math.Log2((ub-lb)/cfg.xTol)) + float64(cfg.n0)
	scaleC := math.Exp2(nMax + 1)

	// 4) Main loop over the shrinking bracket [a, b].
	a, b := lb, ub
	var (
		xRF, xBin, delta, xT, rK, w, fW float64
	)
	for k := 0; b-a > cfg.xTol && k < cfg.maxIters; k++ {
		// 4.1) Interpolation: regula-falsi point. The divisor fb−fa is
		//      never zero while fa and fb keep strictly opposite signs.
		xRF = (a*fb - b*fa) / (fb - fa)

		// 4.2) Bisection midpoint.
		xBin = (a + b) / 2

		// 4.3) Truncation: move the interpolation point toward the midpoint
		//      by δ = K1·(b−a)^K2, or take the midpoint when δ overshoots it.
		delta = cfg.k1 * math.Pow(b-a, cfg.k2)
		if delta <= math.Abs(xBin-xRF) {
			xT = xRF + math.Copysign(delta, xBin-xRF)
		} else {
			xT = xBin
		}

		// 4.4) Projection: keep the candidate within the minimax radius r_k
		//      around the midpoint so the worst case stays within the
		//      bisection bound plus N0.
		rK = cfg.xTol/2*scaleC - (b-a)/2
		scaleC /= 2
		if math.Abs(xT-xBin) > rK {
			w = xBin - math.Copysign(rK, xBin-xRF)
		} else {
			w = xT
		}

		// 4.5) Guard: clamp into the original interval against
		//      floating-point overshoot at the bounds.
		if w < lb {
			w = lb
		} else if w > ub {
			w = ub
		}

		// 4.6) Evaluate and test function-value convergence.
		fW = f(scratch, w, params)
		if math.Abs(fW) < cfg.fTol {
			return w, true, nil
		}

		// 4.7) Bracket update against the pre-update endpoint signs: replace
		//      the endpoint whose sign fW shares; an exact zero collapses
		//      the bracket onto w.
		switch {
		case fW != 0 && math.Signbit(fW) == math.Signbit(fa):
			a, fa = w, fW
		case fW != 0:
			b, fb = w, fW
		default:
			a, b = w, w
		}

		if cfg.observer != nil {
			cfg.observer(Iteration{K: k + 1, A: a, B: b, X: w, FX: fW, Width: b - a})
		}
	}

	// 5) XTol or budget exit: the clamped bracket midpoint is the answer,
	//    flagged as a non-FTol convergence.
	root := (a + b) / 2
	if root < lb {
		root = lb
	} else if root > ub {
		root = ub
	}

	return root, false, nil
}
