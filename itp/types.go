// Package itp defines the configuration types, sentinel errors and tuning
// constants for the ITP (Interpolate–Truncate–Project) root-finding method.
//
// ITP locates one root of a continuous scalar function on a sign-changing
// interval [lb, ub]. Per iteration it blends the regula-falsi interpolation
// point with the bisection midpoint (interpolation), nudges it away from the
// endpoints to guarantee a minimum progress rate (truncation), and clamps it
// into a shrinking minimax radius around the midpoint (projection), so the
// worst case never exceeds the plain-bisection iteration bound by more than
// the configured slack N0.
//
// Tuning parameters:
//
//	– FTol:     function-value convergence tolerance (> 0).
//	– XTol:     bracket-width convergence tolerance (> 0).
//	– K1:       truncation step-size scale factor (> 0).
//	– K2:       truncation step-size exponent; must lie in [1, 1+φ),
//	            φ being the golden ratio. Values near 1 behave like plain
//	            regula falsi; values near the bound behave like bisection.
//	– N0:       extra iteration slack on top of the theoretical bisection
//	            bound (≥ 0). Trades worst-case iterations for average speed.
//	– MaxIters: hard iteration cap, independent of the tolerances.
//
// Errors (sentinel):
//
//	– ErrNonPositiveK1   if K1 ≤ 0 (or NaN).
//	– ErrBadK2           if K2 ∉ [1, 1+φ).
//	– ErrNegativeN0      if N0 < 0.
//	– ErrNonPositiveXTol if XTol ≤ 0 (or NaN).
//	– ErrNonPositiveFTol if FTol ≤ 0 (or NaN).
//	– ErrNegativeIters   if MaxIters < 0.
//	– ErrNilFunc         if FindRoot receives a nil function.
//	– ErrInvalidInterval if FindRoot receives lb ≥ ub.
package itp

import (
	"errors"
	"math"
)

// Sentinel errors returned by NewConfig and FindRoot.
var (
	// ErrNonPositiveK1 indicates that the truncation scale factor K1 is not
	// strictly positive (zero, negative, or NaN).
	ErrNonPositiveK1 = errors.New("itp: K1 must be positive")

	// ErrBadK2 indicates that the truncation exponent K2 lies outside the
	// half-open interval [1, 1+φ) required for the superlinear convergence
	// guarantee.
	ErrBadK2 = errors.New("itp: K2 must lie in [1, 1+phi)")

	// ErrNegativeN0 indicates that the iteration-slack term N0 is negative.
	ErrNegativeN0 = errors.New("itp: N0 must be non-negative")

	// ErrNonPositiveXTol indicates that the bracket-width tolerance is not
	// strictly positive (zero, negative, or NaN).
	ErrNonPositiveXTol = errors.New("itp: XTol must be positive")

	// ErrNonPositiveFTol indicates that the function-value tolerance is not
	// strictly positive (zero, negative, or NaN).
	ErrNonPositiveFTol = errors.New("itp: FTol must be positive")

	// ErrNegativeIters indicates that the hard iteration cap is negative.
	ErrNegativeIters = errors.New("itp: MaxIters must be non-negative")

	// ErrNilFunc indicates that a nil Func was passed to FindRoot.
	ErrNilFunc = errors.New("itp: function is nil")

	// ErrInvalidInterval indicates that FindRoot was called with lb ≥ ub.
	// The interval is never silently swapped.
	ErrInvalidInterval = errors.New("itp: interval lower bound must be below upper bound")
)

// K2Min and K2Max bound the truncation exponent K2: K2Min ≤ K2 < K2Max.
// K2Max = 1+φ is the theoretical limit above which the superlinear
// convergence order of the interpolation step is lost.
const (
	K2Min = 1.0
	K2Max = 1.0 + math.Phi
)

// Default tuning values used by NewConfig when the corresponding option is
// not supplied. DefaultK2 sits just below the K2Max bound, the setting the
// method's authors recommend for general use.
const (
	DefaultFTol = 1e-4
	DefaultXTol = 1e-6
	DefaultK1   = 0.1
	DefaultK2   = 0.98 * K2Max
	DefaultN0   = 0

	// UnboundedIters disables the hard iteration cap; the theoretical
	// bisection bound plus N0 then remains the only iteration ceiling.
	UnboundedIters = math.MaxInt
)

// Func evaluates the objective at x.
//
// scratch is an optional caller-owned workspace (may be nil) that the
// function is free to mutate between calls, e.g. to reuse buffers instead of
// reallocating per evaluation. params is read-only context passed unchanged
// across every call of one FindRoot invocation. The solver treats both as
// opaque handles: it never inspects or mutates them.
//
// The function must be deterministic for fixed x and params; the convergence
// guarantees assume it.
type Func func(scratch any, x float64, params any) float64

// Iteration is a snapshot of the bracket state delivered to an observer
// after each bracket update.
//
// K     – 1-based iteration counter.
// A, B  – current bracket endpoints (A == B after an exact-zero collapse).
// X     – the candidate evaluated this iteration.
// FX    – the function value at X.
// Width – B − A after the update.
type Iteration struct {
	K     int
	A     float64
	B     float64
	X     float64
	FX    float64
	Width float64
}

// Config is the immutable, validated parameter bundle for FindRoot.
//
// A Config can only be obtained from NewConfig, is never mutated afterwards,
// and is therefore safe to share across concurrent FindRoot invocations.
type Config struct {
	fTol     float64
	xTol     float64
	k1       float64
	k2       float64
	n0       int
	maxIters int
	observer func(Iteration)
}

// FTol returns the function-value convergence tolerance.
func (c Config) FTol() float64 { return c.fTol }

// XTol returns the bracket-width convergence tolerance.
func (c Config) XTol() float64 { return c.xTol }

// K1 returns the truncation step-size scale factor.
func (c Config) K1() float64 { return c.k1 }

// K2 returns the truncation step-size exponent.
func (c Config) K2() float64 { return c.k2 }

// N0 returns the iteration slack added to the theoretical bisection bound.
func (c Config) N0() int { return c.n0 }

// MaxIters returns the hard iteration cap (UnboundedIters if disabled).
func (c Config) MaxIters() int { return c.maxIters }

// Option represents a functional option for NewConfig.
type Option func(*Config)

// WithFTol sets the function-value convergence tolerance.
// Must be positive; violations surface as ErrNonPositiveFTol from NewConfig.
func WithFTol(tol float64) Option {
	return func(c *Config) { c.fTol = tol }
}

// WithXTol sets the bracket-width convergence tolerance.
// Must be positive; violations surface as ErrNonPositiveXTol from NewConfig.
func WithXTol(tol float64) Option {
	return func(c *Config) { c.xTol = tol }
}

// WithK1 sets the truncation step-size scale factor.
// Must be positive; violations surface as ErrNonPositiveK1 from NewConfig.
func WithK1(k1 float64) Option {
	return func(c *Config) { c.k1 = k1 }
}

// WithK2 sets the truncation step-size exponent.
// Must lie in [K2Min, K2Max); violations surface as ErrBadK2 from NewConfig.
func WithK2(k2 float64) Option {
	return func(c *Config) { c.k2 = k2 }
}

// WithN0 sets the iteration slack added to the theoretical bisection bound.
// Must be non-negative; violations surface as ErrNegativeN0 from NewConfig.
func WithN0(n0 int) Option {
	return func(c *Config) { c.n0 = n0 }
}

// WithMaxIters sets the hard iteration cap. Zero means "no iterations":
// FindRoot then returns the clamped midpoint of the initial bracket.
// Must be non-negative; violations surface as ErrNegativeIters from NewConfig.
func WithMaxIters(n int) Option {
	return func(c *Config) { c.maxIters = n }
}

// WithObserver registers a callback invoked after every bracket update with
// a snapshot of the solver state. The observer is informational only: it
// must not assume any ability to influence the loop. Useful for tracing
// convergence and for property tests over interior state.
func WithObserver(fn func(Iteration)) Option {
	return func(c *Config) { c.observer = fn }
}
