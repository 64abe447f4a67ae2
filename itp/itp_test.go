// Package itp_test exercises the FindRoot solver: precondition handling,
// the reference scenarios, and the algorithm's structural properties
// (bracket invariant, monotonic shrinkage, iteration bound).
package itp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlroot/itp"
)

// pow20 is f(x) = x^20 − 1, a steep polynomial with a root at exactly 1.
func pow20(_ any, x float64, _ any) float64 { return math.Pow(x, 20) - 1 }

// cbrt is f(x) = ∛x, extremely flat around its root at 0. Hitting FTol
// requires |x| below tol³, so the solver typically exits on XTol instead.
func cbrt(_ any, x float64, _ any) float64 { return math.Cbrt(x) }

// cubic is f(x) = x³ − 2x + 2 with a single real root near −1.76929.
func cubic(_ any, x float64, _ any) float64 { return x*x*x - 2*x + 2 }

// ------------------------------------------------------------------------
// 1. Precondition tests: nil function, ordering, sign-change bracket.
// ------------------------------------------------------------------------

func TestFindRoot_NilFunc(t *testing.T) {
	cfg, err := itp.NewConfig()
	require.NoError(t, err)

	root, converged, err := itp.FindRoot(nil, nil, nil, 0, 1, cfg)
	require.ErrorIs(t, err, itp.ErrNilFunc)
	require.False(t, converged)
	require.True(t, math.IsNaN(root))
}

func TestFindRoot_InvalidInterval(t *testing.T) {
	// lb ≥ ub must fail fast with ErrInvalidInterval and, critically,
	// before a single evaluation of f.
	cfg, err := itp.NewConfig()
	require.NoError(t, err)

	evals := 0
	counting := func(_ any, x float64, _ any) float64 {
		evals++

		return x
	}

	for _, bounds := range [][2]float64{{2, 1}, {1, 1}, {0, -5}} {
		root, converged, err := itp.FindRoot(nil, counting, nil, bounds[0], bounds[1], cfg)
		require.ErrorIs(t, err, itp.ErrInvalidInterval, "bounds=%v", bounds)
		require.False(t, converged)
		require.True(t, math.IsNaN(root))
	}
	require.Zero(t, evals, "no evaluation may happen on an invalid interval")
}

func TestFindRoot_InvalidBracket(t *testing.T) {
	// Endpoints with f(lb)·f(ub) ≥ 0 do not bracket a root. The failure is
	// soft: NaN root, converged=false, nil error.
	cfg, err := itp.NewConfig()
	require.NoError(t, err)

	square := func(_ any, x float64, _ any) float64 { return x * x }

	root, converged, err := itp.FindRoot(nil, square, nil, -1, 2, cfg)
	require.NoError(t, err)
	require.False(t, converged)
	require.True(t, math.IsNaN(root), "invalid bracket must yield a non-finite root")
}

func TestFindRoot_ZeroEndpointIsNotABracket(t *testing.T) {
	// Strictly opposite signs are required: an exact zero at an endpoint is
	// treated as a precondition violation, same as matching signs.
	cfg, err := itp.NewConfig()
	require.NoError(t, err)

	identity := func(_ any, x float64, _ any) float64 { return x }

	root, converged, err := itp.FindRoot(nil, identity, nil, 0, 1, cfg)
	require.NoError(t, err)
	require.False(t, converged)
	require.True(t, math.IsNaN(root))
}

// ------------------------------------------------------------------------
// 2. Scenario suite: the reference functions with known roots.
// ------------------------------------------------------------------------

// FindRootSuite runs the reference scenarios with FTol = XTol = 1e-3.
type FindRootSuite struct {
	suite.Suite

	cfg itp.Config
}

func (s *FindRootSuite) SetupSuite() {
	cfg, err := itp.NewConfig(itp.WithFTol(1e-3), itp.WithXTol(1e-3))
	require.NoError(s.T(), err)
	s.cfg = cfg
}

// TestSteepPolynomial solves x^20 − 1 = 0 on [0.1, 5]; the slope at the
// root is steep enough that FTol convergence fires.
func (s *FindRootSuite) TestSteepPolynomial() {
	root, converged, err := itp.FindRoot(nil, pow20, nil, 0.1, 5, s.cfg)
	require.NoError(s.T(), err)
	require.True(s.T(), converged, "steep root should converge on FTol")
	require.InDelta(s.T(), 1.0, root, 1e-3)
	require.Less(s.T(), math.Abs(pow20(nil, root, nil)), 1e-3)
}

// TestFlatCubeRoot solves ∛x = 0 on [-10, 2]. The function is so flat at
// the root that the bracket width collapses below XTol long before
// |f| < FTol, so converged must be false while the root is still accurate.
func (s *FindRootSuite) TestFlatCubeRoot() {
	root, converged, err := itp.FindRoot(nil, cbrt, nil, -10, 2, s.cfg)
	require.NoError(s.T(), err)
	require.False(s.T(), converged, "flat root exits on XTol, not FTol")
	require.False(s.T(), math.IsNaN(root))
	require.InDelta(s.T(), 0.0, root, 1e-3)
}

// TestCubic solves x³ − 2x + 2 = 0 on the deliberately lopsided bracket
// [-100, 5]; the lone real root sits near −1.76929.
func (s *FindRootSuite) TestCubic() {
	root, converged, err := itp.FindRoot(nil, cubic, nil, -100, 5, s.cfg)
	require.NoError(s.T(), err)
	require.True(s.T(), converged)
	require.InDelta(s.T(), -1.76929, root, 1e-3)
}

// TestSharedConfigConcurrently runs the scenarios in parallel against one
// Config value; the immutability contract makes this safe.
func (s *FindRootSuite) TestSharedConfigConcurrently() {
	cfg := s.cfg
	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			root, _, _ := itp.FindRoot(nil, cubic, nil, -100, 5, cfg)
			done <- root
		}()
	}
	for i := 0; i < 8; i++ {
		require.InDelta(s.T(), -1.76929, <-done, 1e-3)
	}
}

func TestFindRootSuite(t *testing.T) {
	suite.Run(t, new(FindRootSuite))
}

// ------------------------------------------------------------------------
// 3. Structural properties observed through WithObserver.
// ------------------------------------------------------------------------

func TestFindRoot_BracketInvariantAndShrinkage(t *testing.T) {
	// After every bracket update, f(a)·f(b) ≤ 0 must hold and the width
	// must never grow.
	prevWidth := math.Inf(1)
	cfg, err := itp.NewConfig(
		itp.WithFTol(1e-12), // keep the loop running until XTol
		itp.WithXTol(1e-9),
		itp.WithObserver(func(it itp.Iteration) {
			require.LessOrEqual(t, cbrt(nil, it.A, nil)*cbrt(nil, it.B, nil), 0.0,
				"iteration %d: endpoints must keep opposite signs", it.K)
			require.LessOrEqual(t, it.Width, prevWidth,
				"iteration %d: bracket width must not grow", it.K)
			prevWidth = it.Width
		}),
	)
	require.NoError(t, err)

	_, _, err = itp.FindRoot(nil, cbrt, nil, -10, 2, cfg)
	require.NoError(t, err)
	require.Less(t, prevWidth, 12.0, "bracket must have shrunk at least once")
}

func TestFindRoot_IterationBound(t *testing.T) {
	// Iterations before XTol convergence never exceed
	// ceil(log2((ub−lb)/XTol)) + N0 + 1.
	const (
		lb, ub = -10.0, 2.0
		xTol   = 1e-6
		n0     = 2
	)

	iters := 0
	cfg, err := itp.NewConfig(
		itp.WithFTol(1e-15), // unreachable for ∛x: forces the XTol exit
		itp.WithXTol(xTol),
		itp.WithN0(n0),
		itp.WithObserver(func(itp.Iteration) { iters++ }),
	)
	require.NoError(t, err)

	root, converged, err := itp.FindRoot(nil, cbrt, nil, lb, ub, cfg)
	require.NoError(t, err)
	require.False(t, converged)
	require.False(t, math.IsNaN(root))

	bound := int(math.Ceil(math.Log2((ub-lb)/xTol))) + n0 + 1
	require.LessOrEqual(t, iters, bound,
		"ITP must never exceed the bisection bound plus slack")
}

func TestFindRoot_MaxItersBudget(t *testing.T) {
	// A tight cap stops the loop after exactly MaxIters iterations and
	// returns a finite midpoint with converged=false.
	const budget = 3

	iters := 0
	cfg, err := itp.NewConfig(
		itp.WithFTol(1e-15),
		itp.WithXTol(1e-12),
		itp.WithMaxIters(budget),
		itp.WithObserver(func(itp.Iteration) { iters++ }),
	)
	require.NoError(t, err)

	root, converged, err := itp.FindRoot(nil, cbrt, nil, -10, 2, cfg)
	require.NoError(t, err)
	require.False(t, converged)
	require.False(t, math.IsNaN(root))
	require.Equal(t, budget, iters)
	require.GreaterOrEqual(t, root, -10.0)
	require.LessOrEqual(t, root, 2.0)
}

func TestFindRoot_ZeroMaxIters(t *testing.T) {
	// MaxIters = 0 short-circuits to the clamped midpoint of the initial
	// bracket without entering the loop.
	cfg, err := itp.NewConfig(itp.WithMaxIters(0))
	require.NoError(t, err)

	root, converged, err := itp.FindRoot(nil, cbrt, nil, -10, 2, cfg)
	require.NoError(t, err)
	require.False(t, converged)
	require.Equal(t, -4.0, root, "midpoint of [-10, 2]")
}

func TestFindRoot_ScratchAndParamsPassThrough(t *testing.T) {
	// The solver must hand the exact scratch and params handles to every
	// evaluation, untouched.
	type workspace struct{ calls int }

	ws := &workspace{}
	shift := 1.5
	f := func(scratch any, x float64, params any) float64 {
		require.Same(t, ws, scratch)
		require.Equal(t, shift, params)
		scratch.(*workspace).calls++

		return x - params.(float64)
	}

	cfg, err := itp.NewConfig(itp.WithFTol(1e-6), itp.WithXTol(1e-6))
	require.NoError(t, err)

	root, converged, err := itp.FindRoot(ws, f, shift, 0, 10, cfg)
	require.NoError(t, err)
	require.True(t, converged)
	require.InDelta(t, shift, root, 1e-5)
	require.GreaterOrEqual(t, ws.calls, 2, "at least both endpoints were evaluated")
}

// ------------------------------------------------------------------------
// 4. Randomized property: 1000 random brackets around the ∛x root.
// ------------------------------------------------------------------------

func TestFindRoot_RandomBrackets(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // deterministic seed for reproducibility

	cfg, err := itp.NewConfig(itp.WithFTol(1e-3), itp.WithXTol(1e-3))
	require.NoError(t, err)

	// openUniform draws from (0, scale): Float64 covers [0, 1), so a zero
	// draw is rerolled to keep both interval ends open.
	openUniform := func(scale float64) float64 {
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}

		return scale * u
	}

	for trial := 0; trial < 1000; trial++ {
		lb := openUniform(-2e4) // (-2·10⁴, 0)
		ub := openUniform(1e4)  // (0, 10⁴)

		root, _, err := itp.FindRoot(nil, cbrt, nil, lb, ub, cfg)
		require.NoError(t, err)
		require.False(t, math.IsNaN(root), "trial %d: bracket [%g, %g]", trial, lb, ub)
		require.InDelta(t, 0.0, root, 1e-3, "trial %d: bracket [%g, %g]", trial, lb, ub)
	}
}
