// Package funcexpr compiles textual formulas in one variable x into
// evaluable functions, bridging string expressions to the itp root finder.
//
// Expressions use govaluate syntax: `x*x*x - 2*x + 2`, `exp(x) - 3`,
// `x**2 - 4` (`**` is exponentiation; `pow(x, n)` works as well). The
// registered helper functions are sin, cos, tan, exp, log, sqrt, cbrt, abs
// and pow.
//
// Errors (sentinel):
//
//	– ErrEmptyExpression if the source is empty or blank.
//	– ErrNotNumeric      if the expression evaluates to a non-number
//	                     (e.g. a boolean comparison).
package funcexpr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/lvlroot/itp"
)

// Sentinel errors returned by Compile and Eval.
var (
	// ErrEmptyExpression indicates that Compile received an empty or
	// whitespace-only source string.
	ErrEmptyExpression = errors.New("funcexpr: expression is empty")

	// ErrNotNumeric indicates that the expression evaluated to something
	// other than a number, e.g. a boolean.
	ErrNotNumeric = errors.New("funcexpr: expression did not evaluate to a number")
)

// varName is the sole free variable every compiled expression is evaluated over.
const varName = "x"

// mathFuncs are the helper functions available inside expressions.
var mathFuncs = map[string]govaluate.ExpressionFunction{
	"sin":  func(args ...any) (any, error) { return math.Sin(argFloat(args, 0)), nil },
	"cos":  func(args ...any) (any, error) { return math.Cos(argFloat(args, 0)), nil },
	"tan":  func(args ...any) (any, error) { return math.Tan(argFloat(args, 0)), nil },
	"exp":  func(args ...any) (any, error) { return math.Exp(argFloat(args, 0)), nil },
	"log":  func(args ...any) (any, error) { return math.Log(argFloat(args, 0)), nil },
	"sqrt": func(args ...any) (any, error) { return math.Sqrt(argFloat(args, 0)), nil },
	"cbrt": func(args ...any) (any, error) { return math.Cbrt(argFloat(args, 0)), nil },
	"abs":  func(args ...any) (any, error) { return math.Abs(argFloat(args, 0)), nil },
	"pow":  func(args ...any) (any, error) { return math.Pow(argFloat(args, 0), argFloat(args, 1)), nil },
}

// argFloat coerces the i-th helper argument to float64, NaN when absent or
// non-numeric.
func argFloat(args []any, i int) float64 {
	if i >= len(args) {
		return math.NaN()
	}
	f, ok := toFloat(args[i])
	if !ok {
		return math.NaN()
	}

	return f
}

// toFloat converts the numeric types govaluate may produce.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// Expr is a compiled single-variable expression.
//
// Eval reuses an internal variable map across calls, so a single Expr must
// not be evaluated from multiple goroutines concurrently. For concurrent
// solving, share the Expr and give each goroutine its own Scratch (see Func).
type Expr struct {
	src  string
	expr *govaluate.EvaluableExpression
	vars map[string]any
}

// Scratch is a reusable per-invocation variable bag for Func. Passing one
// Scratch per FindRoot call lets several goroutines evaluate the same
// compiled Expr concurrently without sharing mutable state.
type Scratch struct {
	vars map[string]any
}

// NewScratch allocates a Scratch for use as the FindRoot scratch handle.
func NewScratch() *Scratch {
	return &Scratch{vars: map[string]any{varName: 0.0}}
}

// normalizeDecimalCommas rewrites decimal commas ("0,5") to dots while
// leaving argument separators inside function calls ("pow(x, 3)") intact:
// only a comma between two digits at parenthesis depth zero is treated as
// a decimal mark. Inside a call, commas always separate arguments, so a
// decimal comma there (e.g. "pow(x, 0,5)") is not supported.
func normalizeDecimalCommas(src string) string {
	out := []byte(src)
	depth := 0
	for i := range out {
		switch out[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 && i > 0 && i+1 < len(out) &&
				isDigit(out[i-1]) && isDigit(out[i+1]) {
				out[i] = '.'
			}
		}
	}

	return string(out)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Compile parses src into an evaluable expression over the variable x.
// Top-level decimal commas are normalized to dots before parsing, so
// "x - 0,5" and "x - 0.5" are equivalent; commas inside function calls
// keep their argument-separator meaning.
func Compile(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmptyExpression
	}

	normalized := normalizeDecimalCommas(src)
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(normalized, mathFuncs)
	if err != nil {
		return nil, fmt.Errorf("funcexpr: parse %q: %w", src, err)
	}

	return &Expr{
		src:  src,
		expr: parsed,
		vars: map[string]any{varName: 0.0},
	}, nil
}

// String returns the original source of the expression.
func (e *Expr) String() string { return e.src }

// Eval evaluates the expression at x.
func (e *Expr) Eval(x float64) (float64, error) {
	return e.evalWith(e.vars, x)
}

// evalWith runs the expression against the given variable map.
func (e *Expr) evalWith(vars map[string]any, x float64) (float64, error) {
	vars[varName] = x
	v, err := e.expr.Evaluate(vars)
	if err != nil {
		return math.NaN(), fmt.Errorf("funcexpr: eval %q at x=%g: %w", e.src, x, err)
	}

	f, ok := toFloat(v)
	if !ok {
		return math.NaN(), fmt.Errorf("%w: %q produced %T", ErrNotNumeric, e.src, v)
	}

	return f, nil
}

// Func adapts the expression to the itp.Func contract.
//
// When the solver's scratch handle is a *Scratch, its variable map is reused
// across evaluations instead of the Expr's internal one, which keeps the
// adapter allocation-free per call and makes concurrent FindRoot invocations
// over one Expr safe. Any evaluation failure surfaces as NaN, which the
// solver reports as an invalid bracket.
func (e *Expr) Func() itp.Func {
	return func(scratch any, x float64, _ any) float64 {
		vars := e.vars
		if s, ok := scratch.(*Scratch); ok && s != nil {
			vars = s.vars
		}

		f, err := e.evalWith(vars, x)
		if err != nil {
			return math.NaN()
		}

		return f
	}
}
