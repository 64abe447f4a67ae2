package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlroot/funcexpr"
	"github.com/katalvlaran/lvlroot/itp"
)

var (
	exprSrc  string
	lb       float64
	ub       float64
	fTol     float64
	xTol     float64
	k1       float64
	k2       float64
	n0       int
	maxIters int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a root of an expression on a bracketing interval",
	Long: `Solves f(x) = 0 for an expression in x on [lb, ub].

The endpoints must bracket a root: f(lb) and f(ub) must have opposite signs.
Expressions use govaluate syntax with sin, cos, tan, exp, log, sqrt, cbrt,
abs and pow available, e.g.:

  lvlroot solve --expr "x*x*x - 2*x + 2" --lb -100 --ub 5
  lvlroot solve --expr "cbrt(x)" --lb -10 --ub 2 --f-tol 1e-3 --x-tol 1e-3`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&exprSrc, "expr", "", "Expression in x to solve (required)")
	solveCmd.Flags().Float64Var(&lb, "lb", 0, "Lower interval bound (required)")
	solveCmd.Flags().Float64Var(&ub, "ub", 0, "Upper interval bound (required)")
	solveCmd.Flags().Float64Var(&fTol, "f-tol", itp.DefaultFTol, "Function-value convergence tolerance")
	solveCmd.Flags().Float64Var(&xTol, "x-tol", itp.DefaultXTol, "Bracket-width convergence tolerance")
	solveCmd.Flags().Float64Var(&k1, "k1", itp.DefaultK1, "Truncation step-size scale factor")
	solveCmd.Flags().Float64Var(&k2, "k2", itp.DefaultK2, "Truncation step-size exponent, in [1, 1+phi)")
	solveCmd.Flags().IntVar(&n0, "n0", itp.DefaultN0, "Iteration slack over the bisection bound")
	solveCmd.Flags().IntVar(&maxIters, "max-iters", 0, "Hard iteration cap (0 = unbounded)")

	solveCmd.MarkFlagRequired("expr")
	solveCmd.MarkFlagRequired("lb")
	solveCmd.MarkFlagRequired("ub")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	expr, err := funcexpr.Compile(exprSrc)
	if err != nil {
		return err
	}

	iters := 0
	opts := []itp.Option{
		itp.WithFTol(fTol),
		itp.WithXTol(xTol),
		itp.WithK1(k1),
		itp.WithK2(k2),
		itp.WithN0(n0),
		itp.WithObserver(func(it itp.Iteration) {
			iters = it.K
			slog.Debug("iteration",
				"k", it.K, "a", it.A, "b", it.B, "x", it.X, "fx", it.FX, "width", it.Width)
		}),
	}
	if cmd.Flags().Changed("max-iters") {
		opts = append(opts, itp.WithMaxIters(maxIters))
	}

	cfg, err := itp.NewConfig(opts...)
	if err != nil {
		return err
	}

	slog.Info("solving", "expr", expr.String(), "lb", lb, "ub", ub, "f_tol", fTol, "x_tol", xTol)

	root, converged, err := itp.FindRoot(funcexpr.NewScratch(), expr.Func(), nil, lb, ub, cfg)
	if err != nil {
		return err
	}
	if math.IsNaN(root) {
		return fmt.Errorf("no root bracketed: f(%g) and f(%g) must have opposite signs", lb, ub)
	}

	slog.Info("done", "root", root, "converged_on_f_tol", converged, "iterations", iters)
	fmt.Printf("root = %.12g\n", root)

	return nil
}
