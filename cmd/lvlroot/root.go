package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lvlroot",
	Short: "Bracketed scalar root finding with the ITP method",
	Long: `lvlroot solves f(x) = 0 on a sign-changing interval [lb, ub] using the
ITP (Interpolate-Truncate-Project) method: bisection's guaranteed worst case
with superlinear convergence on smooth roots.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Logging goes to stderr so a piped `lvlroot solve` emits only the root
		// on stdout.
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLogLevel(logLevel),
		})
		logger = slog.New(handler)
		slog.SetDefault(logger)
	},
}

// parseLogLevel maps the --log-level flag onto a slog level; unrecognized
// values fall back to Info.
func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
