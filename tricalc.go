// This file re-exports the public types from the internal packages so
// consumers of the module never import internal paths directly.

package tricalc

import (
	"context"
	"io"
	"math/big"

	"github.com/agbru/tricalc/internal/config"
	apperrors "github.com/agbru/tricalc/internal/errors"
	"github.com/agbru/tricalc/internal/logging"
	"github.com/agbru/tricalc/internal/metrics"
	"github.com/agbru/tricalc/internal/orchestration"
	"github.com/agbru/tricalc/internal/progress"
	"github.com/agbru/tricalc/internal/server"
	"github.com/agbru/tricalc/internal/triangle"
)

// Type aliases for the solving domain.
type (
	// Triangle is a type alias for triangle.Triangle.
	Triangle = triangle.Triangle

	// Options is a type alias for triangle.Options.
	Options = triangle.Options

	// Solver is a type alias for triangle.Solver.
	Solver = triangle.Solver

	// SolverFactory is a type alias for triangle.SolverFactory.
	SolverFactory = triangle.SolverFactory

	// NaiveSplit is a type alias for triangle.NaiveSplit.
	NaiveSplit = triangle.NaiveSplit

	// MemoizedTopDown is a type alias for triangle.MemoizedTopDown.
	MemoizedTopDown = triangle.MemoizedTopDown

	// IterativeBottomUp is a type alias for triangle.IterativeBottomUp.
	IterativeBottomUp = triangle.IterativeBottomUp

	// ProgressUpdate is a type alias for progress.ProgressUpdate.
	ProgressUpdate = progress.ProgressUpdate
)

// Type aliases for execution and reporting.
type (
	// Config is a type alias for config.Config.
	Config = config.Config

	// SolveResult is a type alias for orchestration.SolveResult.
	SolveResult = orchestration.SolveResult

	// ComparisonSummary is a type alias for orchestration.ComparisonSummary.
	ComparisonSummary = orchestration.ComparisonSummary

	// Logger is a type alias for logging.Logger.
	Logger = logging.Logger

	// LogField is a type alias for logging.Field.
	LogField = logging.Field

	// SolveMetrics is a type alias for metrics.SolveMetrics.
	SolveMetrics = metrics.SolveMetrics

	// GCStats is a type alias for metrics.GCStats.
	GCStats = metrics.GCStats

	// MetricsServer is a type alias for server.Server.
	MetricsServer = server.Server
)

// Type aliases for the error taxonomy. Callers match them with errors.As.
type (
	// ValidationError is a type alias for the internal validation error.
	ValidationError = apperrors.ValidationError

	// ConfigError is a type alias for the internal configuration error.
	ConfigError = apperrors.ConfigError

	// SolveError is a type alias for the internal solve error wrapper.
	SolveError = apperrors.SolveError

	// TimeoutError is a type alias for the internal timeout error.
	TimeoutError = apperrors.TimeoutError

	// ResourceLimitError is a type alias for the internal capacity error.
	ResourceLimitError = apperrors.ResourceLimitError

	// MismatchError is a type alias for the internal cross-check error.
	MismatchError = apperrors.MismatchError
)

// Registry keys for the built-in strategies.
const (
	// AlgoNaive selects the divide and conquer reference solver.
	AlgoNaive = triangle.AlgoNaive

	// AlgoMemoized selects the cached recursive solver.
	AlgoMemoized = triangle.AlgoMemoized

	// AlgoIterative selects the bottom-up folding solver.
	AlgoIterative = triangle.AlgoIterative

	// AlgoAll selects every registered solver for a comparison run.
	AlgoAll = orchestration.AlgoAll

	// DefaultAlgorithm is the solver used when no preference is expressed.
	DefaultAlgorithm = triangle.DefaultAlgorithm
)

// Garbage collector modes for Config.GCMode.
const (
	// GCModeAuto pauses collection only for runs big enough to benefit.
	GCModeAuto = string(metrics.GCModeAuto)

	// GCModeAggressive pauses collection for every comparison run.
	GCModeAggressive = string(metrics.GCModeAggressive)

	// GCModeDisabled leaves the collector alone.
	GCModeDisabled = string(metrics.GCModeDisabled)
)

// Re-exported constructors and helpers from the internal packages.
var (
	// NewTriangle validates rows and returns them as a Triangle.
	NewTriangle = triangle.New

	// Split divides a triangle into the subtriangles under its apex.
	Split = triangle.Split

	// DefaultOptions returns the solver capacity defaults as explicit values.
	DefaultOptions = triangle.DefaultOptions

	// NewSolver wraps a strategy in the standard solving pipeline.
	NewSolver = triangle.NewSolver

	// NewDefaultFactory returns a registry with the built-in strategies.
	NewDefaultFactory = triangle.NewDefaultFactory

	// GlobalFactory returns the process-wide default registry.
	GlobalFactory = triangle.GlobalFactory

	// DefaultConfig returns the configuration defaults.
	DefaultConfig = config.Default

	// ConfigFromEnv returns the defaults with TRICALC_* overrides applied.
	ConfigFromEnv = config.FromEnv

	// NewSolveMetrics creates a solver metrics set backed by a fresh registry.
	NewSolveMetrics = metrics.NewSolveMetrics

	// NewDefaultLogger creates the standard process logger writing to stderr.
	NewDefaultLogger = logging.NewDefaultLogger

	// IsContextError reports whether err is a cancellation or deadline error.
	IsContextError = apperrors.IsContextError
)

// MaxPath computes the maximum root-to-base path sum of rows using the
// default solver and capacity limits. It is the plain entry point for
// callers that need neither solver selection nor observability.
//
// Parameters:
//   - rows: The triangle rows, top to base. Row i must hold i+1 values.
//
// Returns:
//   - *big.Int: The exact maximum path sum.
//   - error: A ValidationError for malformed input, or a solve failure.
func MaxPath(rows [][]int64) (*big.Int, error) {
	return MaxPathContext(context.Background(), rows)
}

// MaxPathContext is MaxPath bounded by a context.
func MaxPathContext(ctx context.Context, rows [][]int64) (*big.Int, error) {
	t, err := triangle.New(rows)
	if err != nil {
		return nil, err
	}
	solver := triangle.GlobalFactory().MustGet(triangle.DefaultAlgorithm)
	return solver.Solve(ctx, nil, 0, t, triangle.Options{})
}

// MaxPathCrossChecked computes the maximum path sum of rows with every
// registered solver concurrently and verifies that they agree. It trades
// the extra compute for a result no single implementation bug can skew.
//
// Parameters:
//   - ctx: The context bounding all solver runs.
//   - rows: The triangle rows, top to base. Row i must hold i+1 values.
//
// Returns:
//   - *big.Int: The agreed maximum path sum.
//   - error: A ValidationError for malformed input, a MismatchError on
//     disagreement, or the first solve failure when nothing succeeded.
func MaxPathCrossChecked(ctx context.Context, rows [][]int64) (*big.Int, error) {
	t, err := triangle.New(rows)
	if err != nil {
		return nil, err
	}
	solvers := orchestration.GetSolversToRun(orchestration.AlgoAll, triangle.GlobalFactory())
	results := orchestration.ExecuteSolves(ctx, solvers, t, triangle.Options{}, orchestration.NullProgressReporter{}, io.Discard)
	summary, err := orchestration.AnalyzeComparisonResults(results)
	if err != nil {
		return nil, err
	}
	return summary.Reference.Result, nil
}
