package tricalc

import (
	"context"
	"errors"
	"io"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/tricalc/internal/config"
	apperrors "github.com/agbru/tricalc/internal/errors"
	"github.com/agbru/tricalc/internal/format"
	"github.com/agbru/tricalc/internal/logging"
	"github.com/agbru/tricalc/internal/metrics"
	"github.com/agbru/tricalc/internal/orchestration"
	"github.com/agbru/tricalc/internal/progress"
	"github.com/agbru/tricalc/internal/server"
	"github.com/agbru/tricalc/internal/triangle"
)

// progressLogInterval is how often Compare logs aggregated progress while
// solvers are running.
const progressLogInterval = 2 * time.Second

// App bundles configuration, the solver registry, logging, and metrics into
// a ready-to-use solving host. Construct it with New; the zero value is not
// usable.
//
// An App is safe for concurrent use. Solves running at the same time share
// the registry and the metrics set but nothing else.
type App struct {
	cfg     config.Config
	factory triangle.SolverFactory
	logger  logging.Logger
	solves  *metrics.SolveMetrics
	mem     *metrics.MemoryCollector
}

// AppOption configures an App during construction.
type AppOption func(*App)

// WithFactory sets a custom solver factory for the App. Hosts use it to
// inject registries extended with experimental strategies.
func WithFactory(f triangle.SolverFactory) AppOption {
	return func(a *App) { a.factory = f }
}

// WithLogger routes the App's logging to l instead of the stderr default.
func WithLogger(l logging.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// WithSolveMetrics records solver activity into m instead of a fresh
// metrics set. Hosts running several Apps can aggregate them this way.
func WithSolveMetrics(m *metrics.SolveMetrics) AppOption {
	return func(a *App) { a.solves = m }
}

// New creates an App from cfg. The configuration is validated, then its
// zero limits are replaced by hardware-derived estimates. The global log
// level follows the Verbose and Quiet switches.
//
// Parameters:
//   - cfg: The host configuration. Use DefaultConfig or ConfigFromEnv as a
//     starting point.
//   - opts: Optional overrides for the factory, logger, and metrics.
//
// Returns:
//   - *App: The configured App.
//   - error: A ConfigError when cfg is contradictory.
func New(cfg config.Config, opts ...AppOption) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveLimits(cfg)

	app := &App{cfg: cfg}
	for _, opt := range opts {
		opt(app)
	}
	if app.factory == nil {
		app.factory = triangle.NewDefaultFactory()
	}
	if app.logger == nil {
		app.logger = logging.NewDefaultLogger()
	}
	if app.solves == nil {
		app.solves = metrics.NewSolveMetrics()
	}
	app.mem = metrics.NewMemoryCollector()

	zerolog.SetGlobalLevel(cfg.LogLevel())
	return app, nil
}

// NewFromEnv creates an App from the environment configuration.
func NewFromEnv(opts ...AppOption) (*App, error) {
	return New(config.FromEnv(), opts...)
}

// Config returns the resolved configuration, including the adaptive limits
// applied during construction.
func (a *App) Config() config.Config {
	return a.cfg
}

// Metrics returns the solver metrics set recording this App's activity.
func (a *App) Metrics() *metrics.SolveMetrics {
	return a.solves
}

// ObservabilityServer returns a server exposing this App's metrics and a
// liveness probe on the configured address, or nil when no MetricsAddr is
// set. The caller owns the server lifecycle:
//
//	if srv := app.ObservabilityServer(); srv != nil {
//		go srv.Start()
//		defer srv.Shutdown(ctx)
//	}
func (a *App) ObservabilityServer() *server.Server {
	if a.cfg.MetricsAddr == "" {
		return nil
	}
	return server.NewServer(a.cfg.MetricsAddr, a.logger, a.solves.Registry())
}

// Solve computes the maximum path sum of t with the configured algorithm,
// bounded by the configured timeout. When the algorithm is AlgoAll it
// degrades to Compare and returns the reference result.
//
// Parameters:
//   - ctx: The context for cancellation; the configured timeout is applied
//     on top of it.
//   - t: The triangle to solve.
//
// Returns:
//   - *big.Int: The exact maximum path sum.
//   - error: A ValidationError, ConfigError, ResourceLimitError,
//     TimeoutError, or solve failure.
func (a *App) Solve(ctx context.Context, t triangle.Triangle) (*big.Int, error) {
	if a.cfg.Algorithm == orchestration.AlgoAll {
		cmp, err := a.Compare(ctx, t)
		if err != nil {
			return nil, err
		}
		return cmp.Summary.Reference.Result, nil
	}

	solver, err := a.factory.Get(a.cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	inst := instrumentedSolver{Solver: solver, solves: a.solves}
	start := time.Now()
	result, err := inst.Solve(ctx, nil, 0, t, a.cfg.SolverOptions())
	if err != nil {
		err = a.mapTimeout(ctx, "solve", err)
		a.logger.Error("solve failed", err, logging.String("algorithm", solver.Name()))
		return nil, err
	}

	a.logger.Info("solve complete",
		logging.String("algorithm", solver.Name()),
		logging.Int("rows", t.Rows()),
		logging.String("elapsed", format.FormatExecutionDuration(time.Since(start))),
	)
	return result, nil
}

// Comparison is the outcome of running the configured solvers over one
// triangle and cross-checking their results.
type Comparison struct {
	// Summary holds the per-solver results, fastest first, with the
	// reference outcome the others were checked against.
	Summary orchestration.ComparisonSummary

	// Elapsed is the wall clock time of the whole comparison run.
	Elapsed time.Duration

	// HeapGrowth is the growth in live heap bytes over the run. It is a
	// coarse footprint signal, not an exact allocation count.
	HeapGrowth uint64

	// GC holds the collector statistics over the run when GC control was
	// active for it, and is zero otherwise.
	GC metrics.GCStats
}

// Compare runs every solver selected by the configured algorithm over t
// concurrently and cross-checks their results for agreement. A
// single-algorithm configuration yields a one-entry comparison with
// nothing to cross-check against.
//
// Parameters:
//   - ctx: The context for cancellation; the configured timeout is applied
//     on top of it.
//   - t: The triangle every solver works on.
//
// Returns:
//   - Comparison: The cross-checked results, valid even when err is not nil.
//   - error: Nil on agreement, a MismatchError on disagreement, a
//     TimeoutError when the run exceeded the configured budget, or the
//     wrapped first failure when nothing succeeded.
func (a *App) Compare(ctx context.Context, t triangle.Triangle) (Comparison, error) {
	solvers := orchestration.GetSolversToRun(a.cfg.Algorithm, a.factory)
	if len(solvers) == 0 {
		if _, err := a.factory.Get(a.cfg.Algorithm); err != nil {
			return Comparison{}, err
		}
		return Comparison{}, apperrors.NewConfigError("no solvers registered under %q", a.cfg.Algorithm)
	}

	instrumented := make([]triangle.Solver, len(solvers))
	for i, s := range solvers {
		instrumented[i] = instrumentedSolver{Solver: s, solves: a.solves}
	}

	var reporter orchestration.ProgressReporter
	if a.cfg.Quiet {
		reporter = orchestration.NullProgressReporter{}
	} else {
		reporter = orchestration.NewLoggingProgressReporter(a.logger, progressLogInterval)
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	gc := a.gcController(t)
	before := a.mem.Snapshot()
	start := time.Now()
	gc.Begin()
	results := orchestration.ExecuteSolves(ctx, instrumented, t, a.cfg.SolverOptions(), reporter, io.Discard)
	gc.End()
	elapsed := time.Since(start)
	after := a.mem.Snapshot()

	summary, err := orchestration.AnalyzeComparisonResults(results)
	cmp := Comparison{
		Summary:    summary,
		Elapsed:    elapsed,
		HeapGrowth: before.AllocDelta(after),
		GC:         gc.Stats(),
	}
	if err != nil {
		err = a.mapTimeout(ctx, "comparison", err)
		a.logger.Error("comparison failed", err, logging.Int("solvers", len(results)))
		return cmp, err
	}

	a.logger.Info("comparison complete",
		logging.Int("solvers", len(results)),
		logging.Int("succeeded", summary.SuccessCount),
		logging.String("reference", summary.Reference.Name),
		logging.String("elapsed", format.FormatExecutionDuration(elapsed)),
		logging.Uint64("heap_growth", cmp.HeapGrowth),
	)
	return cmp, nil
}

// gcController builds the collector controller for a run over t. The mode
// comes from the configuration, the activation measure is the triangle's
// cell count.
func (a *App) gcController(t triangle.Triangle) *metrics.GCController {
	mode := a.cfg.GCMode
	if mode == "" {
		mode = string(metrics.GCModeAuto)
	}
	gc := metrics.NewGCController(mode, metrics.TriangleCells(t.Rows()))
	if zl, ok := a.logger.(*logging.ZerologAdapter); ok {
		gc.SetLogger(zl.Zerolog())
	}
	return gc
}

// mapTimeout converts a failure caused by this App's own deadline into a
// TimeoutError naming the configured budget. Other failures pass through,
// and the per-solver results keep the raw context errors either way.
func (a *App) mapTimeout(ctx context.Context, operation string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && apperrors.IsContextError(err) {
		return apperrors.TimeoutError{Operation: operation, Limit: a.cfg.Timeout}
	}
	return err
}

// instrumentedSolver wraps a Solver with metrics recording. The gauge
// brackets the solve, so scrapes taken mid-run see it in flight.
type instrumentedSolver struct {
	triangle.Solver
	solves *metrics.SolveMetrics
}

// Solve implements triangle.Solver.
func (s instrumentedSolver) Solve(ctx context.Context, progressChan chan<- progress.ProgressUpdate, solverIndex int, t triangle.Triangle, opts triangle.Options) (*big.Int, error) {
	s.solves.SolveStarted(t.Rows())
	start := time.Now()
	result, err := s.Solver.Solve(ctx, progressChan, solverIndex, t, opts)
	s.solves.SolveFinished(s.Solver.Name(), time.Since(start), err)
	return result, err
}
