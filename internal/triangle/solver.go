// Package triangle computes maximum root-to-base path sums over number
// triangles. Three interchangeable strategies are provided: a naive divide
// and conquer reference, a memoized top-down recursion, and the bottom-up
// fold used by default. All results are exact arbitrary-precision integers.
package triangle

import (
	"context"
	"math/big"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/tricalc/internal/errors"
	"github.com/agbru/tricalc/internal/progress"
)

// tracer instruments solves for hosts that install an OpenTelemetry tracer
// provider. Without one the spans are no-ops.
var tracer = otel.Tracer("tricalc/triangle")

// ─────────────────────────────────────────────────────────────────────────────
// Contracts
// ─────────────────────────────────────────────────────────────────────────────

// coreSolver is the computation contract implemented by each strategy.
// A core receives an already validated triangle and reports progress
// through the callback; admission, tracing, and observer plumbing belong
// to the wrapping PathSolver.
type coreSolver interface {
	// SolveCore computes the maximum root-to-base path sum of t.
	SolveCore(ctx context.Context, report progress.ProgressCallback, t Triangle, opts Options) (*big.Int, error)
	// Name returns the human-readable strategy name.
	Name() string
	// Description returns a one-line summary of the strategy.
	Description() string
}

// Solver is the public solving contract.
//
// Implementations are safe for concurrent use across distinct solves; a
// single Solve call runs entirely on the calling goroutine. The input
// triangle is treated as read-only and two solves of the same triangle
// return equal results.
type Solver interface {
	// Solve computes the maximum root-to-base path sum of t. Progress
	// updates tagged with solverIndex land on progressChan, which may be
	// nil when no reporting is wanted.
	Solve(ctx context.Context, progressChan chan<- progress.ProgressUpdate, solverIndex int, t Triangle, opts Options) (*big.Int, error)

	// Name returns the human-readable strategy name.
	Name() string
	// Description returns a one-line summary of the strategy.
	Description() string
}

// ─────────────────────────────────────────────────────────────────────────────
// Pipeline
// ─────────────────────────────────────────────────────────────────────────────

// PathSolver wraps a coreSolver with the shared solve pipeline: option and
// triangle validation, capacity admission, tracing, and progress fan-out.
type PathSolver struct {
	core coreSolver
}

// NewSolver wraps core in the standard pipeline.
func NewSolver(core coreSolver) Solver {
	return &PathSolver{core: core}
}

// Name implements Solver.
func (s *PathSolver) Name() string { return s.core.Name() }

// Description implements Solver.
func (s *PathSolver) Description() string { return s.core.Description() }

// Solve implements Solver.
func (s *PathSolver) Solve(ctx context.Context, progressChan chan<- progress.ProgressUpdate, solverIndex int, t Triangle, opts Options) (*big.Int, error) {
	subject := progress.NewProgressSubject()
	if progressChan != nil {
		subject.Register(progress.NewChannelObserver(progressChan))
	}
	return s.SolveWithObservers(ctx, subject, solverIndex, t, opts)
}

// SolveWithObservers is Solve with an explicit observer subject in place of
// a channel. A nil subject disables progress reporting.
func (s *PathSolver) SolveWithObservers(ctx context.Context, subject *progress.ProgressSubject, solverIndex int, t Triangle, opts Options) (*big.Int, error) {
	ctx, span := tracer.Start(ctx, "triangle.Solve")
	defer span.End()
	span.SetAttributes(
		attribute.String("algorithm", s.core.Name()),
		attribute.Int("rows", t.Rows()),
	)

	result, err := s.solve(ctx, subject, solverIndex, t, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return result, nil
}

// solve runs the admission checks and then hands the triangle to the core.
// Context errors pass through untouched so callers can match them with
// errors.Is; every other core failure is wrapped in a SolveError.
func (s *PathSolver) solve(ctx context.Context, subject *progress.ProgressSubject, solverIndex int, t Triangle, opts Options) (*big.Int, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := opts.checkRows(t.Rows()); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var report progress.ProgressCallback
	if subject != nil {
		report = subject.Freeze(solverIndex)
	}

	result, err := s.core.SolveCore(ctx, report, t, opts)
	if err != nil {
		if apperrors.IsContextError(err) {
			return nil, err
		}
		return nil, apperrors.SolveError{Cause: err}
	}
	return result, nil
}
