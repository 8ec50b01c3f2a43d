package orchestration

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/tricalc/internal/errors"
	"github.com/agbru/tricalc/internal/progress"
	"github.com/agbru/tricalc/internal/triangle"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of dropped
// updates when the reporter is slow to consume them.
const ProgressBufferMultiplier = 5

// ExecuteSolves orchestrates the concurrent execution of one or more
// solvers over the same triangle.
//
// It manages the lifecycle of solver goroutines, collects their results,
// and coordinates the consumption of progress updates. Each solver tags its
// updates with its index in the slice, so reporters can aggregate across
// solvers. The triangle is shared read-only between all solvers.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - solvers: A slice of solvers to execute.
//   - tri: The triangle every solver works on.
//   - opts: The capacity options applied to every solve.
//   - reporter: The progress reporter consuming updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer handed to the reporter.
//
// Returns:
//   - []SolveResult: A slice containing the result of each solve, indexed
//     like solvers.
func ExecuteSolves(ctx context.Context, solvers []triangle.Solver, tri triangle.Triangle, opts triangle.Options, reporter ProgressReporter, out io.Writer) []SolveResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]SolveResult, len(solvers))
	progressChan := make(chan progress.ProgressUpdate, len(solvers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(solvers), out)

	for i, s := range solvers {
		idx, solver := i, s
		g.Go(func() error {
			startTime := time.Now()
			res, err := solver.Solve(ctx, progressChan, idx, tri, opts)
			results[idx] = SolveResult{
				Name: solver.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// ComparisonSummary aggregates the outcome of a multi-solver comparison.
type ComparisonSummary struct {
	// Results holds every solver outcome, fastest first and failures last.
	Results []SolveResult
	// Reference is the fastest successful result, against which the other
	// successful results were checked. Nil when every solver failed.
	Reference *SolveResult
	// SuccessCount is the number of solvers that completed.
	SuccessCount int
}

// AnalyzeComparisonResults validates consistency across the results of
// multiple strategies.
//
// The slice is sorted in place by execution time with failures last. When
// at least one solver succeeded, every other successful result is compared
// against the fastest one; any disagreement yields a MismatchError naming
// the offending strategy. When every solver failed, the first error is
// returned wrapped.
//
// Parameters:
//   - results: The slice of solve results to analyze.
//
// Returns:
//   - ComparisonSummary: The sorted results with the reference outcome.
//   - error: Nil on agreement, a MismatchError on inconsistency, or the
//     wrapped first failure when nothing succeeded.
func AnalyzeComparisonResults(results []SolveResult) (ComparisonSummary, error) {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	summary := ComparisonSummary{Results: results}
	var firstError error

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		summary.SuccessCount++
		if summary.Reference == nil {
			summary.Reference = &results[i]
		}
	}

	if summary.SuccessCount == 0 {
		if firstError == nil {
			return summary, apperrors.NewConfigError("no solvers were run")
		}
		return summary, apperrors.WrapError(firstError, "no solver could complete the computation")
	}

	for _, res := range results {
		if res.Err == nil && res.Result.Cmp(summary.Reference.Result) != 0 {
			return summary, apperrors.MismatchError{
				Algorithm: res.Name,
				Want:      summary.Reference.Result,
				Got:       res.Result,
			}
		}
	}

	return summary, nil
}
