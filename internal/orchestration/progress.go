package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/tricalc/internal/format"
	"github.com/agbru/tricalc/internal/logging"
	"github.com/agbru/tricalc/internal/progress"
)

// ProgressAggregator manages multi-solver progress aggregation. It wraps
// format.ProgressWithETA and provides a higher-level API for consuming
// progress updates from a channel, so reporters do not duplicate the
// aggregation setup and update logic.
type ProgressAggregator struct {
	state      *format.ProgressWithETA
	numSolvers int
}

// NewProgressAggregator creates a new aggregator for the given number of
// solvers. Returns nil if numSolvers <= 0.
func NewProgressAggregator(numSolvers int) *ProgressAggregator {
	if numSolvers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:      format.NewProgressWithETA(numSolvers),
		numSolvers: numSolvers,
	}
}

// AggregatedProgress holds the result of processing a single progress
// update.
type AggregatedProgress struct {
	// SolverIndex is the index of the solver that sent the update.
	SolverIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all solvers.
	AverageProgress float64
	// ETA is the estimated time remaining based on the smoothed progress
	// rate.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated
// result.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.SolverIndex, update.Value)
	return AggregatedProgress{
		SolverIndex:     update.SolverIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
// Useful for periodic refresh between updates.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumSolvers returns the number of solvers being tracked.
func (a *ProgressAggregator) NumSolvers() int {
	return a.numSolvers
}

// IsMultiSolver returns true if tracking more than one solver.
func (a *ProgressAggregator) IsMultiSolver() bool {
	return a.numSolvers > 1
}

// DrainChannel reads all updates from the channel without processing.
// Use this when numSolvers <= 0 and updates should be discarded.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}

// LoggingProgressReporter periodically logs aggregated progress with an
// ETA estimate. It is the headless counterpart of an interactive progress
// bar: hosts without a terminal still get visibility into long solves.
type LoggingProgressReporter struct {
	logger   logging.Logger
	interval time.Duration
}

// NewLoggingProgressReporter creates a reporter logging at most one
// summary per interval. Intervals <= 0 default to one second.
func NewLoggingProgressReporter(logger logging.Logger, interval time.Duration) *LoggingProgressReporter {
	if interval <= 0 {
		interval = time.Second
	}
	return &LoggingProgressReporter{logger: logger, interval: interval}
}

// DisplayProgress implements ProgressReporter. Updates are folded into the
// aggregator as they arrive; a summary line is logged once per interval
// and once more when the channel closes.
func (r *LoggingProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSolvers int, _ io.Writer) {
	defer wg.Done()

	agg := NewProgressAggregator(numSolvers)
	if agg == nil {
		DrainChannel(progressChan)
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logLine := func() {
		r.logger.Debug("solve progress",
			logging.Float64("average", agg.CalculateAverage()),
			logging.String("eta", format.FormatETA(agg.GetETA())),
		)
	}

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				logLine()
				return
			}
			agg.Update(update)
		case <-ticker.C:
			logLine()
		}
	}
}
