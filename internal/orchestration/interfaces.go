package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/agbru/tricalc/internal/progress"
)

// SolveResult encapsulates the outcome of a single solver run. It serves as
// a standardized container for results from different strategies,
// facilitating comparison and reporting.
type SolveResult struct {
	// Name is the display name of the strategy used (e.g. "Iterative
	// Bottom-Up").
	Name string
	// Result is the computed maximum path sum. It is nil if an error
	// occurred.
	Result *big.Int
	// Duration is the time taken to complete the solve.
	Duration time.Duration
	// Err contains any error that occurred during the solve.
	Err error
}

// ProgressReporter defines the interface for consuming solve progress.
// This interface decouples the orchestration layer from reporting concerns:
// the orchestration layer coordinates the solves while implementations
// decide what to do with the update stream (log it, aggregate it, drop it).
type ProgressReporter interface {
	// DisplayProgress consumes progress updates from the channel. It is
	// called in a separate goroutine and runs until progressChan is
	// closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when consumption is complete.
	//   - progressChan: Channel receiving progress updates from solvers.
	//   - numSolvers: The number of concurrent solvers being tracked.
	//   - out: The writer for reporters that render output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSolvers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements
// ProgressReporter. This allows passing a function directly where a
// ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSolvers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numSolvers int, out io.Writer) {
	f(wg, progressChan, numSolvers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without doing anything with the updates.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}
