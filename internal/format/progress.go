package format

import (
	"sync"
	"time"
)

// maxETA bounds the reported time-to-completion so that a stalled rate
// estimate never produces an absurd figure.
const maxETA = 24 * time.Hour

// ProgressState tracks the completion fraction reported by each solver
// taking part in a comparison run. It is safe for concurrent use.
type ProgressState struct {
	mu         sync.Mutex
	numSolvers int
	progresses []float64
}

// NewProgressState creates a tracker for n solvers, all starting at zero.
//
// Parameters:
//   - n: The number of solvers to track.
//
// Returns:
//   - *ProgressState: The initialized tracker.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{
		numSolvers: n,
		progresses: make([]float64, n),
	}
}

// Update records the progress of one solver. Values outside [0, 1] are
// clamped and out-of-range indices are ignored, so a misbehaving reporter
// cannot corrupt the aggregate.
//
// Parameters:
//   - index: The solver's position in the run.
//   - value: The solver's completion fraction.
func (ps *ProgressState) Update(index int, value float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if index < 0 || index >= ps.numSolvers {
		return
	}
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	ps.progresses[index] = value
}

// CalculateAverage returns the mean completion fraction across all solvers.
//
// Returns:
//   - float64: The average progress in [0, 1], or 0 when tracking no solvers.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.numSolvers == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numSolvers)
}

// ProgressWithETA couples a ProgressState with a smoothed completion-rate
// estimate from which a time-to-completion can be derived.
type ProgressWithETA struct {
	*ProgressState

	mu           sync.Mutex
	progressRate float64
	lastProgress float64
	lastUpdate   time.Time
	startTime    time.Time
}

// rateSmoothing is the exponential moving average weight applied to the
// instantaneous progress rate. Higher values react faster, lower values
// smooth out bursty reporters.
const rateSmoothing = 0.3

// NewProgressWithETA creates a progress tracker with ETA estimation for
// n solvers.
//
// Parameters:
//   - n: The number of solvers to track.
//
// Returns:
//   - *ProgressWithETA: The initialized tracker.
func NewProgressWithETA(n int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(n),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records the progress of one solver and refreshes the rate
// estimate.
//
// Parameters:
//   - index: The solver's position in the run.
//   - value: The solver's completion fraction.
//
// Returns:
//   - float64: The new average progress across all solvers.
//   - time.Duration: The estimated time to completion (0 when unknown).
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	p.mu.Lock()
	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	if elapsed > 0 && avg > p.lastProgress {
		instantRate := (avg - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = instantRate
		} else {
			p.progressRate = rateSmoothing*instantRate + (1-rateSmoothing)*p.progressRate
		}
		p.lastProgress = avg
		p.lastUpdate = now
	}
	p.mu.Unlock()

	return avg, p.GetETA()
}

// GetETA returns the estimated time to completion based on the current
// average progress and smoothed rate. It returns 0 until enough data has
// been observed, and never exceeds maxETA.
//
// Returns:
//   - time.Duration: The estimated time to completion.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	rate := p.progressRate
	p.mu.Unlock()

	if rate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / rate * float64(time.Second))
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}
