package progress

import (
	"sync"

	"github.com/agbru/tricalc/internal/logging"
)

// ProgressUpdate carries one progress notification from a solver taking
// part in a run.
type ProgressUpdate struct {
	// SolverIndex is the index of the solver that sent the update.
	SolverIndex int
	// Value is the solver's completion fraction in [0, 1].
	Value float64
}

// ProgressCallback receives a completion fraction in [0, 1]. Solver cores
// report through this narrow type so they stay decoupled from how progress
// is consumed.
type ProgressCallback func(value float64)

// ProgressObserver is notified each time a solver reports progress.
type ProgressObserver interface {
	// Update receives the reporting solver's index and completion fraction.
	Update(solverIndex int, value float64)
}

// ProgressSubject fans progress notifications out to registered observers.
// Registration is safe for concurrent use with Freeze.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates an empty subject.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Observers registered after a Freeze are not
// seen by callbacks produced by that Freeze.
func (s *ProgressSubject) Register(o ProgressObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Freeze snapshots the current observer set and returns a callback bound to
// solverIndex. The returned callback notifies exactly the observers present
// at freeze time, so a solve in flight is never affected by later
// registrations.
func (s *ProgressSubject) Freeze(solverIndex int) ProgressCallback {
	s.mu.RLock()
	snapshot := make([]ProgressObserver, len(s.observers))
	copy(snapshot, s.observers)
	s.mu.RUnlock()

	return func(value float64) {
		for _, o := range snapshot {
			o.Update(solverIndex, value)
		}
	}
}

// ChannelObserver forwards updates to a channel without ever blocking the
// reporting solver. When the channel is full the update is dropped; progress
// is advisory and the next report supersedes it anyway.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer forwarding to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Update sends the notification if the channel has room.
func (o *ChannelObserver) Update(solverIndex int, value float64) {
	if o.ch == nil {
		return
	}
	select {
	case o.ch <- ProgressUpdate{SolverIndex: solverIndex, Value: value}:
	default:
	}
}

// logStep is the minimum progress increase between two log entries emitted
// by a LoggingObserver for the same solver.
const logStep = 0.10

// LoggingObserver writes progress to a structured logger, throttled so a
// chatty solver produces at most one entry per logStep of advancement.
type LoggingObserver struct {
	logger logging.Logger

	mu     sync.Mutex
	lastAt map[int]float64
}

// NewLoggingObserver creates an observer logging through logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{
		logger: logger,
		lastAt: make(map[int]float64),
	}
}

// Update logs the notification when the solver has advanced by at least
// logStep since its previous entry, and always at completion.
func (o *LoggingObserver) Update(solverIndex int, value float64) {
	o.mu.Lock()
	last, seen := o.lastAt[solverIndex]
	shouldLog := !seen || value >= 1.0 || value-last >= logStep
	if shouldLog {
		o.lastAt[solverIndex] = value
	}
	o.mu.Unlock()

	if shouldLog {
		o.logger.Debug("solve progress",
			logging.Int("solver", solverIndex),
			logging.Float64("progress", value),
		)
	}
}

// NoOpObserver discards every update. It is the observer counterpart of a
// nil progress channel.
type NoOpObserver struct{}

// NewNoOpObserver creates an observer that does nothing.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// Update discards the notification.
func (o *NoOpObserver) Update(int, float64) {}
