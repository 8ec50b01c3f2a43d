package metrics

import (
	"math"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// GCMode controls the garbage collector behavior during a solve run.
type GCMode string

const (
	// GCModeAuto pauses the collector only for runs big enough to benefit.
	GCModeAuto GCMode = "auto"
	// GCModeAggressive pauses the collector for every run.
	GCModeAggressive GCMode = "aggressive"
	// GCModeDisabled leaves the collector alone.
	GCModeDisabled GCMode = "disabled"
)

// GCAutoCellThreshold is the minimum number of triangle cells for auto GC
// control to activate. Below it the accumulators are too small for collector
// pauses to matter.
const GCAutoCellThreshold uint64 = 2_000_000

// GCController pauses Go's garbage collector around an allocation-heavy
// solve run and restores it afterward. Recursive solves churn one
// arbitrary-precision integer per visited cell; pausing collection trades
// temporary heap growth for fewer pauses mid-run.
type GCController struct {
	mode              GCMode
	originalGCPercent int
	active            bool
	logger            zerolog.Logger
	startStats        runtime.MemStats
	endStats          runtime.MemStats
}

// GCStats holds collector statistics over a Begin/End window.
type GCStats struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// NewGCController creates a controller for the given mode and triangle cell
// count. Unknown modes stay inactive.
func NewGCController(mode string, cells uint64) *GCController {
	gc := &GCController{mode: GCMode(mode), logger: zerolog.Nop()}
	switch gc.mode {
	case GCModeAggressive:
		gc.active = true
	case GCModeAuto:
		gc.active = cells >= GCAutoCellThreshold
	default:
		gc.active = false
	}
	return gc
}

// Active reports whether this controller will touch the collector.
func (gc *GCController) Active() bool {
	return gc.active
}

// SetLogger configures the logger for GC control events.
func (gc *GCController) SetLogger(l zerolog.Logger) {
	gc.logger = l
}

// Begin pauses collection if the controller is active.
func (gc *GCController) Begin() {
	if !gc.active {
		return
	}
	runtime.ReadMemStats(&gc.startStats)
	gc.originalGCPercent = debug.SetGCPercent(-1)
	// Soft memory limit as an OOM safety net while collection is paused.
	if gc.startStats.Sys > 0 {
		limit := int64(float64(gc.startStats.Sys) * 3)
		if limit > 0 {
			debug.SetMemoryLimit(limit)
		}
	}
	gc.logger.Debug().
		Str("mode", string(gc.mode)).
		Uint64("heap_alloc_bytes", gc.startStats.HeapAlloc).
		Msg("gc paused")
}

// End restores the original collector settings and triggers a collection.
func (gc *GCController) End() {
	if !gc.active {
		return
	}
	runtime.ReadMemStats(&gc.endStats)
	debug.SetGCPercent(gc.originalGCPercent)
	debug.SetMemoryLimit(math.MaxInt64)
	runtime.GC()
	gc.logger.Debug().
		Str("mode", string(gc.mode)).
		Uint64("heap_alloc_bytes", gc.endStats.HeapAlloc).
		Uint64("total_alloc_bytes", gc.endStats.TotalAlloc-gc.startStats.TotalAlloc).
		Uint32("gc_cycles", gc.endStats.NumGC-gc.startStats.NumGC).
		Msg("gc restored")
}

// Stats returns the collector statistics delta between Begin and End.
func (gc *GCController) Stats() GCStats {
	return GCStats{
		HeapAlloc:    gc.endStats.HeapAlloc,
		TotalAlloc:   gc.endStats.TotalAlloc - gc.startStats.TotalAlloc,
		NumGC:        gc.endStats.NumGC - gc.startStats.NumGC,
		PauseTotalNs: gc.endStats.PauseTotalNs - gc.startStats.PauseTotalNs,
	}
}

// TriangleCells returns the cell count of a rows-high triangle. It is the
// activation measure for GCModeAuto.
func TriangleCells(rows int) uint64 {
	if rows <= 0 {
		return 0
	}
	n := uint64(rows)
	return n * (n + 1) / 2
}
