package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewGCController_Activation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mode   string
		cells  uint64
		active bool
	}{
		{"aggressive small", "aggressive", 10, true},
		{"aggressive zero", "aggressive", 0, true},
		{"auto below threshold", "auto", GCAutoCellThreshold - 1, false},
		{"auto at threshold", "auto", GCAutoCellThreshold, true},
		{"disabled large", "disabled", GCAutoCellThreshold * 10, false},
		{"unknown mode", "sometimes", GCAutoCellThreshold * 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gc := NewGCController(tt.mode, tt.cells)
			if gc.Active() != tt.active {
				t.Errorf("NewGCController(%q, %d).Active() = %v, want %v",
					tt.mode, tt.cells, gc.Active(), tt.active)
			}
		})
	}
}

func TestGCController_InactiveNoOp(t *testing.T) {
	t.Parallel()

	gc := NewGCController("disabled", GCAutoCellThreshold*10)
	gc.Begin()
	gc.End()

	stats := gc.Stats()
	if stats.TotalAlloc != 0 || stats.NumGC != 0 {
		t.Errorf("inactive controller recorded stats %+v, want zero", stats)
	}
}

func TestGCController_BeginEnd(t *testing.T) {
	// Not parallel: Begin/End touch process-wide collector settings.
	gc := NewGCController("aggressive", 1)
	if !gc.Active() {
		t.Fatal("aggressive controller should be active")
	}

	var buf bytes.Buffer
	gc.SetLogger(zerolog.New(&buf))

	gc.Begin()
	sink := make([]byte, 1<<20)
	sink[0] = 1
	gc.End()

	stats := gc.Stats()
	if stats.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0 after End")
	}
	if stats.TotalAlloc == 0 {
		t.Error("TotalAlloc delta should be > 0 after allocating")
	}

	out := buf.String()
	if !strings.Contains(out, "gc paused") {
		t.Errorf("log output missing pause event: %q", out)
	}
	if !strings.Contains(out, "gc restored") {
		t.Errorf("log output missing restore event: %q", out)
	}
	_ = sink
}

func TestTriangleCells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rows int
		want uint64
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{2, 3},
		{4, 10},
		{100, 5050},
		{2000, 2001000},
	}

	for _, tt := range tests {
		if got := TriangleCells(tt.rows); got != tt.want {
			t.Errorf("TriangleCells(%d) = %d, want %d", tt.rows, got, tt.want)
		}
	}
}
