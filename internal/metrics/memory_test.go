package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	// Allocate some memory
	_ = make([]byte, 1024*1024) // 1 MB

	after := mc.Snapshot()

	// Sys should not decrease between snapshots
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}
}

func TestMemorySnapshot_AllocDelta(t *testing.T) {
	t.Parallel()

	before := MemorySnapshot{HeapAlloc: 1000}

	if got := before.AllocDelta(MemorySnapshot{HeapAlloc: 1500}); got != 500 {
		t.Errorf("AllocDelta = %d, want 500", got)
	}
	// A shrinking heap reports zero growth rather than wrapping around.
	if got := before.AllocDelta(MemorySnapshot{HeapAlloc: 200}); got != 0 {
		t.Errorf("AllocDelta after shrink = %d, want 0", got)
	}
}
