package triangle

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestConcurrentSolvesDistinctTriangles runs many goroutines, each solving
// its own triangle with all three strategies, and verifies every result
// against the DP oracle. Strategies hold no cross-call state, so parallel
// solves must not interfere.
func TestConcurrentSolvesDistinctTriangles(t *testing.T) {
	t.Parallel()

	const workers = 8
	var wg sync.WaitGroup
	var failures atomic.Int64

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(w)))
			tri := randomTriangle(rng, 12+w, 1000)
			want := maxPathRef(tri)

			for _, core := range allStrategies() {
				got, err := solveWith(core, tri)
				if err != nil {
					t.Errorf("worker %d: %s failed: %v", w, core.Name(), err)
					failures.Add(1)
					return
				}
				if got.Cmp(want) != 0 {
					t.Errorf("worker %d: %s = %s, want %s", w, core.Name(), got, want)
					failures.Add(1)
				}
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if n := failures.Load(); n != 0 {
			t.Fatalf("%d concurrent solves failed", n)
		}
	case <-time.After(60 * time.Second):
		t.Fatal("DEADLOCK: concurrent solves did not complete")
	}
}

// TestConcurrentSolvesSharedTriangle hammers one shared solver instance and
// one shared triangle from many goroutines. The triangle is read-only for
// the whole run, so every solve must see the same value and leave the input
// untouched.
func TestConcurrentSolvesSharedTriangle(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(17))
	tri := randomTriangle(rng, 40, 1000)
	snapshot := tri.Clone()
	want := maxPathRef(tri)

	solver := GlobalFactory().MustGet(AlgoIterative)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			got, err := solver.Solve(context.Background(), nil, w, tri, Options{})
			if err != nil {
				t.Errorf("worker %d failed: %v", w, err)
				return
			}
			if got.Cmp(want) != 0 {
				t.Errorf("worker %d = %s, want %s", w, got, want)
			}
		}(w)
	}
	wg.Wait()

	if !tri.Equal(snapshot) {
		t.Error("concurrent solves mutated the shared triangle")
	}
}
