package triangle

// memoCache memoizes best-descent sums for one solve. Cell (i, j) lives at
// flat index i*(i+1)/2 + j, so the whole cache is a single allocation with
// no per-row indirection.
//
// Each cache belongs to exactly one solve and dies with it. Solver state is
// never shared across calls, so concurrent solves of different triangles
// cannot observe each other.
type memoCache struct {
	cells  []*Int
	filled int
}

// newMemoCache allocates a cache for a triangle of the given height.
func newMemoCache(rows int) *memoCache {
	return &memoCache{
		cells: make([]*Int, rows*(rows+1)/2),
	}
}

// get returns the cached sum for cell (i, j), or nil when not yet computed.
func (c *memoCache) get(i, j int) *Int {
	return c.cells[i*(i+1)/2+j]
}

// put stores the sum for cell (i, j) and returns it.
func (c *memoCache) put(i, j int, v *Int) *Int {
	idx := i*(i+1)/2 + j
	if c.cells[idx] == nil {
		c.filled++
	}
	c.cells[idx] = v
	return v
}

// size returns the number of cells the cache covers.
func (c *memoCache) size() int {
	return len(c.cells)
}
