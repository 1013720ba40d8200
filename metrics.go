package sweetrt

// BytesInUse returns the total bytes handed out across all blocks, including
// the padding added by size rounding.
func (a *Arena) BytesInUse() int {
	sum := 0
	for i := range a.blocks {
		sum += a.blocks[i].used
	}
	return sum
}

// NumBlocks returns the number of blocks in the chain.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Capacity returns the total capacity in bytes of all blocks.
func (a *Arena) Capacity() int {
	sum := 0
	for i := range a.blocks {
		sum += len(a.blocks[i].buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity, in the
// range 0.0 to 1.0. Returns 0.0 for an uninitialized arena.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.BytesInUse()) / float64(capacity)
}

// BlockSize returns the capacity used for fresh blocks.
func (a *Arena) BlockSize() int {
	return a.blockSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		BytesInUse:  a.BytesInUse(),
		Capacity:    a.Capacity(),
		NumBlocks:   a.NumBlocks(),
		BlockSize:   a.BlockSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics is a point-in-time view of an arena's memory accounting.
type ArenaMetrics struct {
	BytesInUse  int     // bytes handed out, rounding included
	Capacity    int     // total capacity of all blocks
	NumBlocks   int     // blocks in the chain
	BlockSize   int     // capacity of fresh blocks
	Utilization float64 // BytesInUse / Capacity, 0.0 to 1.0
}

// Thread-safe metrics for SafeArena.

// BytesInUse returns the bytes handed out while holding the arena lock.
func (s *SafeArena) BytesInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.BytesInUse()
}

// NumBlocks returns the chain length while holding the arena lock.
func (s *SafeArena) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumBlocks()
}

// Capacity returns the total block capacity while holding the arena lock.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics returns a consistent metrics snapshot while holding the arena lock.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
