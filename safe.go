package sweetrt

import "sync"

// SafeArena is a mutex-protected wrapper around Arena. The runtime proper is
// single-threaded and uses Arena directly; this wrapper is for embedding the
// allocator in a concurrent host, where the chain-walk-and-bump sequence in
// AllocBytes needs a lock around it.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena returns a locked arena with the given fresh-block capacity.
// If blockSize <= 0, DefaultBlockSize is used.
func NewSafeArena(blockSize int) *SafeArena {
	return &SafeArena{a: NewArena(blockSize)}
}

// Init creates the initial block while holding the arena lock.
func (s *SafeArena) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Init()
}

// AllocBytes hands out n bytes of arena storage while holding the arena lock.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Teardown releases every block while holding the arena lock.
func (s *SafeArena) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Teardown()
}

// SafeAlloc places one T in the arena while holding the arena lock.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocSlice places n elements of type T in the arena while holding the
// arena lock.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}
