package sweetrt

import (
	"github.com/sweet-lang/sweetrt/internal/debug"
)

const (
	// blockHeaderSize is the per-block bookkeeping reserved ahead of the
	// data region in the original layout (next link plus used cursor).
	blockHeaderSize = 16

	// DefaultBlockSize is the usable byte capacity of a freshly grown block:
	// one 4 KiB page minus the block header.
	DefaultBlockSize = 4096 - blockHeaderSize

	// allocAlign is the rounding boundary for request sizes, sized for the
	// most strictly aligned scalar generated code can store. Every request
	// size is rounded up to a multiple of it, so block cursors stay aligned.
	allocAlign = 8
)

// block is one fixed-capacity storage region in the arena's chain.
type block struct {
	buf  []byte // backing memory, never resized
	used int    // bytes already handed out
}

func (b *block) remaining() int { return len(b.buf) - b.used }

// Arena is a block-chained bump allocator. Allocations are never freed
// individually; Teardown releases the whole chain at once. Not
// goroutine-safe; use SafeArena for concurrent hosts.
type Arena struct {
	blocks    []block // chain in creation order; nil until initialized
	blockSize int
}

// NewArena returns an arena whose fresh blocks have the given capacity.
// If blockSize <= 0, DefaultBlockSize is used. The chain itself is created
// lazily, on Init or the first allocation.
func NewArena(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Arena{blockSize: blockSize}
}

// Init creates the initial block. Idempotent: an arena that already has a
// chain is left untouched. AllocBytes calls it on first use, so explicit
// initialization is only needed to front-load the first storage request.
func (a *Arena) Init() {
	if a.blocks != nil {
		return
	}
	a.grow(0)
	debug.Logf("arena: initialized with %d bytes", a.blockSize)
}

// AllocBytes hands out n bytes of arena storage. The returned slice is valid
// until Teardown, is never moved and never reused for a later allocation, and
// callers must not assume it is zeroed. n == 0 yields a valid empty region.
// Negative n panics.
//
// The chain is walked from the head; the first block with enough remaining
// space satisfies the request. A request no existing block can hold grows the
// chain by one block of at least the rounded size, so an oversized request is
// never split across blocks.
func (a *Arena) AllocBytes(n int) []byte {
	if n < 0 {
		panic("sweetrt: negative allocation size")
	}
	if a.blocks == nil {
		a.Init()
	}
	rounded := alignUp(n)
	for i := range a.blocks {
		b := &a.blocks[i]
		if rounded <= b.remaining() {
			start := b.used
			b.used += rounded
			return b.buf[start : start+n : start+rounded]
		}
	}
	b := a.grow(rounded)
	b.used = rounded
	return b.buf[0:n:rounded]
}

// Teardown releases every block and returns the arena to its uninitialized
// state; a later allocation starts a fresh chain. Safe to call on an arena
// that was never initialized. All previously returned regions are invalid
// afterwards.
func (a *Arena) Teardown() {
	if a.blocks == nil {
		return
	}
	debug.Logf("arena: released %d blocks", len(a.blocks))
	a.blocks = nil
}

// grow appends a block of at least min bytes and returns it.
func (a *Arena) grow(min int) *block {
	size := a.blockSize
	if min > size {
		size = min
	}
	a.blocks = append(a.blocks, block{buf: make([]byte, size)})
	debug.Logf("arena: added block of %d bytes", size)
	return &a.blocks[len(a.blocks)-1]
}

// alignUp rounds n up to the allocation alignment boundary.
func alignUp(n int) int {
	return (n + allocAlign - 1) &^ (allocAlign - 1)
}
