package sweetrt

import "unsafe"

// Alloc places one T in the arena and returns a pointer to it, the typed face
// of the compiler's heap-object allocation. The memory is part of an untyped
// block, so T must not hold Go pointers: the collector does not trace arena
// storage.
func Alloc[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	b := a.AllocBytes(size)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice places n elements of type T in the arena. The same no-Go-pointers
// restriction as Alloc applies. Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	total := int(unsafe.Sizeof(zero)) * n
	if total == 0 {
		return make([]T, n)
	}
	b := a.AllocBytes(total)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}
