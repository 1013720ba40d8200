// Package sweetrt implements the runtime support library for the sweet
// language: everything a compiled sweet program needs at run time and
// nothing more.
//
// # Overview
//
// The core is a block-chained bump allocator. Memory is acquired in fixed
// capacity blocks; allocations bump a cursor within the first block with
// room, and the whole chain is released at once when the program ends.
// There is no per-object deallocation.
//
//	arena := sweetrt.NewArena(0) // default block capacity
//	buf := arena.AllocBytes(256)
//	ptr := sweetrt.Alloc[int64](arena)
//	arena.Teardown()             // releases every block
//
// On top of the arena sit the primitives the compiler emits calls to:
// printing integers and strings, equality comparison, and line-oriented
// reading of standard input. A Runtime value bundles the arena with the
// process streams, and Run wraps the whole lifecycle:
//
//	os.Exit(sweetrt.Run(nil, func(rt *sweetrt.Runtime) {
//		line, ok := rt.ReadLine()
//		if ok {
//			rt.PrintStr(line)
//		}
//	}))
//
// # Memory Layout
//
// Blocks default to one page minus the block header. A request larger than
// the default gets a dedicated block of its own, never split. Request sizes
// are rounded up to the maximum scalar alignment, so every returned region
// is suitably aligned for any value type.
//
// # Lifetime and Safety
//
// Every region AllocBytes returns is a borrowed view into arena storage,
// valid until Teardown and never reused before it. Memory is not promised to
// be zeroed. The arena is single-threaded by design; SafeArena adds the lock
// a concurrent host needs.
//
// # Diagnostics
//
// Setting LIBSW_DEBUG in the environment makes the runtime narrate block
// growth, teardown and line reads on standard error.
package sweetrt
