package sweetrt

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/sweet-lang/sweetrt/internal/debug"
)

// Runtime bundles the arena with the streams the shims read from and write
// to. Generated code receives one Runtime and calls its methods for every
// primitive operation.
type Runtime struct {
	arena  *Arena
	stdin  *bufio.Reader
	stdout io.Writer
}

// NewRuntime wires a runtime from its collaborators. Nil arguments fall back
// to a default arena and the process's own streams; tests pass buffers.
func NewRuntime(a *Arena, stdin io.Reader, stdout io.Writer) *Runtime {
	if a == nil {
		a = NewArena(0)
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Runtime{
		arena:  a,
		stdin:  bufio.NewReader(stdin),
		stdout: stdout,
	}
}

// Arena exposes the runtime's allocator; generated code allocates its heap
// objects through it.
func (r *Runtime) Arena() *Arena {
	return r.arena
}

// Run drives the process lifecycle: initialize the arena, invoke the
// program's entry function exactly once, tear the arena down, and return the
// process exit code. A nil rt gets NewRuntime defaults.
func Run(rt *Runtime, program func(*Runtime)) int {
	if rt == nil {
		rt = NewRuntime(nil, nil, nil)
	}
	debug.Logf("libsw runtime v1.0")
	rt.arena.Init()
	program(rt)
	rt.arena.Teardown()
	return 0
}

// PrintInt writes v in base 10 to standard output.
func (r *Runtime) PrintInt(v int64) {
	io.WriteString(r.stdout, strconv.FormatInt(v, 10))
}

// PrintStr writes the bytes of s before its terminator to standard output.
// An absent s writes nothing.
func (r *Runtime) PrintStr(s Str) {
	if s == nil {
		return
	}
	r.stdout.Write(s[:s.termIndex()])
}
