package sweetrt

import (
	"bytes"

	"github.com/sweet-lang/sweetrt/internal/debug"
)

// Str is the runtime's string representation: a byte sequence in arena
// storage followed by a NUL terminator. A nil Str is the absent value. The
// view stays valid until the arena is torn down.
type Str []byte

// NewStr copies s into the arena and appends the terminator.
func NewStr(a *Arena, s string) Str {
	b := a.AllocBytes(len(s) + 1)
	copy(b, s)
	b[len(s)] = 0
	return Str(b)
}

// termIndex returns the position of the terminator, or the sequence length
// if none is present.
func (s Str) termIndex() int {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

// String returns the bytes before the terminator as a Go string.
func (s Str) String() string {
	if s == nil {
		return ""
	}
	return string(s[:s.termIndex()])
}

// EqualInt reports whether two integers are equal. Total; no failure mode.
func EqualInt(a, b int64) bool {
	return a == b
}

// EqualStr reports whether two sequences have equal length and identical
// bytes. Either operand being absent yields false. A length mismatch returns
// false without scanning the bytes.
func EqualStr(a, b Str) bool {
	if a == nil || b == nil {
		return false
	}
	la, lb := a.termIndex(), b.termIndex()
	if la != lb {
		debug.Logf("string@compare(%q, %q): false (length mismatch)", a[:la], b[:lb])
		return false
	}
	eq := bytes.Equal(a[:la], b[:lb])
	debug.Logf("string@compare(%q, %q): %t", a[:la], b[:lb], eq)
	return eq
}
