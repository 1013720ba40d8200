package sweetrt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRuntime(input string) (*Runtime, *bytes.Buffer) {
	out := new(bytes.Buffer)
	rt := NewRuntime(NewArena(0), strings.NewReader(input), out)
	return rt, out
}

func TestPrintInt(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{0, "0"},
		{42, "42"},
		{-7, "-7"},
		{9223372036854775807, "9223372036854775807"},
		{-9223372036854775808, "-9223372036854775808"},
	}

	for _, tt := range tests {
		rt, out := newTestRuntime("")
		rt.PrintInt(tt.value)
		assert.Equal(t, tt.want, out.String())
	}
}

func TestPrintStr(t *testing.T) {
	rt, out := newTestRuntime("")
	a := rt.Arena()

	rt.PrintStr(NewStr(a, "hello"))
	rt.PrintStr(NewStr(a, ""))
	rt.PrintStr(nil)
	rt.PrintStr(NewStr(a, " world"))
	assert.Equal(t, "hello world", out.String())
}

func TestEqualInt(t *testing.T) {
	assert.True(t, EqualInt(5, 5))
	assert.False(t, EqualInt(5, 6))
	assert.True(t, EqualInt(0, 0))
	assert.True(t, EqualInt(-3, -3))
}

func TestEqualStr(t *testing.T) {
	a := NewArena(0)

	tests := []struct {
		name string
		x, y string
		want bool
	}{
		{"equal", "ab", "ab", true},
		{"length mismatch", "ab", "abc", false},
		{"both empty", "", "", true},
		{"same length different bytes", "abc", "abd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EqualStr(NewStr(a, tt.x), NewStr(a, tt.y))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("absent operands", func(t *testing.T) {
		s := NewStr(a, "ab")
		assert.False(t, EqualStr(nil, s))
		assert.False(t, EqualStr(s, nil))
		assert.False(t, EqualStr(nil, nil))
	})
}

func TestRunLifecycle(t *testing.T) {
	rt, out := newTestRuntime("")

	called := 0
	code := Run(rt, func(r *Runtime) {
		called++
		r.PrintStr(NewStr(r.Arena(), "ok"))
	})

	require.Equal(t, 0, code)
	require.Equal(t, 1, called, "entry function must run exactly once")
	assert.Equal(t, "ok", out.String())
	assert.Equal(t, 0, rt.Arena().NumBlocks(), "arena must be torn down after the program returns")
}
