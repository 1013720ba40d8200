package sweetrt

import "testing"

func TestAlloc(t *testing.T) {
	a := NewArena(1024)

	p := Alloc[int64](a)
	*p = 42
	if *p != 42 {
		t.Errorf("*Alloc[int64] = %d, want 42", *p)
	}

	type pair struct {
		X, Y int32
	}
	q := Alloc[pair](a)
	q.X, q.Y = 1, 2
	if q.X != 1 || q.Y != 2 {
		t.Errorf("Alloc[pair] = %+v, want {1 2}", *q)
	}

	if a.BytesInUse() != alignUp(8)+alignUp(8) {
		t.Errorf("BytesInUse = %d, want %d", a.BytesInUse(), alignUp(8)*2)
	}
}

func TestAllocSlice(t *testing.T) {
	a := NewArena(1024)

	s := AllocSlice[int32](a, 10)
	if len(s) != 10 {
		t.Fatalf("AllocSlice(10) length = %d, want 10", len(s))
	}
	for i := range s {
		s[i] = int32(i * 2)
	}
	for i, v := range s {
		if v != int32(i*2) {
			t.Errorf("s[%d] = %d, want %d", i, v, i*2)
		}
	}

	if got := AllocSlice[int32](a, 0); got != nil {
		t.Errorf("AllocSlice(0) = %v, want nil", got)
	}
	if got := AllocSlice[int32](a, -1); got != nil {
		t.Errorf("AllocSlice(-1) = %v, want nil", got)
	}
}

func TestAllocSliceDistinct(t *testing.T) {
	a := NewArena(1024)

	s1 := AllocSlice[byte](a, 16)
	s2 := AllocSlice[byte](a, 16)
	for i := range s1 {
		s1[i] = 0xAA
	}
	for i := range s2 {
		s2[i] = 0x55
	}
	for i, v := range s1 {
		if v != 0xAA {
			t.Fatalf("s1[%d] = %#x after writing s2, want 0xaa", i, v)
		}
	}
}
