package qbdiff

import (
	"bytes"
	"testing"
)

func TestComputeStreamsIdenticalBuffers(t *testing.T) {
	old := bytes.Repeat([]byte{0}, 1024)
	newData := bytes.Repeat([]byte{0}, 1024)

	s := computeStreams(old, newData)

	n, err := tripleCount(s.cb)
	if err != nil {
		t.Fatalf("tripleCount: %v", err)
	}
	if n != 1 {
		t.Fatalf("triple count=%d, want 1", n)
	}
	// a==1024, b==0 is pinned (every byte covered additively, nothing
	// literal); c is not, since it depends on which all-zero alignment the
	// suffix-array binary search happens to land on first.
	tr := readTriple(s.cb, 0)
	if tr.a != 1024 || tr.b != 0 {
		t.Fatalf("triple=%+v, want a=1024 b=0", tr)
	}
	if !allZero(s.db) {
		t.Fatalf("DB not all-zero: %v", s.db)
	}
	if len(s.eb) != 0 {
		t.Fatalf("EB not empty: %v", s.eb)
	}
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestComputeStreamsTriplesSumToNewLength(t *testing.T) {
	old := []byte("the quick brown fox jumps over the lazy dog")
	newData := []byte("the slow brown fox leaps over the lazy cat")

	s := computeStreams(old, newData)
	n, err := tripleCount(s.cb)
	if err != nil {
		t.Fatalf("tripleCount: %v", err)
	}

	var total int64
	for k := 0; k < n; k++ {
		tr := readTriple(s.cb, k)
		if tr.a < 0 || tr.b < 0 {
			t.Fatalf("triple %d has negative a/b: %+v", k, tr)
		}
		total += tr.a + tr.b
	}
	if total != int64(len(newData)) {
		t.Fatalf("sum(a+b)=%d, want %d", total, len(newData))
	}
}

func TestComputeStreamsOneByteChange(t *testing.T) {
	old := []byte("Hello, world!")
	newData := []byte("Hello, World!")

	s := computeStreams(old, newData)
	out, err := replay(old, s.cb, s.db, s.eb, int64(len(newData)))
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !bytes.Equal(out, newData) {
		t.Fatalf("replay=%q, want %q", out, newData)
	}
}

// Only the 32-bit branch of the width selection is exercised here: the
// 64-bit branch needs len(old) >= sa32Ceiling.
func TestComputeStreamsWidthSelection(t *testing.T) {
	small := make([]byte, 16)
	saSmall := computeStreams(small, small)
	if _, err := tripleCount(saSmall.cb); err != nil {
		t.Fatalf("small width tripleCount: %v", err)
	}
}
