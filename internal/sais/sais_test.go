package sais

import (
	"bytes"
	"sort"
	"testing"
)

func mustOrdered[T Index](t *testing.T, data []byte, sa []T) {
	t.Helper()
	for i := 1; i < len(sa); i++ {
		a := data[int(sa[i-1]):]
		b := data[int(sa[i]):]
		if bytes.Compare(a, b) > 0 {
			t.Fatalf("suffix array not ordered at %d: %q > %q", i, a, b)
		}
	}
}

func TestBuildOrdersSuffixesInt32(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("a"),
		[]byte("banana"),
		[]byte("mississippi"),
		bytes.Repeat([]byte{0}, 64),
		[]byte("abcabcabcabc"),
	}
	for _, data := range cases {
		sa := Build[int32](data)
		if len(sa) != len(data)+1 {
			t.Fatalf("Build(%q): len(sa)=%d, want %d", data, len(sa), len(data)+1)
		}
		mustOrdered(t, data, sa)
	}
}

func TestBuildOrdersSuffixesInt64(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	sa := Build[int64](data)
	mustOrdered(t, data, sa)
}

func TestBuildMatchesNaiveSort(t *testing.T) {
	data := []byte("abracadabra")
	sa := Build[int32](data)

	want := make([]int, len(data)+1)
	for i := range want {
		want[i] = i
	}
	sort.Slice(want, func(i, j int) bool {
		return bytes.Compare(data[want[i]:], data[want[j]:]) < 0
	})

	for i, w := range want {
		if int(sa[i]) != w {
			t.Fatalf("position %d: got suffix start %d, want %d", i, sa[i], w)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	sa := Build[int32](nil)
	if len(sa) != 1 {
		t.Fatalf("Build(nil): len=%d, want 1", len(sa))
	}
}
