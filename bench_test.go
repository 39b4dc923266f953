package qbdiff

import (
	"bytes"
	"testing"

	"github.com/qbdiff/qbdiff/internal/prng"
)

func benchFixture(b *testing.B, size, editBytes int) (old, newData []byte) {
	b.Helper()
	gen := prng.New(99)
	old = gen.Bytes(size)
	newData = append([]byte(nil), old...)
	step := size / editBytes
	if step < 1 {
		step = 1
	}
	for i := 0; i < size; i += step {
		newData[i] ^= 0xFF
	}
	return old, newData
}

func BenchmarkCompute(b *testing.B) {
	old, newData := benchFixture(b, 1<<20, 1<<12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := Compute(old, newData, &buf); err != nil {
			b.Fatalf("Compute: %v", err)
		}
	}
}

func BenchmarkApply(b *testing.B) {
	old, newData := benchFixture(b, 1<<20, 1<<12)
	var patchBuf bytes.Buffer
	if err := Compute(old, newData, &patchBuf); err != nil {
		b.Fatalf("Compute: %v", err)
	}
	patch := patchBuf.Bytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out bytes.Buffer
		if err := Apply(old, patch, &out); err != nil {
			b.Fatalf("Apply: %v", err)
		}
	}
}
