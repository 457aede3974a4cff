//go:build amd64 && !purego

package sse2

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-carve/dsp/filter/biquad/internal/arch/registry"
)

func TestProcessBlock_MatchesReference(t *testing.T) {
	c := registry.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.25, A2: 0.0625}
	in := []float32{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}
	got := append([]float32(nil), in...)
	want := append([]float32(nil), in...)

	d0g, d1g := processBlock(c, 0, 0, got)
	d0w, d1w := refProcess(c, 0, 0, want)

	if d0g != d0w || d1g != d1w {
		t.Fatalf("state mismatch: got (%g,%g), want (%g,%g)", d0g, d1g, d0w, d1w)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("sample %d mismatch: got %.9f, want %.9f", i, got[i], want[i])
		}
	}
}

func BenchmarkProcessBlock_SSE2Kernel(b *testing.B) {
	c := registry.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.25, A2: 0.0625}
	for _, n := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := make([]float32, n)
			for i := range buf {
				buf[i] = float32(i) * 0.001
			}
			b.SetBytes(int64(n * 4))
			b.ReportAllocs()
			var d0, d1 float32
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d0, d1 = processBlock(c, d0, d1, buf)
			}
		})
	}
}

func refProcess(c registry.Coefficients, d0, d1 float32, buf []float32) (float32, float32) {
	for i, x := range buf {
		y := c.B0*x + d0
		d0 = c.B1*x - c.A1*y + d1
		d1 = c.B2*x - c.A2*y
		buf[i] = y
	}
	return d0, d1
}
