package tween

import (
	"fmt"
	"testing"
)

// setupBenchManager creates a Manager with n long-running tweens.
func setupBenchManager(n int) (*Manager, []Handle) {
	m := NewManager(Config{})
	hs := make([]Handle, n)
	for i := range hs {
		hs[i] = m.Create(0, 100, 1e9, Easing(i%int(easingCount)))
	}
	return m, hs
}

// --- Manager Benchmarks ---

func BenchmarkAdvance(b *testing.B) {
	for _, n := range []int{16, 1000, 100000} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			m, _ := setupBenchManager(n)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m.Advance(DefaultDelta)
			}
		})
	}
}

func BenchmarkValue(b *testing.B) {
	m, hs := setupBenchManager(1000)
	m.Advance(1)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Value(hs[i%len(hs)])
	}
}

func BenchmarkCreateDestroy(b *testing.B) {
	m, _ := setupBenchManager(1000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h := m.Create(0, 1, 1, OutBounce)
		m.Destroy(h)
	}
}

func BenchmarkSweepHalfExpired(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := NewManager(Config{})
		for j := 0; j < 10000; j++ {
			d := float32(10)
			if j%2 == 0 {
				d = 0
			}
			m.Create(0, 1, d, Linear)
		}
		b.StartTimer()
		m.Advance(DefaultDelta)
	}
}

// --- Easing Benchmarks ---

func BenchmarkEase(b *testing.B) {
	for _, e := range []Easing{Linear, InOutSine, OutBounce, InOutElastic} {
		b.Run(e.String(), func(b *testing.B) {
			var sink float32
			for i := 0; i < b.N; i++ {
				sink += e.Ease(float32(i%1000) / 1000)
			}
			_ = sink
		})
	}
}
