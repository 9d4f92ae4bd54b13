package inplace_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/inplace"
)

// BenchmarkSmallPlacements tests small scratch arrays (8-64 elements)
// These are common for per-item working sets in parsers and encoders
func BenchmarkSmallPlacements(b *testing.B) {
	sizes := []int{8, 16, 32, 64}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Inplace_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				inplace.Array(size, 4096, func(j int) int64 { return int64(j) }, func(view []int64) int {
					return len(view)
				})
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				view := make([]int64, size)
				for j := range view {
					view[j] = int64(j)
				}
				_ = len(view)
			}
		})
	}
}

// BenchmarkMediumPlacements tests medium scratch arrays (128-1024 elements)
// These are common for line buffers and intermediate transform results
func BenchmarkMediumPlacements(b *testing.B) {
	sizes := []int{128, 256, 512, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Inplace_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				inplace.ArrayUninitialized(size, 1<<14, func(view []byte) int {
					for j := range view {
						view[j] = byte(j)
					}
					return len(view)
				})
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				view := make([]byte, size)
				for j := range view {
					view[j] = byte(j)
				}
				_ = len(view)
			}
		})
	}
}

// BenchmarkCopyPlacements tests disposable-copy workloads
func BenchmarkCopyPlacements(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		source := make([]int, size)
		for i := range source {
			source[i] = i
		}

		b.Run(fmt.Sprintf("CopyOf_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				inplace.CopyOf(source, 1<<14, func(view []int) int {
					view[0]++
					return view[0]
				})
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				view := append([]int(nil), source...)
				view[0]++
				_ = view[0]
			}
		})
	}
}
