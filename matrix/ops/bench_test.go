// Package ops_test provides benchmarks for the algebra engine on
// deterministic well-conditioned fixtures.
package ops_test

import (
	"fmt"
	"testing"

	"github.com/jamesbray03/lml/matrix"
	"github.com/jamesbray03/lml/matrix/ops"
)

// benchSizes are the square system sizes to benchmark.
var benchSizes = []int{16, 32, 64}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomWellConditioned(b, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				L, _, err := ops.LU(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = L
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomWellConditioned(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := ops.Det(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomWellConditioned(b, n, 3)
			rhs := randomWellConditioned(b, n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := ops.Solve(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = x
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomWellConditioned(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := ops.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}
