// Package series_test provides benchmarks for series multiplication.
package series_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvseries/coeff"
	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/truncate"
)

var sink *series.Series

// fateman returns (1+x+y+z+t)^n with Integer coefficients, the classic
// sparse-multiplication benchmark operand.
func fateman(b *testing.B, n int) *series.Series {
	b.Helper()
	args := layout(b, []string{"x", "y", "z", "t"}, nil)
	s := poly(b, coeff.KindInteger, args,
		[]int64{1, 0, 0, 0, 0}, []int64{1, 1, 0, 0, 0}, []int64{1, 0, 1, 0, 0},
		[]int64{1, 0, 0, 1, 0}, []int64{1, 0, 0, 0, 1})
	p, err := series.Pow(context.Background(), s, n, truncate.None())
	if err != nil {
		b.Fatal(err)
	}

	return p
}

func benchmarkMultiply(b *testing.B, alg series.Algorithm, threads int) {
	s := fateman(b, 8)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := series.Multiply(ctx, s, s, truncate.None(), series.WithAlgorithm(alg), series.WithThreads(threads))
		if err != nil {
			b.Fatal(err)
		}
		sink = r
	}
}

func BenchmarkMultiply_Plain(b *testing.B)       { benchmarkMultiply(b, series.Plain, 1) }
func BenchmarkMultiply_VectorCoded(b *testing.B) { benchmarkMultiply(b, series.VectorCoded, 1) }
func BenchmarkMultiply_HashCoded(b *testing.B)   { benchmarkMultiply(b, series.HashCoded, 1) }
func BenchmarkMultiply_Automatic4(b *testing.B)  { benchmarkMultiply(b, series.Automatic, 4) }

// BenchmarkMultiply_Truncated measures the early-break path under degree truncation.
func BenchmarkMultiply_Truncated(b *testing.B) {
	s := fateman(b, 8)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := series.Multiply(ctx, s, s, truncate.ByDegree(10))
		if err != nil {
			b.Fatal(err)
		}
		sink = r
	}
}

// BenchmarkInsert measures accumulation into an existing key set.
func BenchmarkInsert(b *testing.B) {
	s := fateman(b, 6)
	terms := s.Terms()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		for _, t := range terms {
			_ = c.Insert(t)
		}
		sink = c
	}
}
