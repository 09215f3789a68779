// File: assemble/bench_test.go
package assemble_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ndpack/assemble"
	"github.com/katalvlaran/ndpack/ndarray"
)

// BenchmarkArrays packs 100 randomly sized 2-D arrays into a 10×10 grid.
func BenchmarkArrays(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	arrays := make([]*ndarray.Array[int], 100)
	for i := range arrays {
		shape := ndarray.Shape{1 + rng.Intn(16), 1 + rng.Intn(16)}
		a, err := ndarray.Full(shape, i)
		if err != nil {
			b.Fatal(err)
		}
		arrays[i] = a
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assemble.Arrays(arrays, ndarray.Shape{10, 10}); err != nil {
			b.Fatal(err)
		}
	}
}
