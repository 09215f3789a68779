package ndarray_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ndpack/ndarray"
)

// BenchmarkBoundingSlices measures the single-pass bounding-box scan on a
// randomly sparse 1000×1000 grid.
// Complexity: O(W×H×rank)
func BenchmarkBoundingSlices(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	a, err := ndarray.New[int](ndarray.Shape{n, n})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	data := a.Data()
	for i := 0; i < n; i++ { // ~0.1% occupancy
		data[rng.Intn(len(data))] = 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = ndarray.BoundingSlices(a, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPadUniform measures padding a 512×512 grid by a 16-cell ring.
// Complexity: O(output size)
func BenchmarkPadUniform(b *testing.B) {
	a, err := ndarray.Full(ndarray.Shape{512, 512}, 3)
	if err != nil {
		b.Fatalf("setup Full failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = ndarray.PadUniform(a, 16, ndarray.Scalar(0)); err != nil {
			b.Fatal(err)
		}
	}
}
