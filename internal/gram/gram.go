// Package gram builds and centers the matrices Kernel PCA decomposes: the
// pairwise kernel (Gram) matrix for the kernel path and the covariance
// matrix of column-centered data for the linear path.
package gram

import (
	"context"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Evaluator computes a scalar similarity between two equal-length samples.
type Evaluator func(x, y []float64) (float64, error)

// Build evaluates eval for every unordered sample pair (i, j) with i <= j
// and mirrors the value into a symmetric N x N matrix.
//
// Row strips run on up to workers goroutines; each strip owns a disjoint
// set of rows, so the strips write disjoint entries. The result is
// identical for any worker count. Cancelling ctx aborts the build between
// pairs.
func Build(ctx context.Context, eval Evaluator, data [][]float64, workers int) (*mat.SymDense, error) {
	n := len(data)
	k := mat.NewSymDense(n, nil)
	if workers > n {
		workers = n
	}
	if workers < 2 {
		for i := 0; i < n; i++ {
			if err := buildRow(ctx, eval, data, k, i, 1); err != nil {
				return nil, err
			}
		}
		return k, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			// Rows are interleaved across workers because row i holds
			// n-i upper-triangle entries; contiguous strips would leave
			// the last worker nearly idle.
			errs[w] = buildRow(ctx, eval, data, k, w, workers)
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return k, nil
}

func buildRow(ctx context.Context, eval Evaluator, data [][]float64, k *mat.SymDense, start, stride int) error {
	n := len(data)
	for i := start; i < n; i += stride {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := i; j < n; j++ {
			v, err := eval(data[i], data[j])
			if err != nil {
				return err
			}
			k.SetSym(i, j, v)
		}
	}
	return nil
}

// CenterKernel double-centers a kernel matrix:
//
//	C[i][j] = K[i][j] - rowMean[i] - rowMean[j] + grandMean
//
// Row means double as column means because k is symmetric, so the result
// is exactly symmetric and its rows and columns sum to zero up to
// round-off. Centering the Gram matrix is equivalent to centering the
// unobserved feature vectors before taking inner products.
func CenterKernel(k *mat.SymDense) *mat.SymDense {
	n := k.SymmetricDim()
	means := make([]float64, n)
	var grand float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			means[i] += k.At(i, j)
		}
		grand += means[i]
		means[i] /= float64(n)
	}
	grand /= float64(n) * float64(n)

	c := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c.SetSym(i, j, k.At(i, j)-means[i]-means[j]+grand)
		}
	}
	return c
}

// CenterData subtracts the per-feature column mean from every sample and
// returns the centered N x D matrix in sample order.
func CenterData(data [][]float64) *mat.Dense {
	n, d := len(data), len(data[0])
	means := make([]float64, d)
	for _, row := range data {
		floats.Add(means, row)
	}
	floats.Scale(1/float64(n), means)

	xc := mat.NewDense(n, d, nil)
	for i, row := range data {
		for j, v := range row {
			xc.Set(i, j, v-means[j])
		}
	}
	return xc
}

// Covariance forms the D x D matrix (1/N) * Xc^T * Xc from column-centered
// data.
func Covariance(xc *mat.Dense) *mat.SymDense {
	n, _ := xc.Dims()
	var cov mat.SymDense
	cov.SymOuterK(1/float64(n), xc.T())
	return &cov
}
