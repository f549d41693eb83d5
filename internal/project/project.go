// Package project turns sorted eigenpairs into the final embedding.
package project

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/kernelpca/internal/eigen"
)

// ErrNotEnoughComponents is returned when the requested embedding
// dimension is not positive or exceeds the available eigenpairs.
var ErrNotEnoughComponents = errors.New("not enough eigenpairs")

// FromKernel reads the embedding off the top eigenpairs of a centered
// kernel matrix: embedding column j is sqrt(lambda_j) * v_j, the dual
// coefficients v_j/sqrt(lambda_j) pushed through the centered matrix.
// Centered kernel matrices are positive semi-definite, so eigenvalues that
// round off slightly negative clamp to zero.
func FromKernel(sys *eigen.System, embedDim int) ([][]float64, error) {
	if err := check(sys, embedDim); err != nil {
		return nil, err
	}
	n := sys.Len()
	out := newRows(n, embedDim)
	for j := 0; j < embedDim; j++ {
		v := sys.Vector(j)
		var scale float64
		if ev := sys.Value(j); ev > 0 {
			scale = math.Sqrt(ev)
		}
		sign := dominantSign(v)
		for i := 0; i < n; i++ {
			out[i][j] = sign * scale * v.AtVec(i)
		}
	}
	return out, nil
}

// FromData projects column-centered samples onto the top unit eigenvectors
// of their covariance matrix: embedding row i is (Xc[i]·v_1, ..., Xc[i]·v_k).
func FromData(sys *eigen.System, embedDim int, xc *mat.Dense) ([][]float64, error) {
	if err := check(sys, embedDim); err != nil {
		return nil, err
	}
	n, d := xc.Dims()
	components := mat.NewDense(d, embedDim, nil)
	for j := 0; j < embedDim; j++ {
		v := sys.Vector(j)
		sign := dominantSign(v)
		for c := 0; c < d; c++ {
			components.Set(c, j, sign*v.AtVec(c))
		}
	}

	var proj mat.Dense
	proj.Mul(xc, components)
	out := newRows(n, embedDim)
	for i := 0; i < n; i++ {
		mat.Row(out[i], i, &proj)
	}
	return out, nil
}

func check(sys *eigen.System, embedDim int) error {
	if embedDim < 1 {
		return fmt.Errorf("%w: embedding dimension %d is not positive", ErrNotEnoughComponents, embedDim)
	}
	if embedDim > sys.Len() {
		return fmt.Errorf("%w: embedding dimension %d exceeds %d eigenpairs", ErrNotEnoughComponents, embedDim, sys.Len())
	}
	return nil
}

func newRows(n, dim int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dim)
	}
	return out
}

// dominantSign returns -1 when the maximum-magnitude entry of v is
// negative. Eigenvector sign is arbitrary; orienting each component by its
// dominant entry keeps repeated runs identical.
func dominantSign(v mat.Vector) float64 {
	var maxAbs float64
	sign := 1.0
	for i := 0; i < v.Len(); i++ {
		e := v.AtVec(i)
		if a := math.Abs(e); a > maxAbs {
			maxAbs = a
			if e < 0 {
				sign = -1
			} else {
				sign = 1
			}
		}
	}
	return sign
}
