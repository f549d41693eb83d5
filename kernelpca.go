// Package kernelpca implements Kernel Principal Component Analysis:
// nonlinear dimensionality reduction through the eigendecomposition of a
// double-centered kernel (Gram) matrix, with a standard-PCA shortcut for
// the linear kernel.
package kernelpca

import (
	"context"
	"errors"
	"fmt"

	"github.com/yyyoichi/kernelpca/internal/eigen"
	"github.com/yyyoichi/kernelpca/internal/gram"
	"github.com/yyyoichi/kernelpca/internal/project"
)

var (
	// ErrInvalidDataset reports an empty dataset or rows of unequal length.
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrDimensionMismatch reports two points of unequal length handed to a
	// kernel. Unreachable through Apply, which validates the dataset first.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInsufficientComponents reports an embedding dimension that is not
	// positive or exceeds the number of available eigenpairs.
	ErrInsufficientComponents = errors.New("insufficient components")
	// ErrDecompositionFailure reports a non-converging eigendecomposition.
	ErrDecompositionFailure = errors.New("eigendecomposition failed")
	// ErrUnknownKernel reports a zero-value Kernel, which selects no variant.
	ErrUnknownKernel = errors.New("unknown kernel")
)

// Apply runs Kernel PCA over data with the specified kernel and embedding
// dimension. This is a convenience function that creates a KernelPca
// instance and calls its Apply method.
func Apply(ctx context.Context, k Kernel, embedDim int, data [][]float64, opts ...Option) ([][]float64, error) {
	return New(k, embedDim, opts...).Apply(ctx, data)
}

// KernelPca holds an immutable Kernel PCA configuration: the kernel
// function and the embedding dimension. A single instance may be reused
// across Apply calls; nothing is shared or retained between calls.
type KernelPca struct {
	kernel   Kernel
	embedDim int
	workers  int
}

// New initializes a Kernel PCA configuration.
// The number of worker goroutines can be optionally specified.
func New(k Kernel, embedDim int, opts ...Option) *KernelPca {
	p := &KernelPca{kernel: k, embedDim: embedDim, workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply computes the embedding of data.
//
// Process (non-linear kernels):
//  1. Builds the N x N Gram matrix of pairwise kernel values.
//  2. Double-centers it so the embedding is taken around the feature-space
//     centroid.
//  3. Eigendecomposes the centered matrix.
//  4. Scales the top embedDim eigenvectors by the square roots of their
//     eigenvalues and reads the embedding rows off their entries.
//
// The linear kernel skips the Gram matrix entirely: inner-product kernel
// PCA is ordinary PCA, so Apply column-centers the data, decomposes the
// D x D covariance matrix (1/N)*Xc^T*Xc and projects the samples onto the
// top eigenvectors. That is O(N*D^2) instead of O(N^2*D) and decomposes a
// D x D instead of an N x N matrix.
//
// The embedding has one row per sample, in input order, with embedDim
// columns ordered by descending eigenvalue. Errors are deterministic for a
// given input; retrying without changing data or configuration cannot
// succeed.
func (p *KernelPca) Apply(ctx context.Context, data [][]float64) ([][]float64, error) {
	if err := p.validate(data); err != nil {
		return nil, err
	}
	if p.kernel.kind == kernelLinear {
		return p.applyLinear(data)
	}
	return p.applyKernel(ctx, data)
}

func (p *KernelPca) validate(data [][]float64) error {
	if p.kernel.kind == kernelUnknown {
		return ErrUnknownKernel
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: dataset has no samples", ErrInvalidDataset)
	}
	dim := len(data[0])
	if dim == 0 {
		return fmt.Errorf("%w: samples have no features", ErrInvalidDataset)
	}
	for i, row := range data {
		if len(row) != dim {
			return fmt.Errorf("%w: sample %d has %d features, want %d", ErrInvalidDataset, i, len(row), dim)
		}
	}
	if p.embedDim < 1 {
		return fmt.Errorf("%w: embedding dimension %d is not positive", ErrInsufficientComponents, p.embedDim)
	}
	// The kernel path yields one eigenpair per sample, the covariance path
	// one per feature.
	available := len(data)
	if p.kernel.kind == kernelLinear {
		available = dim
	}
	if p.embedDim > available {
		return fmt.Errorf("%w: embedding dimension %d exceeds %d available components", ErrInsufficientComponents, p.embedDim, available)
	}
	return nil
}

func (p *KernelPca) applyKernel(ctx context.Context, data [][]float64) ([][]float64, error) {
	k, err := gram.Build(ctx, p.kernel.Evaluate, data, p.workers)
	if err != nil {
		return nil, err
	}
	sys, err := eigen.Decompose(gram.CenterKernel(k))
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrDecompositionFailure, err)
	}
	emb, err := project.FromKernel(sys, p.embedDim)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInsufficientComponents, err)
	}
	return emb, nil
}

func (p *KernelPca) applyLinear(data [][]float64) ([][]float64, error) {
	xc := gram.CenterData(data)
	sys, err := eigen.Decompose(gram.Covariance(xc))
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrDecompositionFailure, err)
	}
	emb, err := project.FromData(sys, p.embedDim, xc)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInsufficientComponents, err)
	}
	return emb, nil
}
