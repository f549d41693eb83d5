// Package eigen wraps gonum's symmetric eigendecomposition and exposes the
// eigenpairs in the order Kernel PCA consumes them.
package eigen

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned when the factorization does not converge
// within the solver's iteration bound.
var ErrNoConvergence = errors.New("symmetric eigendecomposition did not converge")

// System holds the eigenpairs of a symmetric matrix sorted by descending
// eigenvalue. Equal eigenvalues keep the ascending-value order the
// factorization produced, so the ordering is deterministic.
type System struct {
	values  []float64
	vectors *mat.Dense
	order   []int
}

// Decompose factorizes a symmetric matrix into eigenvalues and orthonormal
// eigenvectors satisfying a*v = value*v up to round-off.
func Decompose(a mat.Symmetric) (*System, error) {
	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		return nil, ErrNoConvergence
	}
	sys := &System{
		values:  es.Values(nil),
		vectors: &mat.Dense{},
	}
	es.VectorsTo(sys.vectors)
	sys.order = make([]int, len(sys.values))
	for i := range sys.order {
		sys.order[i] = i
	}
	sort.SliceStable(sys.order, func(i, j int) bool {
		return sys.values[sys.order[i]] > sys.values[sys.order[j]]
	})
	return sys, nil
}

// Len returns the number of eigenpairs.
func (s *System) Len() int {
	return len(s.values)
}

// Value returns the i-th eigenvalue in descending order.
func (s *System) Value(i int) float64 {
	return s.values[s.order[i]]
}

// Vector returns the unit eigenvector paired with Value(i).
// The returned vector aliases the decomposition and must not be modified.
func (s *System) Vector(i int) mat.Vector {
	return s.vectors.ColView(s.order[i])
}
