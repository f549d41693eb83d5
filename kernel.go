package kernelpca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

type kernelKind int

const (
	kernelUnknown kernelKind = iota
	kernelLinear
	kernelSquaredExponential
	kernelRationalQuadratic
)

// Kernel selects the similarity function used to compare two samples.
// The variant set is closed; construct values with Linear,
// SquaredExponential or RationalQuadratic. The zero value is not a valid
// kernel and fails with ErrUnknownKernel.
type Kernel struct {
	kind  kernelKind
	gamma float64
	alpha float64
}

// Linear returns the inner-product kernel x·y.
//
// Selecting it makes Apply fall back to standard PCA on the covariance
// matrix instead of building the Gram matrix; Evaluate itself is only used
// when callers invoke it directly.
func Linear() Kernel {
	return Kernel{kind: kernelLinear}
}

// SquaredExponential returns the RBF kernel exp(-gamma * |x-y|^2).
// gamma is expected strictly positive; it is not validated.
func SquaredExponential(gamma float64) Kernel {
	return Kernel{kind: kernelSquaredExponential, gamma: gamma}
}

// RationalQuadratic returns the kernel (1 + (gamma/alpha) * |x-y|^2)^(-alpha).
// gamma and alpha are expected strictly positive; they are not validated.
func RationalQuadratic(gamma, alpha float64) Kernel {
	return Kernel{kind: kernelRationalQuadratic, gamma: gamma, alpha: alpha}
}

// Evaluate computes the kernel value for the two points.
// Returns ErrDimensionMismatch if the points differ in length.
func (k Kernel) Evaluate(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(x), len(y))
	}
	switch k.kind {
	case kernelLinear:
		return floats.Dot(x, y), nil
	case kernelSquaredExponential:
		return math.Exp(-k.gamma * squaredDistance(x, y)), nil
	case kernelRationalQuadratic:
		return math.Pow(1+(k.gamma/k.alpha)*squaredDistance(x, y), -k.alpha), nil
	default:
		return 0, ErrUnknownKernel
	}
}

func squaredDistance(x, y []float64) float64 {
	var ssd float64
	for i := range x {
		d := x[i] - y[i]
		ssd += d * d
	}
	return ssd
}
