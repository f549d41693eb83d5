package kernelpca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/kernelpca"
)

// kernelValueDelta is the absolute tolerance for hand-computed kernel
// values.
const kernelValueDelta = 1e-12

func TestKernel_Evaluate(t *testing.T) {
	test := []struct {
		name   string
		kernel kernelpca.Kernel
		x, y   []float64
		exp    float64
	}{
		{
			name:   "squared exponential of distinct points",
			kernel: kernelpca.SquaredExponential(0.5),
			x:      []float64{0, 0},
			y:      []float64{1, 1},
			// exp(-0.5 * 2)
			exp: 0.36787944117144233,
		},
		{
			name:   "squared exponential of identical points",
			kernel: kernelpca.SquaredExponential(2.0),
			x:      []float64{1.5, -2.5, 3.0},
			y:      []float64{1.5, -2.5, 3.0},
			exp:    1.0,
		},
		{
			name:   "rational quadratic",
			kernel: kernelpca.RationalQuadratic(1.0, 2.0),
			x:      []float64{0, 0},
			y:      []float64{1, 1},
			// (1 + (1/2)*2)^-2
			exp: 0.25,
		},
		{
			name:   "rational quadratic with fractional gamma",
			kernel: kernelpca.RationalQuadratic(0.5, 1.0),
			x:      []float64{0, 0},
			y:      []float64{2, 0},
			// (1 + 0.5*4)^-1
			exp: 1.0 / 3.0,
		},
		{
			name:   "linear dot product",
			kernel: kernelpca.Linear(),
			x:      []float64{1, 2, 3},
			y:      []float64{4, 5, 6},
			exp:    32.0,
		},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.kernel.Evaluate(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.exp, got, kernelValueDelta)

			// Kernels are symmetric in their arguments.
			flipped, err := tt.kernel.Evaluate(tt.y, tt.x)
			require.NoError(t, err)
			assert.InDelta(t, got, flipped, kernelValueDelta)
		})
	}
}

func TestKernel_EvaluateDimensionMismatch(t *testing.T) {
	for _, k := range []kernelpca.Kernel{
		kernelpca.Linear(),
		kernelpca.SquaredExponential(1.0),
		kernelpca.RationalQuadratic(1.0, 1.0),
	} {
		_, err := k.Evaluate([]float64{1, 2, 3}, []float64{1, 2})
		assert.ErrorIs(t, err, kernelpca.ErrDimensionMismatch)
	}
}

func TestKernel_EvaluateZeroValue(t *testing.T) {
	var k kernelpca.Kernel
	_, err := k.Evaluate([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, kernelpca.ErrUnknownKernel)
}
