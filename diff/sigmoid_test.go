package diff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSigmoidEval(t *testing.T) {
	sg := NewSigmoid()

	assert.InDelta(t, 0.5, sg.Eval(0), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(-2)), sg.Eval(2), 1e-12)
	assert.InDelta(t, 1-sg.Eval(3), sg.Eval(-3), 1e-12, "σ(-x) = 1-σ(x)")
	assert.InDelta(t, 1.0, sg.Eval(1000), 1e-12)
	assert.InDelta(t, 0.0, sg.Eval(-1000), 1e-12)
}

func TestSigmoidDeriv(t *testing.T) {
	sg := NewSigmoid()

	// σ' = σ - σ², maximal at 0.
	assert.InDelta(t, 0.25, sg.Deriv(0), 1e-12)
	for _, x := range []float64{-3, -1, 0.5, 2} {
		s := sg.Eval(x)
		assert.InDelta(t, s-s*s, sg.Deriv(x), 1e-12)
	}
	assert.InDelta(t, 0.0, sg.Deriv(1000), 1e-12)
}

func TestSigmoidElementwiseVector(t *testing.T) {
	sg := NewSigmoid()
	v := mat.NewVecDense(3, []float64{-1, 0, 1})

	got := sg.EvalVec(v)
	require.Equal(t, 3, got.Len())
	for i := 0; i < 3; i++ {
		assert.InDelta(t, sg.Eval(v.AtVec(i)), got.AtVec(i), 1e-12)
	}

	gotD := sg.DerivVec(v)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, sg.Deriv(v.AtVec(i)), gotD.AtVec(i), 1e-12)
	}
}

func TestSigmoidElementwiseMatrix(t *testing.T) {
	sg := NewSigmoid()
	m := mat.NewDense(2, 2, []float64{-2, -1, 1, 2})

	got := sg.EvalMat(m)
	gotD := sg.DerivMat(m)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, sg.Eval(m.At(i, j)), got.At(i, j), 1e-12)
			assert.InDelta(t, sg.Deriv(m.At(i, j)), gotD.At(i, j), 1e-12)
		}
	}
}

func TestSigmoidAggregateUsesFirstCoordinate(t *testing.T) {
	sg := NewSigmoid()

	// Only coordinate 0 participates; the rest of vars is ignored.
	vars := mat.NewVecDense(3, []float64{2, 100, -100})
	got, err := sg.Apply(vars)
	require.NoError(t, err)
	assert.InDelta(t, sg.Eval(2), got, 1e-12)

	grad, err := sg.Gradient(vars)
	require.NoError(t, err)
	require.Equal(t, 3, grad.Len())
	assert.InDelta(t, sg.Deriv(2), grad.AtVec(0), 1e-12)
	assert.Equal(t, 0.0, grad.AtVec(1))
	assert.Equal(t, 0.0, grad.AtVec(2))
}

func TestSigmoidArityIsAny(t *testing.T) {
	n, err := NewSigmoid().Arity()
	require.NoError(t, err)
	assert.Equal(t, ArityAny, n)
}
