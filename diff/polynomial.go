package diff

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gradfn/pkg/errors"
)

// Polynomial is a multivariate polynomial objective. Row i of the
// coefficient matrix holds the degree-i coefficients, one column per input
// dimension:
//
//	f(x) = Σᵢ Σⱼ Cᵢⱼ · xⱼ^i
type Polynomial struct {
	coef *mat.Dense
}

// NewPolynomial creates a Polynomial objective from a coefficient matrix.
// The matrix is copied.
func NewPolynomial(coef mat.Matrix) *Polynomial {
	return &Polynomial{coef: mat.DenseCopyOf(coef)}
}

// Arity is the number of input dimensions, the column count of the
// coefficient matrix.
func (p *Polynomial) Arity() (int, error) {
	_, c := p.coef.Dims()
	return c, nil
}

// Apply raises vars elementwise to each exponent row's degree, dots with
// that row, and sums across rows.
func (p *Polynomial) Apply(vars *mat.VecDense) (float64, error) {
	degrees, dims := p.coef.Dims()
	if vars.Len() != dims {
		return 0, errors.NewDimensionError("Polynomial.Apply", dims, vars.Len(), 1)
	}

	var sum float64
	for i := 0; i < degrees; i++ {
		for j := 0; j < dims; j++ {
			sum += p.coef.At(i, j) * math.Pow(vars.AtVec(j), float64(i))
		}
	}
	return sum, nil
}

// Gradient computes ∂f/∂xⱼ = Σᵢ Cᵢⱼ · i · xⱼ^max(0, i-1). The degree-0 row
// contributes nothing (the i factor is zero); the exponent is clamped at 0
// so that row never computes a negative power ahead of the multiply.
func (p *Polynomial) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	degrees, dims := p.coef.Dims()
	if vars.Len() != dims {
		return nil, errors.NewDimensionError("Polynomial.Gradient", dims, vars.Len(), 1)
	}

	grad := mat.NewVecDense(dims, nil)
	for j := 0; j < dims; j++ {
		var g float64
		for i := 0; i < degrees; i++ {
			exp := i - 1
			if exp < 0 {
				exp = 0
			}
			g += p.coef.At(i, j) * float64(i) * math.Pow(vars.AtVec(j), float64(exp))
		}
		grad.SetVec(j, g)
	}
	return grad, nil
}
