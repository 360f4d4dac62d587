package diff

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gradfn/pkg/errors"
)

// Linear is the dot-product objective Σ kᵢ·xᵢ for a fixed coefficient
// vector k. Its gradient is k itself, independent of the evaluation point.
type Linear struct {
	coef *mat.VecDense
}

// NewLinear creates a Linear objective from a coefficient vector.
// The coefficients are copied; later mutation of coef does not affect the
// returned instance.
func NewLinear(coef *mat.VecDense) *Linear {
	return &Linear{coef: mat.VecDenseCopyOf(coef)}
}

// Arity is the length of the coefficient vector.
func (l *Linear) Arity() (int, error) {
	return l.coef.Len(), nil
}

// Apply computes the dot product of the coefficients with vars.
func (l *Linear) Apply(vars *mat.VecDense) (float64, error) {
	if vars.Len() != l.coef.Len() {
		return 0, errors.NewDimensionError("Linear.Apply", l.coef.Len(), vars.Len(), 1)
	}
	return mat.Dot(l.coef, vars), nil
}

// Gradient returns a copy of the coefficient vector for any valid vars.
func (l *Linear) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	if vars.Len() != l.coef.Len() {
		return nil, errors.NewDimensionError("Linear.Gradient", l.coef.Len(), vars.Len(), 1)
	}
	return mat.VecDenseCopyOf(l.coef), nil
}

// ApplyBatch evaluates each row of rows with a single matrix-vector
// product instead of a per-row map.
func (l *Linear) ApplyBatch(rows mat.Matrix) (*mat.VecDense, error) {
	r, c := rows.Dims()
	if c != l.coef.Len() {
		return nil, errors.NewDimensionError("Linear.ApplyBatch", l.coef.Len(), c, 1)
	}
	out := mat.NewVecDense(r, nil)
	out.MulVec(rows, l.coef)
	return out, nil
}

// GradientBatch stacks the constant gradient once per row.
func (l *Linear) GradientBatch(rows mat.Matrix) (*mat.Dense, error) {
	r, c := rows.Dims()
	if c != l.coef.Len() {
		return nil, errors.NewDimensionError("Linear.GradientBatch", l.coef.Len(), c, 1)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		out.SetRow(i, l.coef.RawVector().Data)
	}
	return out, nil
}
