package diff

import (
	"gonum.org/v1/gonum/mat"
)

// Zero is the constant 0 objective. It accepts any input length and its
// gradient is the zero vector. It serves as the identity element for
// additive composition and as a placeholder objective.
type Zero struct{}

// NewZero creates a Zero objective.
func NewZero() Zero {
	return Zero{}
}

// Arity reports ArityAny: the constant function accepts any input length.
func (Zero) Arity() (int, error) {
	return ArityAny, nil
}

// Apply returns 0 for any vars.
func (Zero) Apply(_ *mat.VecDense) (float64, error) {
	return 0, nil
}

// Gradient returns the zero vector with the same length as vars.
func (Zero) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	return mat.NewVecDense(vars.Len(), nil), nil
}
