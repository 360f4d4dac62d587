package diff

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gradfn/pkg/errors"
)

// Sum is the pointwise additive composite of two functions, produced by
// SumCombine. Both operands are evaluated at the same vars; values add and
// gradients add element-wise.
type Sum struct {
	a, b Function
}

// SumCombine joins two function instances into an additive composite.
// The composite's arity is whichever operand's arity is fixed, or ArityAny
// when both are unconstrained; two fixed but unequal arities are a
// DimensionError.
func SumCombine(a, b Function) *Sum {
	return &Sum{a: a, b: b}
}

// Arity reconciles the operand arities.
func (s *Sum) Arity() (int, error) {
	na, err := s.a.Arity()
	if err != nil {
		return 0, err
	}
	nb, err := s.b.Arity()
	if err != nil {
		return 0, err
	}

	switch {
	case na == ArityAny:
		return nb, nil
	case nb == ArityAny:
		return na, nil
	case na == nb:
		return na, nil
	default:
		return 0, errors.NewDimensionError("Sum.Arity", na, nb, 1)
	}
}

// Apply evaluates both operands at vars and adds the results.
func (s *Sum) Apply(vars *mat.VecDense) (float64, error) {
	va, err := s.a.Apply(vars)
	if err != nil {
		return 0, err
	}
	vb, err := s.b.Apply(vars)
	if err != nil {
		return 0, err
	}
	return va + vb, nil
}

// Gradient adds the operand gradients element-wise. The operand gradients
// must have the same length.
func (s *Sum) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	ga, err := s.a.Gradient(vars)
	if err != nil {
		return nil, err
	}
	gb, err := s.b.Gradient(vars)
	if err != nil {
		return nil, err
	}
	if ga.Len() != gb.Len() {
		return nil, errors.NewDimensionError("Sum.Gradient", ga.Len(), gb.Len(), 1)
	}

	grad := mat.NewVecDense(ga.Len(), nil)
	grad.AddVec(ga, gb)
	return grad, nil
}
