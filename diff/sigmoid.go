package diff

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigmoid is the elementwise logistic nonlinearity σ(x) = 1/(1+e^-x) with
// derivative σ(x) - σ(x)². The elementwise forms (Eval, EvalVec, EvalMat
// and their Deriv counterparts) apply the formula independently to every
// element; the aggregate Apply/Gradient forms required by the Function
// contract operate on coordinate 0 of vars only — a single-input special
// case, not a reduction over the vector.
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid.
func NewSigmoid() Sigmoid {
	return Sigmoid{}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Eval applies the logistic function to a scalar.
func (Sigmoid) Eval(x float64) float64 {
	return sigmoid(x)
}

// Deriv is the derivative of the logistic function at a scalar.
func (Sigmoid) Deriv(x float64) float64 {
	s := sigmoid(x)
	return s - s*s
}

// EvalVec applies the logistic function to every element of v.
func (sg Sigmoid) EvalVec(v *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		out.SetVec(i, sigmoid(v.AtVec(i)))
	}
	return out
}

// DerivVec applies the logistic derivative to every element of v.
func (sg Sigmoid) DerivVec(v *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		out.SetVec(i, sg.Deriv(v.AtVec(i)))
	}
	return out
}

// EvalMat applies the logistic function to every element of m.
func (Sigmoid) EvalMat(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return sigmoid(v) }, m)
	return &out
}

// DerivMat applies the logistic derivative to every element of m.
func (sg Sigmoid) DerivMat(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return sg.Deriv(v) }, m)
	return &out
}

// Arity reports ArityAny.
func (Sigmoid) Arity() (int, error) {
	return ArityAny, nil
}

// Apply evaluates the logistic function at the first coordinate of vars.
func (Sigmoid) Apply(vars *mat.VecDense) (float64, error) {
	return sigmoid(vars.AtVec(0)), nil
}

// Gradient returns a vector of the same length as vars holding the
// logistic derivative at coordinate 0 and zeros elsewhere.
func (sg Sigmoid) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	out := mat.NewVecDense(vars.Len(), nil)
	out.SetVec(0, sg.Deriv(vars.AtVec(0)))
	return out, nil
}
