package diff

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// regParams holds the shared L1/L2 hyperparameters.
type regParams struct {
	lambda      float64
	ignoreFirst bool
}

func defaultRegParams() regParams {
	return regParams{lambda: 1.0, ignoreFirst: false}
}

// RegularizerOption is a functional option for the L1 and L2 penalties.
type RegularizerOption func(*regParams)

// WithLambda sets the penalty scale (default 1.0).
func WithLambda(lambda float64) RegularizerOption {
	return func(p *regParams) {
		p.lambda = lambda
	}
}

// WithIgnoreFirst excludes coordinate 0 from the penalty and forces its
// gradient entry to zero. Typical for a bias/intercept coefficient that
// should not be shrunk.
func WithIgnoreFirst(ignore bool) RegularizerOption {
	return func(p *regParams) {
		p.ignoreFirst = ignore
	}
}

// L1 is the absolute-value penalty (λ/2)·Σ|xᵢ|, with gradient λ·sign(xᵢ)
// (the sign of 0 is 0). It accepts any input length.
type L1 struct {
	regParams
}

// NewL1 creates an L1 penalty. Defaults: lambda 1.0, all coordinates
// included.
func NewL1(opts ...RegularizerOption) L1 {
	p := defaultRegParams()
	for _, opt := range opts {
		opt(&p)
	}
	return L1{regParams: p}
}

// Arity reports ArityAny.
func (L1) Arity() (int, error) {
	return ArityAny, nil
}

// Apply sums the absolute values of the included coordinates, scaled by
// lambda/2.
func (l L1) Apply(vars *mat.VecDense) (float64, error) {
	data := includedCoords(vars, l.ignoreFirst)
	return 0.5 * l.lambda * floats.Norm(data, 1), nil
}

// Gradient is λ·sign(xᵢ) per included coordinate. With ignoreFirst the
// entry for coordinate 0 is exactly 0; the output always has the same
// length as vars.
func (l L1) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	grad := mat.NewVecDense(vars.Len(), nil)
	start := 0
	if l.ignoreFirst {
		start = 1
	}
	for i := start; i < vars.Len(); i++ {
		grad.SetVec(i, l.lambda*sign(vars.AtVec(i)))
	}
	return grad, nil
}

// L2 is the squared penalty (λ/2)·Σxᵢ², with gradient λ·xᵢ. It accepts any
// input length.
type L2 struct {
	regParams
}

// NewL2 creates an L2 penalty. Defaults: lambda 1.0, all coordinates
// included.
func NewL2(opts ...RegularizerOption) L2 {
	p := defaultRegParams()
	for _, opt := range opts {
		opt(&p)
	}
	return L2{regParams: p}
}

// Arity reports ArityAny.
func (L2) Arity() (int, error) {
	return ArityAny, nil
}

// Apply sums the squares of the included coordinates, scaled by lambda/2.
func (l L2) Apply(vars *mat.VecDense) (float64, error) {
	data := includedCoords(vars, l.ignoreFirst)
	return 0.5 * l.lambda * floats.Dot(data, data), nil
}

// Gradient is λ·xᵢ per included coordinate, 0 for an excluded coordinate;
// output length equals the input length.
func (l L2) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	grad := mat.NewVecDense(vars.Len(), nil)
	start := 0
	if l.ignoreFirst {
		start = 1
	}
	for i := start; i < vars.Len(); i++ {
		grad.SetVec(i, l.lambda*vars.AtVec(i))
	}
	return grad, nil
}

// includedCoords returns the penalized coordinates as a flat slice,
// dropping coordinate 0 when ignoreFirst is set.
func includedCoords(vars *mat.VecDense, ignoreFirst bool) []float64 {
	data := mat.VecDenseCopyOf(vars).RawVector().Data
	if ignoreFirst {
		data = data[1:]
	}
	return data
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
