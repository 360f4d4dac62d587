package diff

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gradfn/pkg/errors"
)

// A regression coefficient table packs a training set: rows are samples,
// every column except the last is a feature column, and the last column is
// the target. The caller is responsible for prepending a bias column of
// ones if an intercept term is wanted; the bias-first, target-last layout
// is the contract any data-loading collaborator must honor.
//
// Construction never validates the table. A table that cannot be split into
// features and target (fewer than 2 columns, or no rows) surfaces as a
// CoefficientTableError on the first Arity, Apply, or Gradient call.

// LinearRegression is the halved mean-squared-error cost of a linear model
// over a fixed training table:
//
//	f(w) = (1/2m) · Σ (X·w − y)²
//	∇f(w) = (1/m) · Xᵀ·(X·w − y)
type LinearRegression struct {
	table *mat.Dense
}

// NewLinearRegression creates the cost function for the given training
// table. The table is copied; validation is deferred to first use.
func NewLinearRegression(table mat.Matrix) *LinearRegression {
	return &LinearRegression{table: mat.DenseCopyOf(table)}
}

// Arity is the feature-column count of the table (the target column is
// excluded).
func (lr *LinearRegression) Arity() (int, error) {
	return tableArity("LinearRegression.Arity", lr.table)
}

// Apply evaluates the halved mean-squared error at the parameter vector w.
func (lr *LinearRegression) Apply(vars *mat.VecDense) (float64, error) {
	resid, m, err := residual("LinearRegression.Apply", lr.table, vars)
	if err != nil {
		return 0, err
	}
	return mat.Dot(resid, resid) / (2 * float64(m)), nil
}

// Gradient evaluates (1/m)·Xᵀ·(X·w − y).
func (lr *LinearRegression) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	resid, m, err := residual("LinearRegression.Gradient", lr.table, vars)
	if err != nil {
		return nil, err
	}

	X, _, _ := splitFeaturesTarget("LinearRegression.Gradient", lr.table)
	grad := mat.NewVecDense(vars.Len(), nil)
	grad.MulVec(X.T(), resid)
	grad.ScaleVec(1/float64(m), grad)
	return grad, nil
}

// LogisticRegression is the mean binary cross-entropy cost of a logistic
// model over a fixed training table. With s = σ(X·w):
//
//	f(w) = (1/m) · Σ [ −y·log(s) − (1−y)·log(1−s) ]
//	∇f(w) = (1/m) · Xᵀ·(s − y)
//
// The logarithm is unguarded: when a sample's score saturates s to exactly
// 0 or 1 on the wrong side of its target, the cost becomes Inf or NaN and
// propagates. The gradient has no logarithm and stays finite.
type LogisticRegression struct {
	table *mat.Dense
}

// NewLogisticRegression creates the cost function for the given training
// table. The table is copied; validation is deferred to first use.
func NewLogisticRegression(table mat.Matrix) *LogisticRegression {
	return &LogisticRegression{table: mat.DenseCopyOf(table)}
}

// Arity is the feature-column count of the table.
func (lr *LogisticRegression) Arity() (int, error) {
	return tableArity("LogisticRegression.Arity", lr.table)
}

// Apply evaluates the mean binary cross-entropy at the parameter vector w.
func (lr *LogisticRegression) Apply(vars *mat.VecDense) (float64, error) {
	s, y, m, err := lr.scores("LogisticRegression.Apply", vars)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < m; i++ {
		si := s.AtVec(i)
		yi := y.AtVec(i)
		sum += -yi*math.Log(si) - (1-yi)*math.Log(1-si)
	}
	return sum / float64(m), nil
}

// Gradient evaluates (1/m)·Xᵀ·(s − y).
func (lr *LogisticRegression) Gradient(vars *mat.VecDense) (*mat.VecDense, error) {
	s, y, m, err := lr.scores("LogisticRegression.Gradient", vars)
	if err != nil {
		return nil, err
	}

	s.SubVec(s, y)
	X, _, _ := splitFeaturesTarget("LogisticRegression.Gradient", lr.table)
	grad := mat.NewVecDense(vars.Len(), nil)
	grad.MulVec(X.T(), s)
	grad.ScaleVec(1/float64(m), grad)
	return grad, nil
}

// scores computes s = σ(X·w) together with the target vector and sample
// count.
func (lr *LogisticRegression) scores(op string, vars *mat.VecDense) (*mat.VecDense, *mat.VecDense, int, error) {
	X, y, err := splitFeaturesTarget(op, lr.table)
	if err != nil {
		return nil, nil, 0, err
	}
	m, n := X.Dims()
	if vars.Len() != n {
		return nil, nil, 0, errors.NewDimensionError(op, n, vars.Len(), 1)
	}

	s := mat.NewVecDense(m, nil)
	s.MulVec(X, vars)
	for i := 0; i < m; i++ {
		s.SetVec(i, sigmoid(s.AtVec(i)))
	}
	return s, y, m, nil
}

// residual computes X·w − y for the linear-regression forms.
func residual(op string, table *mat.Dense, vars *mat.VecDense) (*mat.VecDense, int, error) {
	X, y, err := splitFeaturesTarget(op, table)
	if err != nil {
		return nil, 0, err
	}
	m, n := X.Dims()
	if vars.Len() != n {
		return nil, 0, errors.NewDimensionError(op, n, vars.Len(), 1)
	}

	resid := mat.NewVecDense(m, nil)
	resid.MulVec(X, vars)
	resid.SubVec(resid, y)
	return resid, m, nil
}

// splitFeaturesTarget slices the table into the feature matrix (all
// columns but the last) and the target vector (the last column).
func splitFeaturesTarget(op string, table *mat.Dense) (mat.Matrix, *mat.VecDense, error) {
	r, c := table.Dims()
	if c < 2 {
		return nil, nil, errors.NewCoefficientTableError(op, r, c, "need at least one feature column and a target column")
	}
	if r < 1 {
		return nil, nil, errors.NewCoefficientTableError(op, r, c, "need at least one sample row")
	}

	X := table.Slice(0, r, 0, c-1)
	y := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		y.SetVec(i, table.At(i, c-1))
	}
	return X, y, nil
}

func tableArity(op string, table *mat.Dense) (int, error) {
	r, c := table.Dims()
	if c < 2 {
		return 0, errors.NewCoefficientTableError(op, r, c, "need at least one feature column and a target column")
	}
	if r < 1 {
		return 0, errors.NewCoefficientTableError(op, r, c, "need at least one sample row")
	}
	return c - 1, nil
}
