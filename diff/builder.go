package diff

import (
	"gonum.org/v1/gonum/mat"
)

// Builder is a pure function from a coefficient table to one function
// instance. Builders perform no I/O and no validation beyond what the
// variant constructor itself enforces; in particular the regression
// builders accept any table and let validation surface on first use.
type Builder func(table mat.Matrix) Function

// ZeroBuilder ignores the table and produces the constant 0 function.
func ZeroBuilder(_ mat.Matrix) Function {
	return NewZero()
}

// LinearBuilder reads the first row of the table as the coefficient
// vector.
func LinearBuilder(table mat.Matrix) Function {
	_, c := table.Dims()
	coef := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		coef.SetVec(j, table.At(0, j))
	}
	return NewLinear(coef)
}

// PolynomialBuilder reads the whole table as the coefficient matrix, rows
// indexed by exponent.
func PolynomialBuilder(table mat.Matrix) Function {
	return NewPolynomial(table)
}

// LinearRegressionBuilder reads the table as a training set with the
// target in the last column.
func LinearRegressionBuilder(table mat.Matrix) Function {
	return NewLinearRegression(table)
}

// LogisticRegressionBuilder reads the table as a training set with the
// target in the last column.
func LogisticRegressionBuilder(table mat.Matrix) Function {
	return NewLogisticRegression(table)
}

// L1Builder produces a builder for the L1 penalty with the given options.
// The coefficient table is ignored.
func L1Builder(opts ...RegularizerOption) Builder {
	return func(_ mat.Matrix) Function {
		return NewL1(opts...)
	}
}

// L2Builder produces a builder for the L2 penalty with the given options.
// The coefficient table is ignored.
func L2Builder(opts ...RegularizerOption) Builder {
	return func(_ mat.Matrix) Function {
		return NewL2(opts...)
	}
}

// SigmoidBuilder ignores the table and produces the logistic nonlinearity.
func SigmoidBuilder(_ mat.Matrix) Function {
	return NewSigmoid()
}

// Pair holds the two instances produced by a paired builder.
type Pair struct {
	First  Function
	Second Function
}

// PairBuilders joins two builders into one that applies both to the same
// coefficient table independently, returning both instances untouched.
func PairBuilders(b1, b2 Builder) func(table mat.Matrix) Pair {
	return func(table mat.Matrix) Pair {
		return Pair{First: b1(table), Second: b2(table)}
	}
}
