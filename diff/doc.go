// Package diff provides differentiable objective functions with closed-form
// gradients, for use as building blocks in gradient-based optimization.
//
// Every variant satisfies the Function contract: it reports its expected
// input length (Arity), evaluates at a parameter vector (Apply), and
// produces its analytic gradient (Gradient). Batch forms that map the same
// operations over the rows of a matrix are provided as package functions
// (ApplyBatch, GradientBatch); a variant may specialize them by
// implementing BatchApplier or BatchGradienter.
//
// Variants are immutable value objects constructed either directly
// (NewLinear, NewLinearRegression, ...) or through a Builder, a pure
// function from a coefficient table to a function instance. Builders
// compose with PairBuilders; instances compose additively with SumCombine.
//
// All computation here is pure and log-free. Numeric edge cases propagate:
// in particular the logistic-regression cost takes an unguarded logarithm,
// so a saturated sigmoid yields Inf or NaN in the result rather than an
// error. Use pkg/errors.CheckScalar and friends to detect that after the
// fact.
package diff
