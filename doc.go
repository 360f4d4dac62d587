// Package gradfn provides closed-form differentiable objective functions
// for gradient-based optimization in Go.
//
// Each function object can be evaluated at a parameter vector and can
// produce its own gradient analytically, which makes the library a drop-in
// source of objectives and penalties for any optimizer that descends along
// gradients.
//
// # Features
//
// - Closed-form gradients: no tape, no numerical differentiation
// - Uniform contract: evaluate, gradient, arity, plus batch forms
// - Composable: additive combination of objectives and penalties
// - CPU-parallel batch evaluation with automatic thresholds
// - Robust error handling with stack traces and structured logging hooks
//
// # Installation
//
// Install gradfn using go get:
//
//	go get github.com/YuminosukeSato/gradfn
//
// # Quick Start
//
// Here's a regularized linear-regression objective built from a training
// table (bias column first, target column last):
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gradfn/diff"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // rows are samples; column 0 is the bias term, the last column
//	    // is the target
//	    table := mat.NewDense(3, 3, []float64{
//	        1, 1, 3,
//	        1, 2, 5,
//	        1, 3, 7,
//	    })
//
//	    cost := diff.SumCombine(
//	        diff.NewLinearRegression(table),
//	        diff.NewL2(0.1, true),
//	    )
//
//	    w := mat.NewVecDense(2, []float64{0, 0})
//	    loss, err := cost.Apply(w)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    grad, err := cost.Gradient(w)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("loss:", loss)
//	    fmt.Println("gradient:", mat.Formatted(grad.T()))
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - diff: the differentiable function variants, builders and combinators
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: slog/zerolog logging helpers
//   - core/parallel: CPU-parallel batch helpers
package gradfn
