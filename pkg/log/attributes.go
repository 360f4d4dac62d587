// Package log defines standard attribute keys for objective-function
// operations.
//
// Using these keys keeps log output consistent across examples and across
// optimizers built on top of gradfn, so batch sizes and arity mismatches
// can be filtered and analyzed uniformly.

package log

// Function and operation context.
const (
	// FunctionKindKey identifies the objective variant.
	// Examples: "Linear", "Polynomial", "LogisticRegression", "L2"
	FunctionKindKey = "fn.kind"

	// OperationKey specifies the operation being performed.
	// Standard values: "apply", "gradient", "apply_batch", "gradient_batch"
	OperationKey = "fn.operation"

	// ArityKey is the expected input-vector length of the function,
	// or -1 when the function accepts any length.
	ArityKey = "fn.arity"
)

// Data shape.
const (
	// RowsKey indicates the number of rows in a batch or coefficient table.
	RowsKey = "data.rows"

	// ColsKey indicates the number of columns in a batch or coefficient table.
	ColsKey = "data.cols"

	// VarsLenKey is the length of the parameter vector passed to
	// Apply/Gradient.
	VarsLenKey = "data.vars_len"
)

// Performance.
const (
	// DurationKey records elapsed time of an operation in milliseconds.
	DurationKey = "perf.duration_ms"
)
