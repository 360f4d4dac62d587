package diff

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gradfn/core/parallel"
	"github.com/YuminosukeSato/gradfn/pkg/errors"
)

// ArityAny is the arity reported by variants whose math is agnostic to the
// input length (Zero, L1, L2, Sigmoid). Such a variant accepts every vector
// length; it never infers or caches a length from the first call.
const ArityAny = -1

// Function is the contract every differentiable function variant satisfies.
//
// Arity returns the expected length of the vars vector, or ArityAny when
// any length is accepted. For variants built from a coefficient table the
// table is validated lazily, so Arity may return an error (for example a
// regression table that cannot be split into features and target).
//
// Apply evaluates the function at vars; Gradient returns the gradient with
// respect to vars, with the same length as vars. Passing a vars whose
// length disagrees with a fixed arity is a DimensionError; input is never
// padded, truncated, or broadcast.
type Function interface {
	Arity() (int, error)
	Apply(vars *mat.VecDense) (float64, error)
	Gradient(vars *mat.VecDense) (*mat.VecDense, error)
}

// BatchApplier is implemented by variants that can evaluate a whole batch
// more efficiently than a per-row map. ApplyBatch prefers it when present.
type BatchApplier interface {
	ApplyBatch(rows mat.Matrix) (*mat.VecDense, error)
}

// BatchGradienter is the gradient counterpart of BatchApplier.
type BatchGradienter interface {
	GradientBatch(rows mat.Matrix) (*mat.Dense, error)
}

// Batches smaller than this are evaluated sequentially.
const batchParallelThreshold = 256

// ApplyBatch evaluates f at each row of rows independently, preserving row
// order; the result has one entry per row. If f implements BatchApplier
// that specialization is used; otherwise Apply is mapped over the rows,
// in parallel for large batches. Each row's computation is independent, so
// parallelism is purely a performance matter.
func ApplyBatch(f Function, rows mat.Matrix) (*mat.VecDense, error) {
	if ba, ok := f.(BatchApplier); ok {
		return ba.ApplyBatch(rows)
	}

	r, c := rows.Dims()
	if r == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ApplyBatch")
	}

	out := mat.NewVecDense(r, nil)
	err := parallel.TryParallelizeWithThreshold(r, batchParallelThreshold, func(start, end int) error {
		vars := mat.NewVecDense(c, nil)
		for i := start; i < end; i++ {
			copyRow(vars, rows, i)
			v, err := f.Apply(vars)
			if err != nil {
				return err
			}
			out.SetVec(i, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GradientBatch evaluates f's gradient at each row of rows, stacking the
// results in the same row order. If f implements BatchGradienter that
// specialization is used; otherwise Gradient is mapped over the rows, in
// parallel for large batches.
func GradientBatch(f Function, rows mat.Matrix) (*mat.Dense, error) {
	if bg, ok := f.(BatchGradienter); ok {
		return bg.GradientBatch(rows)
	}

	r, c := rows.Dims()
	if r == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "GradientBatch")
	}

	out := mat.NewDense(r, c, nil)
	err := parallel.TryParallelizeWithThreshold(r, batchParallelThreshold, func(start, end int) error {
		vars := mat.NewVecDense(c, nil)
		for i := start; i < end; i++ {
			copyRow(vars, rows, i)
			grad, err := f.Gradient(vars)
			if err != nil {
				return err
			}
			for j := 0; j < c; j++ {
				out.Set(i, j, grad.AtVec(j))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func copyRow(dst *mat.VecDense, m mat.Matrix, i int) {
	_, c := m.Dims()
	for j := 0; j < c; j++ {
		dst.SetVec(j, m.At(i, j))
	}
}
