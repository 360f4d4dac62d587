package diff

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestL1Apply(t *testing.T) {
	tests := []struct {
		name string
		opts []RegularizerOption
		vars *mat.VecDense
		want float64
	}{
		{
			name: "default lambda",
			vars: mat.NewVecDense(3, []float64{-1, 0, 3}),
			want: 2.0, // (1/2)·(1+0+3)
		},
		{
			name: "lambda two",
			opts: []RegularizerOption{WithLambda(2.0)},
			vars: mat.NewVecDense(3, []float64{-1, 0, 3}),
			want: 4.0,
		},
		{
			name: "ignore first",
			opts: []RegularizerOption{WithLambda(2.0), WithIgnoreFirst(true)},
			vars: mat.NewVecDense(3, []float64{-100, 0, 3}),
			want: 3.0, // first coordinate excluded
		},
		{
			name: "ignore first on single coordinate",
			opts: []RegularizerOption{WithIgnoreFirst(true)},
			vars: mat.NewVecDense(1, []float64{42}),
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewL1(tt.opts...).Apply(tt.vars)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestL1Gradient(t *testing.T) {
	tests := []struct {
		name string
		opts []RegularizerOption
		vars *mat.VecDense
		want *mat.VecDense
	}{
		{
			name: "sign per coordinate",
			opts: []RegularizerOption{WithLambda(2.0)},
			vars: mat.NewVecDense(3, []float64{-1, 0, 3}),
			want: mat.NewVecDense(3, []float64{-2, 0, 2}),
		},
		{
			name: "ignore first zeroes coordinate 0",
			opts: []RegularizerOption{WithLambda(2.0), WithIgnoreFirst(true)},
			vars: mat.NewVecDense(3, []float64{-1, 0, 3}),
			want: mat.NewVecDense(3, []float64{0, 0, 2}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewL1(tt.opts...).Gradient(tt.vars)
			if err != nil {
				t.Fatalf("Gradient() error = %v", err)
			}
			if got.Len() != tt.vars.Len() {
				t.Fatalf("Gradient() length = %d, want %d", got.Len(), tt.vars.Len())
			}
			if !mat.EqualApprox(got, tt.want, 1e-12) {
				t.Errorf("Gradient() = %v, want %v", got.RawVector().Data, tt.want.RawVector().Data)
			}
		})
	}
}

func TestL2Apply(t *testing.T) {
	tests := []struct {
		name string
		opts []RegularizerOption
		vars *mat.VecDense
		want float64
	}{
		{
			name: "default lambda",
			vars: mat.NewVecDense(3, []float64{-1, 0, 3}),
			want: 5.0, // (1/2)·(1+0+9)
		},
		{
			name: "lambda two",
			opts: []RegularizerOption{WithLambda(2.0)},
			vars: mat.NewVecDense(3, []float64{-1, 0, 3}),
			want: 10.0,
		},
		{
			name: "ignore first",
			opts: []RegularizerOption{WithLambda(2.0), WithIgnoreFirst(true)},
			vars: mat.NewVecDense(3, []float64{-100, 0, 3}),
			want: 9.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewL2(tt.opts...).Apply(tt.vars)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestL2Gradient(t *testing.T) {
	got, err := NewL2(WithLambda(2.0)).Gradient(mat.NewVecDense(3, []float64{-1, 0, 3}))
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	want := mat.NewVecDense(3, []float64{-2, 0, 6})
	if !mat.EqualApprox(got, want, 1e-12) {
		t.Errorf("Gradient() = %v, want %v", got.RawVector().Data, want.RawVector().Data)
	}
}

// The ignoreFirst law: coordinate 0 of the gradient is exactly 0 no matter
// what lambda is and no matter what vars[0] holds.
func TestIgnoreFirstLaw(t *testing.T) {
	lambdas := []float64{0.1, 1.0, 10.0}
	firsts := []float64{-1e9, -1, 0, 1, 1e9}

	for _, lambda := range lambdas {
		for _, first := range firsts {
			vars := mat.NewVecDense(3, []float64{first, 2, -3})

			g1, err := NewL1(WithLambda(lambda), WithIgnoreFirst(true)).Gradient(vars)
			if err != nil {
				t.Fatalf("L1 Gradient() error = %v", err)
			}
			if g1.AtVec(0) != 0 {
				t.Errorf("L1 gradient[0] = %v with lambda=%v vars[0]=%v, want 0", g1.AtVec(0), lambda, first)
			}

			g2, err := NewL2(WithLambda(lambda), WithIgnoreFirst(true)).Gradient(vars)
			if err != nil {
				t.Fatalf("L2 Gradient() error = %v", err)
			}
			if g2.AtVec(0) != 0 {
				t.Errorf("L2 gradient[0] = %v with lambda=%v vars[0]=%v, want 0", g2.AtVec(0), lambda, first)
			}
		}
	}
}

func TestRegularizerArityIsAny(t *testing.T) {
	for _, f := range []Function{NewL1(), NewL2()} {
		n, err := f.Arity()
		if err != nil {
			t.Fatalf("Arity() error = %v", err)
		}
		if n != ArityAny {
			t.Errorf("Arity() = %d, want ArityAny", n)
		}
	}
}
