package quadrature

import (
	"math"

	"github.com/YuminosukeSato/quadgo/pkg/errors"
)

// Rule holds the abscissae and weights of a k-point normalized
// Gauss-Hermite quadrature rule. The weight function is the standard
// normal density, so the weights sum to one and can be interpreted as
// probabilities.
//
// A Rule is immutable after construction; accessors return copies so a
// cached rule can be shared freely between goroutines.
type Rule struct {
	order     int
	abscissae []float64
	weights   []float64
}

// Order returns the number of quadrature points k.
func (r *Rule) Order() int {
	return r.order
}

// Abscissae returns a copy of the evaluation points, sorted ascending
// and exactly symmetric about zero.
func (r *Rule) Abscissae() []float64 {
	out := make([]float64, len(r.abscissae))
	copy(out, r.abscissae)
	return out
}

// Weights returns a copy of the quadrature weights, index-aligned with
// Abscissae. The weights are non-negative and sum to one.
func (r *Rule) Weights() []float64 {
	out := make([]float64, len(r.weights))
	copy(out, r.weights)
	return out
}

// At returns the i-th abscissa/weight pair. It panics if i is out of
// range, matching slice indexing semantics.
func (r *Rule) At(i int) (abscissa, weight float64) {
	return r.abscissae[i], r.weights[i]
}

// ClassicalAbscissae returns the abscissae of the classical
// (physicists') Gauss-Hermite rule of the same order, related to the
// normalized abscissae by x_classical = x / sqrt(2).
func (r *Rule) ClassicalAbscissae() []float64 {
	out := make([]float64, len(r.abscissae))
	for i, x := range r.abscissae {
		out[i] = x / math.Sqrt2
	}
	return out
}

// ClassicalWeights returns the weights of the classical (physicists')
// Gauss-Hermite rule of the same order, related to the normalized
// weights by w_classical = w * sqrt(pi).
func (r *Rule) ClassicalWeights() []float64 {
	sqrtPi := math.Sqrt(math.Pi)
	out := make([]float64, len(r.weights))
	for i, w := range r.weights {
		out[i] = w * sqrtPi
	}
	return out
}

// Validate checks the structural invariants of the rule: matching
// lengths, ascending abscissae with exact mirror symmetry, exactly
// paired non-negative weights summing to one, and an exactly zero
// middle abscissa for odd orders.
//
// Rules produced by a Provider always satisfy these invariants; Validate
// exists for tests and for callers constructing rules by other means.
func (r *Rule) Validate() error {
	k := r.order
	if k < 1 {
		return errors.NewValidationError("order", "must be a positive integer", k)
	}
	if len(r.abscissae) != k {
		return errors.NewDimensionError("Rule.Validate", k, len(r.abscissae), 0)
	}
	if len(r.weights) != k {
		return errors.NewDimensionError("Rule.Validate", k, len(r.weights), 0)
	}

	var sum float64
	for i := 0; i < k; i++ {
		j := k - 1 - i
		if r.abscissae[i] != -r.abscissae[j] {
			return errors.Newf("quadrature: abscissae not symmetric at index %d: %g != -%g",
				i, r.abscissae[i], r.abscissae[j])
		}
		if r.weights[i] != r.weights[j] {
			return errors.Newf("quadrature: weights not symmetric at index %d: %g != %g",
				i, r.weights[i], r.weights[j])
		}
		if i > 0 && r.abscissae[i] <= r.abscissae[i-1] {
			return errors.Newf("quadrature: abscissae not strictly ascending at index %d", i)
		}
		if r.weights[i] < 0 {
			return errors.Newf("quadrature: negative weight %g at index %d", r.weights[i], i)
		}
		sum += r.weights[i]
	}

	if k%2 == 1 && r.abscissae[k/2] != 0 {
		return errors.Newf("quadrature: middle abscissa of odd-order rule is %g, want exactly 0",
			r.abscissae[k/2])
	}
	if math.Abs(sum-1) > weightSumTol {
		return errors.Newf("quadrature: weights sum to %g, want 1 within %g", sum, weightSumTol)
	}
	return errors.CheckNumericalStability("Rule.Validate", append(r.Abscissae(), r.weights...), 0)
}

// weightSumTol bounds the acceptable floating-point drift of the weight
// sum away from 1.
const weightSumTol = 1e-12
