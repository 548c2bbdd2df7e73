package quadrature

import (
	"math"

	"github.com/YuminosukeSato/quadgo/core/parallel"
	"github.com/YuminosukeSato/quadgo/pkg/errors"
)

// ExpectedValue computes the quadrature approximation to E[f(X)] for
// X ~ Normal(mean, stddev^2):
//
//	Σ w[i] * f(mean + stddev*x[i])
//
// The result is exact when f is a polynomial of degree at most 2k-1 for
// a k-point rule; otherwise accuracy degrades as f deviates from
// polynomial behavior, and the caller is responsible for choosing the
// order. The function is pure; a panic in f propagates to the caller.
func ExpectedValue(r *Rule, f func(float64) float64, mean, stddev float64) float64 {
	var sum float64
	for i, x := range r.abscissae {
		sum += r.weights[i] * f(mean+stddev*x)
	}
	return sum
}

// SafeExpectedValue is ExpectedValue with panic recovery: a panic in f
// is converted into a PanicError instead of unwinding the caller.
func SafeExpectedValue(r *Rule, f func(float64) float64, mean, stddev float64) (ev float64, err error) {
	defer errors.Recover(&err, "quadrature.SafeExpectedValue")
	return ExpectedValue(r, f, mean, stddev), nil
}

// parallelCutoff is the batch size above which ExpectedValues fans out
// across CPU cores. Below it the per-goroutine overhead dominates the k
// multiply-adds per entry.
const parallelCutoff = 512

// ExpectedValues evaluates E[f(X_j)] for a batch of normal
// distributions, X_j ~ Normal(means[j], stddevs[j]^2), returning one
// expectation per entry. This matches the access pattern of a
// mixed-model deviance evaluation, which needs one expectation per
// grouping level with level-specific conditional-mode locations and
// scales.
//
// means and stddevs must have equal length; a mismatch fails with a
// DimensionError. Large batches are evaluated in parallel; f must be
// safe for concurrent calls.
func ExpectedValues(r *Rule, f func(float64) float64, means, stddevs []float64) ([]float64, error) {
	if len(means) != len(stddevs) {
		return nil, errors.NewDimensionError("ExpectedValues", len(means), len(stddevs), 0)
	}
	if len(means) == 0 {
		return nil, errors.NewValueError("ExpectedValues", "empty batch")
	}

	out := make([]float64, len(means))
	parallel.ParallelizeWithThreshold(len(means), parallelCutoff, func(start, end int) {
		for j := start; j < end; j++ {
			out[j] = ExpectedValue(r, f, means[j], stddevs[j])
		}
	})
	return out, nil
}

// Moment computes the p-th raw moment E[X^p] of X ~ Normal(mean,
// stddev^2) by quadrature. The result is exact for p <= 2k-1.
//
// p < 0 fails with a ValidationError.
func Moment(r *Rule, p int, mean, stddev float64) (float64, error) {
	if p < 0 {
		return 0, errors.NewValidationError("p", "moment order must be non-negative", p)
	}
	return ExpectedValue(r, func(x float64) float64 {
		return math.Pow(x, float64(p))
	}, mean, stddev), nil
}
