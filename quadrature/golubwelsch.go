package quadrature

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/quadgo/pkg/errors"
)

// computeRule builds the k-point normalized Gauss-Hermite rule with the
// Golub-Welsch algorithm: the abscissae are the eigenvalues of the
// symmetric tridiagonal Jacobi matrix of the Hermite recurrence, and
// each weight is the squared first component of the corresponding
// normalized eigenvector.
//
// The caller guarantees k >= 1.
func computeRule(k int) (*Rule, error) {
	// Jacobi matrix for the probabilists' Hermite polynomials: zero
	// diagonal, off-diagonal entries sqrt(1), sqrt(2), ..., sqrt(k-1).
	jacobi := mat.NewSymDense(k, nil)
	for i := 0; i < k-1; i++ {
		jacobi.SetSym(i, i+1, math.Sqrt(float64(i+1)))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(jacobi, true); !ok {
		// Textbook well-conditioned matrix; treated as fatal per the
		// error model, never retried.
		return nil, errors.Wrapf(
			errors.NewNumericalInstabilityError("hermite eigendecomposition", nil, k),
			"quadrature: eigendecomposition failed to converge for order %d", k)
	}

	abscissae := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	weights := make([]float64, k)
	for j := 0; j < k; j++ {
		v := vectors.At(0, j)
		weights[j] = v * v
	}

	if err := errors.CheckNumericalStability("computeRule", abscissae, k); err != nil {
		return nil, err
	}
	if err := errors.CheckNumericalStability("computeRule", weights, k); err != nil {
		return nil, err
	}

	sortPaired(abscissae, weights)
	symmetrize(abscissae, weights)

	return &Rule{order: k, abscissae: abscissae, weights: weights}, nil
}

// sortPaired sorts the abscissae ascending, carrying the weights along.
// EigenSym already returns eigenvalues in ascending order; the sort is
// kept so the symmetry step never depends on that behavior.
func sortPaired(abscissae, weights []float64) {
	sort.Sort(&pairedByAbscissa{abscissae, weights})
}

type pairedByAbscissa struct {
	x []float64
	w []float64
}

func (p *pairedByAbscissa) Len() int           { return len(p.x) }
func (p *pairedByAbscissa) Less(i, j int) bool { return p.x[i] < p.x[j] }
func (p *pairedByAbscissa) Swap(i, j int) {
	p.x[i], p.x[j] = p.x[j], p.x[i]
	p.w[i], p.w[j] = p.w[j], p.w[i]
}

// symmetrize forces the exact mirror symmetry the eigensolver only
// delivers approximately: each abscissa pair is replaced by the signed
// average of its magnitudes, each weight pair by its mean, and the
// middle abscissa of an odd-order rule is pinned to exactly zero.
func symmetrize(abscissae, weights []float64) {
	k := len(abscissae)
	for i := 0; i < k/2; i++ {
		j := k - 1 - i
		m := (abscissae[j] - abscissae[i]) / 2
		abscissae[i] = -m
		abscissae[j] = m

		w := (weights[i] + weights[j]) / 2
		weights[i] = w
		weights[j] = w
	}
	if k%2 == 1 {
		abscissae[k/2] = 0
	}
}
