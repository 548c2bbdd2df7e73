package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/quadgo/pkg/errors"
)

func TestExpectedValuePolynomialExactness(t *testing.T) {
	p := NewProvider()

	t.Run("SquareUnderShiftedNormal", func(t *testing.T) {
		// E[X^2] = mean^2 + stddev^2 = 13 for Normal(2, 3^2); x^2 has
		// degree 2 <= 2*3-1, so the 3-point rule is exact.
		rule := p.MustRule(3)
		ev := ExpectedValue(rule, func(x float64) float64 { return x * x }, 2, 3)
		assert.InDelta(t, 13.0, ev, 1e-9)
	})

	t.Run("ConstantAndLinear", func(t *testing.T) {
		rule := p.MustRule(1)
		assert.InDelta(t, 42.0, ExpectedValue(rule, func(x float64) float64 { return 42 }, -3, 5), 1e-12)
		assert.InDelta(t, -3.0, ExpectedValue(rule, func(x float64) float64 { return x }, -3, 5), 1e-12)
	})

	t.Run("DegreeFivePolynomial", func(t *testing.T) {
		// For Z ~ Normal(0,1): E[Z^4] = 3, and a degree-4 integrand is
		// exact from k=3 onward (2k-1 >= 4).
		rule := p.MustRule(3)
		ev := ExpectedValue(rule, func(x float64) float64 { return x * x * x * x }, 0, 1)
		assert.InDelta(t, 3.0, ev, 1e-9)
	})
}

func TestExpectedValueAgainstDistuv(t *testing.T) {
	// Cross-check quadrature moments against the closed forms exposed
	// by gonum's distuv.Normal.
	p := NewProvider()
	rule := p.MustRule(9)

	dists := []distuv.Normal{
		{Mu: 0, Sigma: 1},
		{Mu: 2, Sigma: 3},
		{Mu: -1.5, Sigma: 0.25},
	}

	for _, d := range dists {
		mean := ExpectedValue(rule, func(x float64) float64 { return x }, d.Mu, d.Sigma)
		assert.InDelta(t, d.Mean(), mean, 1e-9, "mean for Mu=%v Sigma=%v", d.Mu, d.Sigma)

		second := ExpectedValue(rule, func(x float64) float64 { return x * x }, d.Mu, d.Sigma)
		assert.InDelta(t, d.Variance()+d.Mean()*d.Mean(), second, 1e-9,
			"second moment for Mu=%v Sigma=%v", d.Mu, d.Sigma)
	}
}

func TestExpectedValueMonotoneImprovement(t *testing.T) {
	// For the non-polynomial integrand exp(x) under Normal(0,1) the
	// truth is exp(1/2); approximation error must not increase with
	// the order.
	p := NewProvider()
	truth := math.Exp(0.5)

	prevErr := math.Inf(1)
	for k := 1; k <= 20; k++ {
		rule := p.MustRule(k)
		ev := ExpectedValue(rule, math.Exp, 0, 1)
		absErr := math.Abs(ev - truth)

		// Allow for floating-point noise once the error reaches the
		// rounding floor.
		assert.LessOrEqual(t, absErr, prevErr+1e-14,
			"error increased from order %d to %d", k-1, k)
		prevErr = absErr
	}

	assert.Less(t, prevErr, 1e-12, "20-point rule should be essentially exact for exp(x)")
}

func TestSafeExpectedValue(t *testing.T) {
	p := NewProvider()
	rule := p.MustRule(3)

	t.Run("NormalOperation", func(t *testing.T) {
		ev, err := SafeExpectedValue(rule, func(x float64) float64 { return x * x }, 2, 3)
		require.NoError(t, err)
		assert.InDelta(t, 13.0, ev, 1e-9)
	})

	t.Run("PanickingIntegrand", func(t *testing.T) {
		_, err := SafeExpectedValue(rule, func(x float64) float64 {
			panic("integrand blew up")
		}, 0, 1)
		require.Error(t, err)

		var perr *errors.PanicError
		assert.True(t, errors.As(err, &perr), "expected a PanicError, got %v", err)
	})
}

func TestExpectedValues(t *testing.T) {
	p := NewProvider()
	rule := p.MustRule(7)
	square := func(x float64) float64 { return x * x }

	t.Run("MatchesSerialEvaluation", func(t *testing.T) {
		// Large enough to cross the parallel cutoff.
		n := 2 * parallelCutoff
		means := make([]float64, n)
		stddevs := make([]float64, n)
		for j := range means {
			means[j] = float64(j%17) - 8
			stddevs[j] = 0.5 + float64(j%5)
		}

		got, err := ExpectedValues(rule, square, means, stddevs)
		require.NoError(t, err)
		require.Len(t, got, n)

		for j := range means {
			want := ExpectedValue(rule, square, means[j], stddevs[j])
			assert.Equal(t, want, got[j], "batch entry %d diverged from serial evaluation", j)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := ExpectedValues(rule, square, []float64{0, 1}, []float64{1})
		require.Error(t, err)

		var derr *errors.DimensionError
		assert.True(t, errors.As(err, &derr))
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		_, err := ExpectedValues(rule, square, nil, nil)
		require.Error(t, err)
	})
}

func TestMoment(t *testing.T) {
	p := NewProvider()
	rule := p.MustRule(9)

	t.Run("StandardNormalMoments", func(t *testing.T) {
		// Raw moments of Normal(0,1): 1, 0, 1, 0, 3, 0, 15.
		want := []float64{1, 0, 1, 0, 3, 0, 15}
		for order, expected := range want {
			got, err := Moment(rule, order, 0, 1)
			require.NoError(t, err)
			assert.InDelta(t, expected, got, 1e-8, "moment of order %d", order)
		}
	})

	t.Run("ShiftedSecondMoment", func(t *testing.T) {
		got, err := Moment(rule, 2, 2, 3)
		require.NoError(t, err)
		assert.InDelta(t, 13.0, got, 1e-8)
	})

	t.Run("NegativeOrder", func(t *testing.T) {
		_, err := Moment(rule, -1, 0, 1)
		require.Error(t, err)

		var verr *errors.ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}

func TestNormalExpectation(t *testing.T) {
	p := NewProvider()

	ev, err := p.NormalExpectation(3, func(x float64) float64 { return x * x }, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 13.0, ev, 1e-9)

	_, err = p.NormalExpectation(0, math.Exp, 0, 1)
	require.Error(t, err)
}

func BenchmarkExpectedValue(b *testing.B) {
	rule := NewProvider().MustRule(15)
	f := func(x float64) float64 { return math.Exp(-x * x / 4) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ExpectedValue(rule, f, 0.5, 1.5)
	}
}

func BenchmarkExpectedValuesBatch(b *testing.B) {
	rule := NewProvider().MustRule(15)
	f := func(x float64) float64 { return math.Exp(-x * x / 4) }

	n := 4 * parallelCutoff
	means := make([]float64, n)
	stddevs := make([]float64, n)
	for j := range means {
		means[j] = float64(j % 11)
		stddevs[j] = 1 + float64(j%3)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ExpectedValues(rule, f, means, stddevs); err != nil {
			b.Fatal(err)
		}
	}
}
