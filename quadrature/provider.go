// Package quadrature computes normalized Gauss-Hermite quadrature rules
// and evaluates Gaussian expectations with them.
//
// The normalized rule uses the standard normal density as weight
// function: for X ~ Normal(mean, stddev^2),
//
//	E[f(X)] ≈ Σ w[i] * f(mean + stddev*x[i])
//
// and the approximation is exact whenever f is a polynomial of degree at
// most 2k-1. Rules are produced by a Provider, which computes each order
// once with the Golub-Welsch algorithm and caches the result for the
// life of the process.
package quadrature

import (
	"sync"
	"time"

	"github.com/YuminosukeSato/quadgo/pkg/errors"
	"github.com/YuminosukeSato/quadgo/pkg/log"
)

// DefaultMaxOrder is the largest order a Provider accepts unless
// configured otherwise. Orders used in practice are small (mixed-model
// fitting typically uses 1-25 points), so the bound mostly guards
// against accidental huge requests; the eigendecomposition is O(k^3).
const DefaultMaxOrder = 100

// Provider computes and caches normalized Gauss-Hermite rules keyed by
// order. The zero value is not usable; construct with NewProvider.
//
// A Provider is safe for concurrent use: at most one computation runs
// per order, concurrent requesters for that order all observe the same
// completed rule, and completed entries are immutable.
type Provider struct {
	mu       sync.RWMutex
	rules    map[int]*cacheEntry
	maxOrder int
	logger   log.Logger
}

// cacheEntry is the single-writer-per-key slot for one order. The once
// guards the computation; rule and err are written exactly once before
// any reader observes them.
type cacheEntry struct {
	once sync.Once
	rule *Rule
	err  error
}

// NewProvider creates a Provider with an empty cache. Options configure
// the order bound and logging; the defaults are DefaultMaxOrder and no
// logging.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		rules:    make(map[int]*cacheEntry),
		maxOrder: DefaultMaxOrder,
		logger:   log.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rule returns the k-point normalized Gauss-Hermite rule, computing and
// caching it on first request. Repeated calls with the same k return
// the identical *Rule.
//
// k < 1 or k above the configured maximum fails with a ValidationError.
func (p *Provider) Rule(k int) (*Rule, error) {
	if k < 1 {
		return nil, errors.NewValidationError("k", "quadrature order must be a positive integer", k)
	}
	if k > p.maxOrder {
		return nil, errors.NewValidationError("k", "quadrature order exceeds provider maximum", k)
	}

	e := p.entry(k)
	e.once.Do(func() {
		start := time.Now()
		e.rule, e.err = computeRule(k)
		if e.err != nil {
			p.logger.Error("quadrature rule computation failed",
				e.err,
				log.OrderKey, k,
				log.OperationKey, log.OperationRule,
			)
			return
		}
		p.logger.Debug("computed quadrature rule",
			log.OrderKey, k,
			log.OperationKey, log.OperationRule,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	})
	return e.rule, e.err
}

// MustRule is like Rule but panics on error. It is intended for
// package-level initialization with a known-good order.
func (p *Provider) MustRule(k int) *Rule {
	rule, err := p.Rule(k)
	if err != nil {
		panic(err)
	}
	return rule
}

// NormalExpectation fetches the k-point rule and evaluates E[f(X)] for
// X ~ Normal(mean, stddev^2). It is shorthand for Rule followed by
// ExpectedValue.
func (p *Provider) NormalExpectation(k int, f func(float64) float64, mean, stddev float64) (float64, error) {
	rule, err := p.Rule(k)
	if err != nil {
		return 0, err
	}
	return ExpectedValue(rule, f, mean, stddev), nil
}

// entry returns the cache slot for order k, creating it if necessary.
// The read path takes only the shared lock, so lookups of completed
// entries never contend with first-time computation of other orders.
func (p *Provider) entry(k int) *cacheEntry {
	p.mu.RLock()
	e, ok := p.rules[k]
	p.mu.RUnlock()
	if ok {
		return e
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok = p.rules[k]; ok {
		return e
	}
	e = &cacheEntry{}
	p.rules[k] = e
	return e
}

var (
	defaultProvider     *Provider
	defaultProviderOnce sync.Once
)

// Default returns a process-wide shared Provider, created lazily on
// first use with default options. Applications that want isolation
// (tests in particular) should construct their own Provider instead.
func Default() *Provider {
	defaultProviderOnce.Do(func() {
		defaultProvider = NewProvider()
	})
	return defaultProvider
}
