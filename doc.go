// Package quadgo provides normalized Gauss-Hermite quadrature for Go,
// designed as a numerical building block for mixed-effects model fitting
// and other Gaussian-expectation workloads.
//
// QuadGo computes the abscissae and weights of the k-point Gauss-Hermite
// rule with the standard normal density as weight function, so the weights
// sum to one and can be read as probabilities. Rules are computed once per
// order via the Golub-Welsch eigendecomposition and held in a read-through
// cache for the life of the process.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/quadgo/quadrature"
//	)
//
//	func main() {
//	    p := quadrature.NewProvider()
//	    rule, err := p.Rule(9)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // E[X^2] for X ~ Normal(2, 3^2) == 13.
//	    ev := quadrature.ExpectedValue(rule, func(x float64) float64 { return x * x }, 2, 3)
//	    fmt.Println(ev)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - quadrature: rule construction, caching, and expectation evaluation
//   - core/parallel: parallel processing utilities
//   - pkg/errors: structured error types and numerical stability checks
//   - pkg/log: structured logging interface and slog integration
//
// # Accuracy
//
// A k-point rule integrates polynomials of degree up to 2k-1 exactly
// against the normal density. For non-polynomial integrands accuracy
// improves with k; callers choose the order and no automatic adaptation
// is performed.
//
// # Concurrency
//
// A Provider is safe for concurrent use. At most one computation happens
// per order; all concurrent requesters observe the same completed rule,
// and cached entries are immutable.
//
// # License
//
// QuadGo is released under the MIT License.
package quadgo
