package quadrature

import "github.com/YuminosukeSato/quadgo/pkg/log"

// Option is a function that configures a Provider.
type Option func(*Provider)

// WithMaxOrder sets the largest order the provider will compute.
// Values below 1 are ignored.
func WithMaxOrder(max int) Option {
	return func(p *Provider) {
		if max >= 1 {
			p.maxOrder = max
		}
	}
}

// WithLogger sets the logger used for rule-computation events.
func WithLogger(logger log.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}
