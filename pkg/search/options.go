package search

// DefaultMinLength is the exclusive lower bound on the length of a visited word.
const DefaultMinLength = 3

// Options configures an Engine.
//
// MinLength:     successors must be strictly longer than this.
// MaxExpansions: stop after this many expanded nodes; 0 means unbounded.
type Options struct {
	MinLength     int
	MaxExpansions int
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the unbounded search with the standard length floor.
func DefaultOptions() Options {
	return Options{
		MinLength:     DefaultMinLength,
		MaxExpansions: 0,
	}
}

// WithMinLength sets the exclusive length floor for successor words.
func WithMinLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MinLength = n
	}
}

// WithMaxExpansions caps how many frontier nodes a query may expand.
// A query that hits the cap returns ErrExpansionLimit.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxExpansions = n
	}
}
