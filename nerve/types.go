// SPDX-License-Identifier: MIT

package nerve

import (
	"errors"
	"fmt"
)

// Sentinel errors for nerve construction.
var (
	// ErrOptionViolation is the configuration error: a non-positive
	// MinIntersection or a negative MaxDim. It is returned before any
	// enumeration happens.
	ErrOptionViolation = errors.New("nerve: invalid option supplied")

	// ErrNilClusters is returned when Compute receives a nil cluster map.
	ErrNilClusters = errors.New("nerve: cluster map is nil")
)

// Unbounded is the MaxDim value meaning "no dimension cap".
const Unbounded = -1

// Option configures an engine via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds the engine parameters.
type Options struct {
	// MinIntersection is the number of shared samples a group of clusters
	// needs to form a simplex. Must be ≥ 1. Default 1.
	MinIntersection int

	// MaxDim caps the dimension of generated simplices. Unbounded (-1)
	// computes the whole complex; 0 returns vertices only. Default Unbounded.
	MaxDim int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns MinIntersection 1 and an unbounded dimension.
func DefaultOptions() Options {
	return Options{
		MinIntersection: 1,
		MaxDim:          Unbounded,
	}
}

// WithMinIntersection sets the overlap threshold.
//
//	n ≥ 1: a group is a simplex iff it shares at least n samples
//	n ≤ 0: invalid option → ErrOptionViolation
func WithMinIntersection(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MinIntersection must be a positive integer (%d)", ErrOptionViolation, n)
			return
		}
		o.MinIntersection = n
	}
}

// WithMaxDim caps the dimension of the complex.
//
//	d ≥ 0: compute the d-skeleton
//	d < 0: invalid option → ErrOptionViolation (use WithUnboundedDim instead)
func WithMaxDim(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDim must be non-negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDim = d
	}
}

// WithUnboundedDim removes any dimension cap.
func WithUnboundedDim() Option {
	return func(o *Options) { o.MaxDim = Unbounded }
}

// buildOptions applies opts over the defaults and reports the first
// violation recorded.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	var firstErr error
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil && firstErr == nil {
			firstErr = o.err
		}
	}
	o.err = nil

	return o, firstErr
}

// validate re-checks the numeric fields; Options may be built by hand.
func (o Options) validate() error {
	if o.MinIntersection <= 0 {
		return fmt.Errorf("%w: MinIntersection must be a positive integer (%d)", ErrOptionViolation, o.MinIntersection)
	}
	if o.MaxDim < Unbounded {
		return fmt.Errorf("%w: MaxDim must be non-negative (%d)", ErrOptionViolation, o.MaxDim)
	}

	return nil
}

// bounded reports whether dimension d is within the cap.
func (o Options) bounded(d int) bool {
	return o.MaxDim == Unbounded || d <= o.MaxDim
}
