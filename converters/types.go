// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
)

// Sentinel errors for converters.
var (
	// ErrNilGraph is returned when a nil mapper.Graph is converted.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrMalformedSimplex is returned for a 1-simplex that does not join
	// two distinct clusters.
	ErrMalformedSimplex = errors.New("converters: malformed 1-simplex")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("converters: invalid option supplied")
)

// MembershipKey is the default node attribute holding cluster members.
const MembershipKey = "membership"

// Option configures an export.
type Option func(*Options)

// Options holds export parameters.
type Options struct {
	// OverlapWeights makes ToCore build a weighted graph whose edge weight
	// is the number of shared samples. ToGonum always weights edges.
	OverlapWeights bool

	// MembershipKey is the vertex Metadata key for ToCore.
	// Default "membership".
	MembershipKey string

	err error
}

// DefaultOptions returns unweighted export with the "membership" key.
func DefaultOptions() Options {
	return Options{MembershipKey: MembershipKey}
}

// WithOverlapWeights weights core edges by overlap size.
func WithOverlapWeights() Option {
	return func(o *Options) { o.OverlapWeights = true }
}

// WithMembershipKey stores membership under key instead of "membership".
// An empty key is an ErrOptionViolation.
func WithMembershipKey(key string) Option {
	return func(o *Options) {
		if key == "" {
			o.err = fmt.Errorf("%w: MembershipKey cannot be empty", ErrOptionViolation)
			return
		}
		o.MembershipKey = key
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
