package reconcile

import (
	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
)

// options configures a reconciler.
type options struct {
	exclude []string
	policy  Policy
	table   catalog.PriceTable
}

func defaultOptions() *options {
	return &options{
		policy: PolicyDrop,
		table:  catalog.DefaultPriceTable(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithExclusions sets the keyword patterns filtered out of the official
// catalog before joining. Patterns are matched case-insensitively as
// substrings of the skin name. The list is deployment configuration, not
// domain truth; an empty list disables the filter.
func WithExclusions(patterns []string) Option {
	return func(o *options) error {
		o.exclude = patterns
		return nil
	}
}

// WithPolicy sets the unmatched-record policy.
func WithPolicy(policy Policy) Option {
	return func(o *options) error {
		if !policy.Valid() {
			return &errors.ValidationError{
				Field:   "policy",
				Value:   string(policy),
				Message: "must be drop or fallback",
			}
		}
		o.policy = policy
		return nil
	}
}

// WithPriceTable sets the tier price table.
func WithPriceTable(table catalog.PriceTable) Option {
	return func(o *options) error {
		if err := table.Validate(); err != nil {
			return err
		}
		o.table = table
		return nil
	}
}
