// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"

	"github.com/vireo-labs/delaunay2d/predicate"
)

// DuplicatePolicy controls what AddPointBowyer/AddPointBerg do when
// asked to insert a point coincident with an existing vertex. Spec. §9
// leaves this an open question; this module makes it policy-controlled,
// decided once per Context.
type DuplicatePolicy int

const (
	// PolicySkip makes inserting a duplicate point a silent no-op.
	PolicySkip DuplicatePolicy = iota
	// PolicyError makes inserting a duplicate point return a
	// DuplicatePoint Error.
	PolicyError
)

type config struct {
	predicates predicate.Interface
	duplicates DuplicatePolicy
}

// Option configures a Context at construction time, following the
// functional-option idiom used throughout this corpus
// (TriangulationOption/WithEps).
type Option func(*config) error

// WithPredicates overrides the default geometric predicates. pred must
// not be nil.
func WithPredicates(pred predicate.Interface) Option {
	return func(c *config) error {
		if pred == nil {
			return fmt.Errorf("WithPredicates: pred must not be nil")
		}
		c.predicates = pred
		return nil
	}
}

// WithDuplicatePolicy overrides the default duplicate-point policy
// (PolicySkip).
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(c *config) error {
		if p != PolicySkip && p != PolicyError {
			return fmt.Errorf("WithDuplicatePolicy: unknown policy %v", p)
		}
		c.duplicates = p
		return nil
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{predicates: predicate.Default{}, duplicates: PolicySkip}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}
	return c, nil
}
