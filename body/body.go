// Package body implements the right-hand side of an equation system: Body
// (a pure function of an assignment snapshot) and BodyWithDependencies (a
// variant that also reports which unknowns were consulted), plus the
// non-destructive decorators that attach a base assignment or a box
// assignment to a Body.
package body

import (
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/box"
)

// Body is ρ ↦ (u ↦ v): a pure function on an assignment snapshot returning
// a per-unknown evaluator. The outer call should do no work; all work
// happens when the inner function is applied to a specific unknown, so
// evaluating Body(ρ) is cheap even before any unknown is queried.
type Body[U comparable, V any] func(rho assign.ReadOnly[U, V]) func(u U) V

// Apply is shorthand for b(rho)(u).
func (b Body[U, V]) Apply(rho assign.ReadOnly[U, V], u U) V {
	return b(rho)(u)
}

// From wraps an arbitrary pure function as a Body.
func From[U comparable, V any](f func(rho assign.ReadOnly[U, V], u U) V) Body[U, V] {
	return func(rho assign.ReadOnly[U, V]) func(U) V {
		return func(u U) V { return f(rho, u) }
	}
}

// Identity returns the body that leaves the input assignment unchanged:
// Identity(ρ)(u) = ρ(u). Go has no way to compare function values, and
// distinct generic instantiations of Identity are distinct types, so unlike
// the source library's literal singleton, two Body values built by Identity
// cannot be recognized as "the same special body" after the fact — only
// constructed and used directly.
func Identity[U comparable, V any]() Body[U, V] {
	return func(rho assign.ReadOnly[U, V]) func(U) V {
		return func(u U) V { return rho.Get(u) }
	}
}

// WithBaseAssignment returns F'(ρ)(x) = comb(init(x), F(ρ)(x)) when init is
// defined at x, else F(ρ)(x).
func (b Body[U, V]) WithBaseAssignment(init assign.Partial[U, V], comb func(base, computed V) V) Body[U, V] {
	return func(rho assign.ReadOnly[U, V]) func(U) V {
		inner := b(rho)
		return func(u U) V {
			computed := inner(u)
			if init.IsDefinedAt(u) {
				return comb(init.Get(u), computed)
			}
			return computed
		}
	}
}

// WithBoxAssignment returns F'(ρ)(x) = B(x)(ρ(x), F(ρ)(x)) when B is
// defined at x, else F(ρ)(x). Decorating with an empty BoxAssignment is the
// identity, per §4.3.
func (b Body[U, V]) WithBoxAssignment(boxes box.BoxAssignment[U, V]) Body[U, V] {
	if boxes == nil || boxes.IsEmpty() {
		return b
	}
	return func(rho assign.ReadOnly[U, V]) func(U) V {
		inner := b(rho)
		return func(u U) V {
			computed := inner(u)
			if bx, ok := boxes.Get(u); ok {
				return bx(rho.Get(u), computed)
			}
			return computed
		}
	}
}
