package eqsys

import (
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/box"
	"github.com/gnolang/fixsolve/tracer"
)

// FiniteEquationSystem adds a finite unknown set and the static influence
// relation (§4.6): infl(u) over-approximates "changing ρ(u) can change
// F(ρ)(y) for y in infl(u)", and finite solvers schedule exactly along it.
type FiniteEquationSystem[U comparable, V any] interface {
	EquationSystem[U, V]
	Unknowns() []U
	Infl(u U) []U
}

type finiteSystem[U comparable, V any] struct {
	EquationSystem[U, V]
	unknowns []U
	infl     func(U) []U
}

// NewFinite attaches a finite unknown set and influence relation to an
// existing EquationSystem.
func NewFinite[U comparable, V any](eqs EquationSystem[U, V], unknowns []U, infl func(U) []U) FiniteEquationSystem[U, V] {
	return &finiteSystem[U, V]{EquationSystem: eqs, unknowns: unknowns, infl: infl}
}

func (f *finiteSystem[U, V]) Unknowns() []U { return f.unknowns }
func (f *finiteSystem[U, V]) Infl(u U) []U  { return f.infl(u) }

func (f *finiteSystem[U, V]) Boxes() box.BoxAssignment[U, V] {
	if b, ok := f.EquationSystem.(Boxed[U, V]); ok {
		return b.Boxes()
	}
	return nil
}

func (f *finiteSystem[U, V]) RebindBoxes(b box.BoxAssignment[U, V]) EquationSystem[U, V] {
	bd, ok := f.EquationSystem.(Boxed[U, V])
	if !ok {
		return f
	}
	cp := *f
	cp.EquationSystem = bd.RebindBoxes(b)
	return &cp
}

// WithBoxesFinite decorates a finite system with a BoxAssignment. When
// boxes is not idempotent, the resulting influence relation is the
// original plus the diagonal (every unknown influences itself), per §4.6:
// a non-idempotent box re-applied may change the result even with the same
// dependencies, so a dependent that only changed because its own box
// re-fired must still be scheduled.
func WithBoxesFinite[U comparable, V any](f FiniteEquationSystem[U, V], boxes box.BoxAssignment[U, V]) FiniteEquationSystem[U, V] {
	if boxes == nil || boxes.IsEmpty() {
		return f
	}
	decorated := WithBoxes[U, V](f, boxes)

	infl := f.Infl
	if !boxes.Idempotent() {
		orig := f.Infl
		infl = func(u U) []U {
			base := orig(u)
			for _, y := range base {
				if y == u {
					return base
				}
			}
			out := make([]U, len(base), len(base)+1)
			copy(out, base)
			return append(out, u)
		}
	}
	return &finiteSystem[U, V]{EquationSystem: decorated, unknowns: f.Unknowns(), infl: infl}
}

// WithBaseAssignmentFinite decorates a finite system with a base
// assignment; the unknown set and influence relation are unaffected.
func WithBaseAssignmentFinite[U comparable, V any](f FiniteEquationSystem[U, V], init assign.Partial[U, V], comb func(base, computed V) V) FiniteEquationSystem[U, V] {
	decorated := WithBaseAssignment[U, V](f, init, comb)
	return &finiteSystem[U, V]{EquationSystem: decorated, unknowns: f.Unknowns(), infl: f.Infl}
}

// WithTracerFinite decorates a finite system with an EquationSystemTracer;
// the unknown set and influence relation are unaffected. WithTracer says
// which underlying systems receive the tracer.
func WithTracerFinite[U comparable, V any](f FiniteEquationSystem[U, V], tr tracer.EquationSystemTracer[U, V]) FiniteEquationSystem[U, V] {
	decorated := WithTracer[U, V](f, tr)
	return &finiteSystem[U, V]{EquationSystem: decorated, unknowns: f.Unknowns(), infl: f.Infl}
}
