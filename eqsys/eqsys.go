// Package eqsys provides the generic EquationSystem abstraction (C5) and
// its finite specialization (C6): an unknown's right-hand side exposed as a
// function of an assignment, closed under a small algebra of non-destructive
// transformations (base assignment, boxes, tracer).
package eqsys

import (
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/body"
	"github.com/gnolang/fixsolve/box"
	"github.com/gnolang/fixsolve/tracer"
)

// EquationSystem exposes an unknown's right-hand side as a function of an
// assignment, and can report which unknowns were consulted computing it.
type EquationSystem[U comparable, V any] interface {
	Apply(rho assign.ReadOnly[U, V], u U) V
	ApplyWithDependencies(rho assign.ReadOnly[U, V], u U) (V, []U)
	Initial() assign.Input[U, V]
	InputUnknowns(u U) bool
}

// Boxed is implemented by equation systems carrying a (possibly nil)
// BoxAssignment; solvers use it to clone a stateful BoxAssignment before a
// run, per the copy-before-use contract in §4.3.
type Boxed[U comparable, V any] interface {
	Boxes() box.BoxAssignment[U, V]
	RebindBoxes(b box.BoxAssignment[U, V]) EquationSystem[U, V]
}

type system[U comparable, V any] struct {
	raw           body.Body[U, V]
	rawDeps       body.WithDependencies[U, V]
	initial       assign.Input[U, V]
	inputUnknowns func(U) bool
	boxes         box.BoxAssignment[U, V]
	tr            tracer.EquationSystemTracer[U, V]
}

// New builds an EquationSystem directly from a Body, an initial assignment
// and an inputUnknowns predicate. The body's dependency tracking uses the
// generic recording-proxy strategy (body.Track); graph equation systems
// override this with the cheaper, exact static strategy (package graph).
func New[U comparable, V any](b body.Body[U, V], initial assign.Input[U, V], inputUnknowns func(U) bool) EquationSystem[U, V] {
	return &system[U, V]{
		raw:           b,
		rawDeps:       b.Track(),
		initial:       initial,
		inputUnknowns: inputUnknowns,
		tr:            tracer.NullEquationSystemTracer[U, V]{},
	}
}

func (s *system[U, V]) Apply(rho assign.ReadOnly[U, V], u U) V {
	if tracer.Enabled {
		s.tr.PreEvaluation(rho, u)
	}
	raw := s.raw.Apply(rho, u)
	if tracer.Enabled {
		s.tr.PostEvaluation(rho, u, raw)
	}
	if s.boxes != nil {
		if bx, ok := s.boxes.Get(u); ok {
			boxed := bx(rho.Get(u), raw)
			if tracer.Enabled {
				s.tr.BoxEvaluation(rho, u, raw, boxed)
			}
			return boxed
		}
	}
	if tracer.Enabled {
		s.tr.NoBoxEvaluation(rho, u, raw)
	}
	return raw
}

func (s *system[U, V]) ApplyWithDependencies(rho assign.ReadOnly[U, V], u U) (V, []U) {
	if tracer.Enabled {
		s.tr.PreEvaluation(rho, u)
	}
	raw, deps := s.rawDeps.Apply(rho, u)
	if tracer.Enabled {
		s.tr.PostEvaluation(rho, u, raw)
	}
	if s.boxes != nil {
		if bx, ok := s.boxes.Get(u); ok {
			boxed := bx(rho.Get(u), raw)
			if tracer.Enabled {
				s.tr.BoxEvaluation(rho, u, raw, boxed)
			}
			return boxed, deps
		}
	}
	if tracer.Enabled {
		s.tr.NoBoxEvaluation(rho, u, raw)
	}
	return raw, deps
}

func (s *system[U, V]) Initial() assign.Input[U, V]    { return s.initial }
func (s *system[U, V]) InputUnknowns(u U) bool         { return s.inputUnknowns(u) }
func (s *system[U, V]) Boxes() box.BoxAssignment[U, V] { return s.boxes }

func (s *system[U, V]) RebindBoxes(b box.BoxAssignment[U, V]) EquationSystem[U, V] {
	cp := *s
	cp.boxes = b
	return &cp
}

// WithBaseAssignment returns a new system combining init with the body's
// result via comb, per §4.4/§4.5. The underlying raw body is rewrapped;
// dependency tracking is rederived so ApplyWithDependencies still sees the
// combined behavior.
func WithBaseAssignment[U comparable, V any](eqs EquationSystem[U, V], init assign.Partial[U, V], comb func(base, computed V) V) EquationSystem[U, V] {
	s, ok := eqs.(*system[U, V])
	if !ok {
		return wrapBaseAssignment[U, V]{EquationSystem: eqs, init: init, comb: comb}
	}
	cp := *s
	cp.raw = s.raw.WithBaseAssignment(init, comb)
	cp.rawDeps = cp.raw.Track()
	return &cp
}

// WithBoxes returns a new system applying boxes per-unknown on top of the
// raw body, per §4.3/§4.5. Decorating with an empty BoxAssignment is the
// identity (boxes field stays effectively unused since Apply checks
// IsEmpty implicitly via Get never matching, but we special-case it so
// RebindBoxes/Boxes stay honest about "no boxes").
func WithBoxes[U comparable, V any](eqs EquationSystem[U, V], boxes box.BoxAssignment[U, V]) EquationSystem[U, V] {
	if boxes == nil || boxes.IsEmpty() {
		return eqs
	}
	s, ok := eqs.(*system[U, V])
	if !ok {
		return wrapBoxes[U, V]{EquationSystem: eqs, boxes: boxes}
	}
	cp := *s
	cp.boxes = boxes
	return &cp
}

// WithTracer returns a new system that fires EquationSystemTracer events
// around every evaluation (Apply and ApplyWithDependencies). The tracer is
// attached to systems built by New, directly or under NewFinite; any other
// system (a graph system, or one decorated through wrapBoxes or
// wrapBaseAssignment) is returned unchanged, without the tracer.
func WithTracer[U comparable, V any](eqs EquationSystem[U, V], tr tracer.EquationSystemTracer[U, V]) EquationSystem[U, V] {
	if f, ok := eqs.(*finiteSystem[U, V]); ok {
		cp := *f
		cp.EquationSystem = WithTracer[U, V](f.EquationSystem, tr)
		return &cp
	}
	s, ok := eqs.(*system[U, V])
	if !ok {
		return eqs
	}
	cp := *s
	if tr == nil {
		tr = tracer.NullEquationSystemTracer[U, V]{}
	}
	cp.tr = tr
	return &cp
}

// wrapBaseAssignment/wrapBoxes decorate foreign EquationSystem
// implementations (e.g. a flattened graph.GraphEquationSystem after
// localized warrowing) that do not share the concrete system struct.
type wrapBaseAssignment[U comparable, V any] struct {
	EquationSystem[U, V]
	init assign.Partial[U, V]
	comb func(base, computed V) V
}

func (w wrapBaseAssignment[U, V]) Apply(rho assign.ReadOnly[U, V], u U) V {
	computed := w.EquationSystem.Apply(rho, u)
	if w.init.IsDefinedAt(u) {
		return w.comb(w.init.Get(u), computed)
	}
	return computed
}

func (w wrapBaseAssignment[U, V]) ApplyWithDependencies(rho assign.ReadOnly[U, V], u U) (V, []U) {
	computed, deps := w.EquationSystem.ApplyWithDependencies(rho, u)
	if w.init.IsDefinedAt(u) {
		return w.comb(w.init.Get(u), computed), deps
	}
	return computed, deps
}

type wrapBoxes[U comparable, V any] struct {
	EquationSystem[U, V]
	boxes box.BoxAssignment[U, V]
}

func (w wrapBoxes[U, V]) Apply(rho assign.ReadOnly[U, V], u U) V {
	computed := w.EquationSystem.Apply(rho, u)
	if bx, ok := w.boxes.Get(u); ok {
		return bx(rho.Get(u), computed)
	}
	return computed
}

func (w wrapBoxes[U, V]) ApplyWithDependencies(rho assign.ReadOnly[U, V], u U) (V, []U) {
	computed, deps := w.EquationSystem.ApplyWithDependencies(rho, u)
	if bx, ok := w.boxes.Get(u); ok {
		return bx(rho.Get(u), computed), deps
	}
	return computed, deps
}

func (w wrapBoxes[U, V]) Boxes() box.BoxAssignment[U, V] { return w.boxes }

func (w wrapBoxes[U, V]) RebindBoxes(b box.BoxAssignment[U, V]) EquationSystem[U, V] {
	w.boxes = b
	return w
}
