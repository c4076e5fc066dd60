// Package tracer defines the two observability hook interfaces the core
// fires events through (EquationSystemTracer and FixpointSolverTracer), the
// Null implementations every package defaults to, and the Enabled compile-
// time switch that lets a build strip the EquationSystemTracer call sites
// (§4.5, §4.8); FixpointSolverTracer calls in the solvers are not stripped.
//
// Concrete, non-null backends (structured logging, colored console output,
// progress bars) are library helpers, not core, and live in package
// tracerkit instead.
package tracer

import "github.com/gnolang/fixsolve/assign"

// EquationSystemTracer observes a single equation-system evaluation. Events
// fire in this order: PreEvaluation, PostEvaluation, then exactly one of
// BoxEvaluation or NoBoxEvaluation.
type EquationSystemTracer[U comparable, V any] interface {
	PreEvaluation(rho assign.ReadOnly[U, V], u U)
	PostEvaluation(rho assign.ReadOnly[U, V], u U, raw V)
	BoxEvaluation(rho assign.ReadOnly[U, V], u U, raw, boxed V)
	NoBoxEvaluation(rho assign.ReadOnly[U, V], u U, raw V)
}

// FixpointSolverTracer observes a solver run. Initialized fires exactly
// once before any evaluation, Evaluated exactly once per dequeue, and
// Completed exactly once when the worklist drains.
type FixpointSolverTracer[U comparable, V any] interface {
	Initialized(rho assign.ReadOnly[U, V])
	Evaluated(rho assign.ReadOnly[U, V], u U, v V)
	Completed(rho assign.ReadOnly[U, V])
}

// NullEquationSystemTracer discards every event.
type NullEquationSystemTracer[U comparable, V any] struct{}

func (NullEquationSystemTracer[U, V]) PreEvaluation(assign.ReadOnly[U, V], U)       {}
func (NullEquationSystemTracer[U, V]) PostEvaluation(assign.ReadOnly[U, V], U, V)   {}
func (NullEquationSystemTracer[U, V]) BoxEvaluation(assign.ReadOnly[U, V], U, V, V) {}
func (NullEquationSystemTracer[U, V]) NoBoxEvaluation(assign.ReadOnly[U, V], U, V)  {}

// NullFixpointSolverTracer discards every event.
type NullFixpointSolverTracer[U comparable, V any] struct{}

func (NullFixpointSolverTracer[U, V]) Initialized(assign.ReadOnly[U, V])     {}
func (NullFixpointSolverTracer[U, V]) Evaluated(assign.ReadOnly[U, V], U, V) {}
func (NullFixpointSolverTracer[U, V]) Completed(assign.ReadOnly[U, V])       {}
