// Package solver provides the fixpoint solver family (C9): a finite FIFO
// worklist solver, a priority worklist solver with restart semantics, and
// an infinite (local) worklist solver that discovers its unknown set as it
// goes. All three are single-threaded and synchronous: one I/O assignment,
// one worklist, no interior concurrency (§5).
package solver

import (
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/eqsys"
	"github.com/gnolang/fixsolve/tracer"
)

// Solve runs the finite FIFO worklist solver (§4.9.1): seed the worklist
// with every unknown, and on each dequeue recompute the body, write it if
// changed, and enqueue everything it influences. Equality is tested with
// Go's == on V; callers whose V is not comparable with == should compare
// through a Domain and accept the solver running one extra, harmless
// iteration rather than looping forever, or use a custom eq via SolveEq.
func Solve[U comparable, V comparable](
	f eqsys.FiniteEquationSystem[U, V],
	start assign.Input[U, V],
	tr tracer.FixpointSolverTracer[U, V],
) assign.Input[U, V] {
	return SolveEq[U, V](f, start, tr, func(a, b V) bool { return a == b })
}

// SolveEq is Solve with an explicit equality predicate, for V that cannot
// use ==.
func SolveEq[U comparable, V any](
	f eqsys.FiniteEquationSystem[U, V],
	start assign.Input[U, V],
	tr tracer.FixpointSolverTracer[U, V],
	eq func(a, b V) bool,
) assign.Input[U, V] {
	if tr == nil {
		tr = tracer.NullFixpointSolverTracer[U, V]{}
	}
	f = copyBoxesFinite[U, V](f)

	rho := assign.NewIO[U, V](start)
	worklist := newFIFO(f.Unknowns())

	tr.Initialized(rho)

	for !worklist.empty() {
		x := worklist.dequeue()
		next := f.Apply(rho, x)
		tr.Evaluated(rho, x, next)
		if !eq(next, rho.Get(x)) {
			rho.Set(x, next)
			worklist.enqueueAll(f.Infl(x))
		}
	}

	tr.Completed(rho)
	return rho.Snapshot()
}

// fifo is a plain slice-backed queue; duplicates are permitted (§4.9.1
// explicitly does not require worklist deduplication).
type fifo[U any] struct {
	items []U
	head  int
}

func newFIFO[U any](seed []U) *fifo[U] {
	items := make([]U, len(seed))
	copy(items, seed)
	return &fifo[U]{items: items}
}

func (q *fifo[U]) empty() bool { return q.head >= len(q.items) }

func (q *fifo[U]) dequeue() U {
	x := q.items[q.head]
	q.head++
	return x
}

func (q *fifo[U]) enqueueAll(xs []U) {
	q.items = append(q.items, xs...)
}
