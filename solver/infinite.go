package solver

import (
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/eqsys"
	"github.com/gnolang/fixsolve/internal/ordered"
	"github.com/gnolang/fixsolve/tracer"
)

// SolveLocal runs the infinite (local) worklist solver (§4.9.3): the
// unknown set is not enumerated up front. Starting from wanted, every
// evaluation reports the unknowns it actually consulted
// (ApplyWithDependencies), lazily materializing and enqueuing any that
// haven't been seen yet and recording the dependency in an
// insertion-ordered infl multimap built up as the run progresses.
func SolveLocal[U comparable, V comparable](
	eqs eqsys.EquationSystem[U, V],
	wanted []U,
	start assign.Input[U, V],
	tr tracer.FixpointSolverTracer[U, V],
) assign.Input[U, V] {
	return SolveLocalEq[U, V](eqs, wanted, start, tr, func(a, b V) bool { return a == b })
}

// SolveLocalEq is SolveLocal with an explicit equality predicate, for V
// that cannot use ==.
func SolveLocalEq[U comparable, V any](
	eqs eqsys.EquationSystem[U, V],
	wanted []U,
	start assign.Input[U, V],
	tr tracer.FixpointSolverTracer[U, V],
	eq func(a, b V) bool,
) assign.Input[U, V] {
	if tr == nil {
		tr = tracer.NullFixpointSolverTracer[U, V]{}
	}
	eqs = copyBoxes[U, V](eqs)

	rho := assign.NewIO[U, V](start)
	infl := ordered.NewMultiMap[U, U]()
	worklist := newFIFO(wanted)

	tr.Initialized(rho)

	for !worklist.empty() {
		x := worklist.dequeue()
		next, deps := eqs.ApplyWithDependencies(rho, x)
		tr.Evaluated(rho, x, next)

		for _, y := range deps {
			if !rho.IsDefinedAt(y) {
				rho.Set(y, start.Get(y))
				worklist.enqueueAll([]U{y})
			}
			infl.Append(y, x)
		}

		if !eq(next, rho.Get(x)) {
			rho.Set(x, next)
			worklist.enqueueAll(infl.Get(x))
		}
	}

	tr.Completed(rho)
	return rho.Snapshot()
}
