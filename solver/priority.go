package solver

import (
	"container/heap"

	"github.com/gnolang/fixsolve/algebra"
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/eqsys"
	"github.com/gnolang/fixsolve/tracer"
)

// Restart decides, given the newly computed value and the old one, whether
// a solver run should reset every unknown ordered strictly above the one
// just evaluated back to start (§4.9.2).
type Restart[V any] func(new, old V) bool

// SolveWithRestart runs the priority worklist solver (§4.9.2): a max-heap
// ordered by ord, with restart semantics. On evaluating x, restart(new,old)
// is tested before the standard inequality test; if it fires, every y
// ordered strictly above x is reset to start(y) in ρ (no worklist change —
// they re-enter the heap when an unknown they depend on changes again).
func SolveWithRestart[U comparable, V comparable](
	f eqsys.FiniteEquationSystem[U, V],
	start assign.Input[U, V],
	ord algebra.Ordering[U],
	restart Restart[V],
	tr tracer.FixpointSolverTracer[U, V],
) assign.Input[U, V] {
	return SolveWithRestartEq[U, V](f, start, ord, restart, tr, func(a, b V) bool { return a == b })
}

// SolveWithRestartEq is SolveWithRestart with an explicit equality
// predicate, for V that cannot use ==.
func SolveWithRestartEq[U comparable, V any](
	f eqsys.FiniteEquationSystem[U, V],
	start assign.Input[U, V],
	ord algebra.Ordering[U],
	restart Restart[V],
	tr tracer.FixpointSolverTracer[U, V],
	eq func(a, b V) bool,
) assign.Input[U, V] {
	if tr == nil {
		tr = tracer.NullFixpointSolverTracer[U, V]{}
	}
	if restart == nil {
		restart = func(V, V) bool { return false }
	}
	f = copyBoxesFinite[U, V](f)

	rho := assign.NewIO[U, V](start)
	unknowns := f.Unknowns()
	pq := newPriorityQueue(unknowns, ord)

	tr.Initialized(rho)

	for pq.Len() > 0 {
		x := heap.Pop(pq).(U)
		next := f.Apply(rho, x)
		tr.Evaluated(rho, x, next)

		if restart(next, rho.Get(x)) {
			for _, y := range unknowns {
				if ord.Less(x, y) {
					rho.Set(y, start.Get(y))
				}
			}
		}

		if !eq(next, rho.Get(x)) {
			rho.Set(x, next)
			for _, y := range f.Infl(x) {
				heap.Push(pq, y)
			}
		}
	}

	tr.Completed(rho)
	return rho.Snapshot()
}

// priorityQueue is a container/heap max-heap over U ordered by ord;
// duplicates are permitted, matching the source's undeduplicated
// PriorityQueue (§4.9.2, open question in §9).
type priorityQueue[U any] struct {
	items []U
	ord   algebra.Ordering[U]
}

func newPriorityQueue[U any](seed []U, ord algebra.Ordering[U]) *priorityQueue[U] {
	items := make([]U, len(seed))
	copy(items, seed)
	pq := &priorityQueue[U]{items: items, ord: ord}
	heap.Init(pq)
	return pq
}

func (pq *priorityQueue[U]) Len() int { return len(pq.items) }

func (pq *priorityQueue[U]) Less(i, j int) bool {
	return pq.ord.Less(pq.items[j], pq.items[i]) // max-heap: larger first
}

func (pq *priorityQueue[U]) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

func (pq *priorityQueue[U]) Push(x any) {
	pq.items = append(pq.items, x.(U))
}

func (pq *priorityQueue[U]) Pop() any {
	n := len(pq.items)
	x := pq.items[n-1]
	pq.items = pq.items[:n-1]
	return x
}
