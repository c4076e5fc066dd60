package graph

import (
	"github.com/gnolang/fixsolve/algebra"
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/box"
)

// localizedEdge wraps a base edge whose action is rewritten to apply a box,
// and whose source set may gain the target itself when the box is not
// idempotent (§4.7 "Localized boxes"). It does not cache the box itself:
// the box assignment may be stateful, so it must be consulted fresh on every
// evaluation, exactly as the non-localized path does in body.go/eqsys.go.
type localizedEdge[U comparable, V any] struct {
	base    HyperEdge[U]
	sources []U
}

func (e *localizedEdge[U, V]) Sources() []U { return e.sources }
func (e *localizedEdge[U, V]) Target() U    { return e.base.Target() }

func appendUnique[U comparable](xs []U, x U) []U {
	for _, y := range xs {
		if y == x {
			return xs
		}
	}
	out := make([]U, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

// WithLocalizedBoxes inserts boxes directly on the edges that need them
// instead of wrapping the whole body (§4.7). For each edge e with
// x = target(e): if boxes is defined at x and some source of e satisfies
// x <= s (e is a "back edge" into x), the edge's action becomes
// boxes(x)(ρ(x), edgeAction(ρ)(e)); otherwise it is unchanged.
//
// If boxes is not idempotent, two structural rewrites follow so the solver
// still converges: every edge the box applies to gains x as an extra
// source (the box must re-fire whenever ρ(x) itself changes), which in turn
// makes x appear in outgoing(x) once adjacency is recomputed — x now
// influences its own re-evaluation. If boxes is idempotent, only the edge
// actions change; sources and outgoing are untouched.
func WithLocalizedBoxes[U comparable, V any](g GraphEquationSystem[U, V], boxes box.BoxAssignment[U, V], ord algebra.Ordering[U]) GraphEquationSystem[U, V] {
	if boxes == nil || boxes.IsEmpty() {
		return g
	}

	origEdges := g.Edges()
	idempotent := boxes.Idempotent()
	newEdges := make([]HyperEdge[U], len(origEdges))

	for i, e := range origEdges {
		x := e.Target()
		applies := false
		if boxes.Defined(x) {
			for _, s := range e.Sources() {
				if ord.Leq(x, s) {
					applies = true
					break
				}
			}
		}
		if !applies {
			newEdges[i] = e
			continue
		}

		sources := e.Sources()
		if !idempotent {
			sources = appendUnique(sources, x)
		}
		newEdges[i] = &localizedEdge[U, V]{base: e, sources: sources}
	}

	action := func(rho assign.ReadOnly[U, V], e HyperEdge[U]) V {
		le, ok := e.(*localizedEdge[U, V])
		if !ok {
			return g.EdgeAction(rho, e)
		}
		raw := g.EdgeAction(rho, le.base)
		x := le.base.Target()
		bx, ok := boxes.Get(x)
		if !ok {
			return raw
		}
		return bx(rho.Get(x), raw)
	}

	ingoing, outgoing := adjacency(newEdges)
	return buildGraphSystem(g.Unknowns(), g.InputUnknowns, newEdges, ingoing, outgoing, action, g.Initial(), domainOf[U, V](g))
}
