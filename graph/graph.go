// Package graph provides GraphEquationSystem (C7): a directed hypergraph
// presentation of an equation system, the centerpiece of the library. Body
// and influence are derived from the hypergraph structure; localized box
// and warrowing insertion (localbox.go, warrowing.go) rewrite both the
// right-hand side and the dependency structure simultaneously.
package graph

import (
	"github.com/gnolang/fixsolve/algebra"
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/body"
	"github.com/gnolang/fixsolve/eqsys"
)

// HyperEdge is a directed hyperedge: several sources, one target.
type HyperEdge[U comparable] interface {
	Sources() []U
	Target() U
}

type simpleEdge[U comparable] struct {
	sources []U
	target  U
}

func (e simpleEdge[U]) Sources() []U { return e.sources }
func (e simpleEdge[U]) Target() U    { return e.target }

// NewEdge builds a plain hyperedge from target and sources.
func NewEdge[U comparable](target U, sources ...U) HyperEdge[U] {
	cp := make([]U, len(sources))
	copy(cp, sources)
	return simpleEdge[U]{sources: cp, target: target}
}

// EdgeAction computes the contribution of a single edge to its target,
// given an assignment.
type EdgeAction[U comparable, V any] func(rho assign.ReadOnly[U, V], e HyperEdge[U]) V

// GraphEquationSystem is a FiniteEquationSystem additionally presented as a
// hypergraph: body(ρ)(x) = ⊔ edgeAction(ρ)(e) over e in ingoing(x), or ρ(x)
// when x has no ingoing edges (an unknown with no defining edges is
// stationary); infl(u) = { target(e) | e in outgoing(u) }.
type GraphEquationSystem[U comparable, V any] interface {
	eqsys.FiniteEquationSystem[U, V]
	Edges() []HyperEdge[U]
	Outgoing(u U) []HyperEdge[U]
	Ingoing(u U) []HyperEdge[U]
	EdgeAction(rho assign.ReadOnly[U, V], e HyperEdge[U]) V
}

type graphSystem[U comparable, V any] struct {
	eqsys.FiniteEquationSystem[U, V]
	edges    []HyperEdge[U]
	ingoing  map[U][]HyperEdge[U]
	outgoing map[U][]HyperEdge[U]
	action   EdgeAction[U, V]
	dom      algebra.Domain[V]
}

// domainOf recovers the Domain witness a GraphEquationSystem was built
// with, for use by the localized decorators in this package, which must
// rebuild a new graphSystem from scratch after rewriting edges.
func domainOf[U comparable, V any](g GraphEquationSystem[U, V]) algebra.Domain[V] {
	gs, ok := g.(*graphSystem[U, V])
	if !ok {
		panic("graph: domainOf called on a GraphEquationSystem not built by this package")
	}
	return gs.dom
}

// New builds a GraphEquationSystem from its hypergraph presentation.
// dom supplies the upper-bound operation combining parallel ingoing edges.
func New[U comparable, V any](
	unknowns []U,
	inputUnknowns func(U) bool,
	edges []HyperEdge[U],
	action EdgeAction[U, V],
	initial assign.Input[U, V],
	dom algebra.Domain[V],
) GraphEquationSystem[U, V] {
	ingoing, outgoing := adjacency(edges)
	return buildGraphSystem(unknowns, inputUnknowns, edges, ingoing, outgoing, action, initial, dom)
}

func adjacency[U comparable](edges []HyperEdge[U]) (ingoing, outgoing map[U][]HyperEdge[U]) {
	ingoing = make(map[U][]HyperEdge[U])
	outgoing = make(map[U][]HyperEdge[U])
	for _, e := range edges {
		ingoing[e.Target()] = append(ingoing[e.Target()], e)
		for _, s := range e.Sources() {
			outgoing[s] = append(outgoing[s], e)
		}
	}
	return ingoing, outgoing
}

func buildGraphSystem[U comparable, V any](
	unknowns []U,
	inputUnknowns func(U) bool,
	edges []HyperEdge[U],
	ingoing, outgoing map[U][]HyperEdge[U],
	action EdgeAction[U, V],
	initial assign.Input[U, V],
	dom algebra.Domain[V],
) GraphEquationSystem[U, V] {
	bodyFn := body.From[U, V](func(rho assign.ReadOnly[U, V], u U) V {
		ins := ingoing[u]
		if len(ins) == 0 {
			return rho.Get(u)
		}
		acc := action(rho, ins[0])
		for _, e := range ins[1:] {
			acc = dom.Join(acc, action(rho, e))
		}
		return acc
	})

	inflFn := func(u U) []U {
		outs := outgoing[u]
		if len(outs) == 0 {
			return nil
		}
		targets := make([]U, len(outs))
		for i, e := range outs {
			targets[i] = e.Target()
		}
		return targets
	}

	base := eqsys.New[U, V](bodyFn, initial, inputUnknowns)
	finite := eqsys.NewFinite[U, V](base, unknowns, inflFn)

	return &graphSystem[U, V]{
		FiniteEquationSystem: finite,
		edges:                edges,
		ingoing:              ingoing,
		outgoing:             outgoing,
		action:               action,
		dom:                  dom,
	}
}

func (g *graphSystem[U, V]) Edges() []HyperEdge[U]       { return g.edges }
func (g *graphSystem[U, V]) Outgoing(u U) []HyperEdge[U] { return g.outgoing[u] }
func (g *graphSystem[U, V]) Ingoing(u U) []HyperEdge[U]  { return g.ingoing[u] }
func (g *graphSystem[U, V]) EdgeAction(rho assign.ReadOnly[U, V], e HyperEdge[U]) V {
	return g.action(rho, e)
}

// ApplyWithDependencies overrides the generic recording-proxy strategy with
// the static ingoing-edge closure (§4.5: "Graph systems override this to
// use the static ingoing-edge closure (cheaper, exact)"): the dependency
// set is exactly the union of sources(e) for e in ingoing(x), computed
// without evaluating anything. The value itself still goes through Apply so
// any box/base/tracer decoration already layered on (FiniteEquationSystem)
// still takes effect.
func (g *graphSystem[U, V]) ApplyWithDependencies(rho assign.ReadOnly[U, V], u U) (V, []U) {
	v := g.Apply(rho, u)
	ins := g.ingoing[u]
	if len(ins) == 0 {
		return v, nil
	}
	var deps []U
	seen := make(map[U]struct{})
	for _, e := range ins {
		for _, s := range e.Sources() {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			deps = append(deps, s)
		}
	}
	return v, deps
}
