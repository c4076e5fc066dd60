package graph

import (
	"github.com/gnolang/fixsolve/algebra"
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/body"
	"github.com/gnolang/fixsolve/box"
	"github.com/gnolang/fixsolve/eqsys"
)

// WithLocalizedWarrowing composes a widening and a narrowing into a single
// per-unknown operator, applied directly where the per-edge comparisons
// that decide widen-vs-narrow are available (§4.7 "Localized warrowing").
// This is flagged experimental in §9: the source material this library is
// modeled on explicitly notes it is "not entirely clear whether this works
// as intended"; §4.7 is implemented exactly as written, unaltered.
//
// For each unknown x with ingoing edges, every edge e contributes a pair
// (c_e, w_e): c_e is the edge's action, and w_e is true when e is a back
// edge into x (some source s satisfies x <= s) and c_e is not already below
// ρ(x). The pairs reduce via (join, or) to (result, anyWiden); if anyWiden,
// widen(ρ(x), result) fires, else narrow(ρ(x), result) fires if result is
// strictly below ρ(x), else result passes through unchanged.
//
// The result depends on comparisons (x <= s, c_e ⊑ ρ(x)) that cannot be
// factored back into independent per-edge actions, so the return value is a
// flat FiniteEquationSystem, not a GraphEquationSystem: the hypergraph
// structure itself is still exactly g's (infl starts from g's outgoing
// edges, plus the diagonal described below), but the right-hand side can no
// longer be presented edge-by-edge.
//
// widenIdempotent and narrowIdempotent must be true only if widen/narrow
// individually satisfy the idempotence law; influence gains the diagonal
// unless both are true.
func WithLocalizedWarrowing[U comparable, V any](
	g GraphEquationSystem[U, V],
	widen, narrow box.Box[V],
	widenIdempotent, narrowIdempotent bool,
	ord algebra.Ordering[U],
) eqsys.FiniteEquationSystem[U, V] {
	dom := domainOf[U, V](g)

	bodyFn := body.From[U, V](func(rho assign.ReadOnly[U, V], x U) V {
		ins := g.Ingoing(x)
		if len(ins) == 0 {
			return rho.Get(x)
		}

		old := rho.Get(x)
		var result V
		anyWiden := false
		first := true

		for _, e := range ins {
			c := g.EdgeAction(rho, e)

			backEdge := false
			for _, s := range e.Sources() {
				if ord.Leq(x, s) {
					backEdge = true
					break
				}
			}
			w := backEdge && !dom.Lteq(c, old)

			if first {
				result, anyWiden, first = c, w, false
				continue
			}
			result = dom.Join(result, c)
			anyWiden = anyWiden || w
		}

		if anyWiden {
			return widen(old, result)
		}
		if algebra.Lt[V](dom, result, old) {
			return narrow(old, result)
		}
		return result
	})

	baseInfl := g.Infl
	infl := baseInfl
	if !(widenIdempotent && narrowIdempotent) {
		infl = func(u U) []U {
			b := baseInfl(u)
			for _, y := range b {
				if y == u {
					return b
				}
			}
			out := make([]U, len(b), len(b)+1)
			copy(out, b)
			return append(out, u)
		}
	}

	base := eqsys.New[U, V](bodyFn, g.Initial(), g.InputUnknowns)
	return eqsys.NewFinite[U, V](base, g.Unknowns(), infl)
}
