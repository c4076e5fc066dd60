package solver

import "github.com/gnolang/fixsolve/eqsys"

// copyBoxes clones a system's BoxAssignment before a run, per the
// copy-before-use contract in §4.3: every solver must call Copy() on a
// BoxAssignment before first use and then use the copy exclusively, so a
// stateful box (e.g. box.NewCounterSwitch) never leaks iteration state
// across separate solves of the same decorated system. Systems that don't
// carry a BoxAssignment, or carry none, are returned unchanged.
func copyBoxes[U comparable, V any](eqs eqsys.EquationSystem[U, V]) eqsys.EquationSystem[U, V] {
	bd, ok := eqs.(eqsys.Boxed[U, V])
	if !ok {
		return eqs
	}
	boxes := bd.Boxes()
	if boxes == nil {
		return eqs
	}
	return bd.RebindBoxes(boxes.Copy())
}

// copyBoxesFinite is copyBoxes for a FiniteEquationSystem; rebinding a boxed
// finite system yields back a FiniteEquationSystem, so the type is
// recovered rather than widened to EquationSystem.
func copyBoxesFinite[U comparable, V any](f eqsys.FiniteEquationSystem[U, V]) eqsys.FiniteEquationSystem[U, V] {
	rebound := copyBoxes[U, V](f)
	if fin, ok := rebound.(eqsys.FiniteEquationSystem[U, V]); ok {
		return fin
	}
	return f
}
