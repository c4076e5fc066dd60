package eqsys

import (
	"testing"

	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/box"
	"github.com/stretchr/testify/assert"
)

func finiteIncrement() FiniteEquationSystem[string, int] {
	eqs := incrementSystem()
	unknowns := []string{"x", "y"}
	infl := func(u string) []string {
		if u == "x" {
			return []string{"y"}
		}
		return nil
	}
	return NewFinite[string, int](eqs, unknowns, infl)
}

func TestFiniteUnknownsAndInfl(t *testing.T) {
	f := finiteIncrement()
	assert.Equal(t, []string{"x", "y"}, f.Unknowns())
	assert.Equal(t, []string{"y"}, f.Infl("x"))
	assert.Nil(t, f.Infl("y"))
}

func TestWithBoxesFiniteIdempotentKeepsInfl(t *testing.T) {
	f := finiteIncrement()
	boxes := box.FromMap[string, int](map[string]box.Box[int]{
		"x": func(old, new int) int { return new },
	}, true)
	decorated := WithBoxesFinite[string, int](f, boxes)

	assert.Equal(t, []string{"y"}, decorated.Infl("x"))
	assert.Nil(t, decorated.Infl("y"))
}

func TestWithBoxesFiniteNonIdempotentAddsDiagonal(t *testing.T) {
	f := finiteIncrement()
	boxes := box.FromMap[string, int](map[string]box.Box[int]{
		"x": func(old, new int) int { return new },
	}, false)
	decorated := WithBoxesFinite[string, int](f, boxes)

	assert.ElementsMatch(t, []string{"y", "x"}, decorated.Infl("x"))
	assert.ElementsMatch(t, []string{"y"}, decorated.Infl("y"), "the diagonal is added for every unknown, boxed or not")
}

func TestWithBoxesFiniteNonIdempotentDoesNotDuplicateExistingDiagonal(t *testing.T) {
	eqs := incrementSystem()
	f := NewFinite[string, int](eqs, []string{"x"}, func(u string) []string { return []string{"x"} })
	boxes := box.FromMap[string, int](map[string]box.Box[int]{
		"x": func(old, new int) int { return new },
	}, false)
	decorated := WithBoxesFinite[string, int](f, boxes)

	assert.Equal(t, []string{"x"}, decorated.Infl("x"))
}

func TestFiniteBoxedRoundTrip(t *testing.T) {
	f := finiteIncrement()
	boxes := box.FromMap[string, int](map[string]box.Box[int]{
		"x": func(old, new int) int { return new },
	}, true)
	decorated := WithBoxesFinite[string, int](f, boxes)

	boxed, ok := decorated.(Boxed[string, int])
	assert.True(t, ok)
	assert.Equal(t, boxes, boxed.Boxes())
}

func TestWithBaseAssignmentFinitePreservesInfl(t *testing.T) {
	f := finiteIncrement()
	init := assign.NewPartial[string, int](map[string]int{"x": 10})
	decorated := WithBaseAssignmentFinite[string, int](f, init, func(base, computed int) int { return base + computed })

	assert.Equal(t, []string{"y"}, decorated.Infl("x"))
	assert.Equal(t, 15, decorated.Apply(assign.Const[string, int](4), "x"))
}
