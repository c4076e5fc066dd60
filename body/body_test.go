package body

import (
	"sort"
	"testing"

	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/box"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityBody(t *testing.T) {
	rho := assign.InputFunc[string, int](func(u string) int { return len(u) })
	id := Identity[string, int]()

	assert.Equal(t, 3, id.Apply(rho, "abc"))
	assert.Equal(t, 5, id.Apply(rho, "hello"))
}

func TestFrom(t *testing.T) {
	b := From[string, int](func(rho assign.ReadOnly[string, int], u string) int {
		return rho.Get(u) + 1
	})
	rho := assign.Const[string, int](4)
	assert.Equal(t, 5, b.Apply(rho, "x"))
}

func TestWithBaseAssignment(t *testing.T) {
	base := assign.NewPartial[string, int](map[string]int{"x": 10})
	comb := func(base, computed int) int { return base + computed }

	b := From[string, int](func(rho assign.ReadOnly[string, int], u string) int { return 1 })
	decorated := b.WithBaseAssignment(base, comb)

	rho := assign.Const[string, int](0)
	require.Equal(t, 11, decorated.Apply(rho, "x"))
	require.Equal(t, 1, decorated.Apply(rho, "y"), "y has no base value, so body result passes through")
}

func TestWithBoxAssignmentAppliesBox(t *testing.T) {
	boxes := box.FromMap[string, int](map[string]box.Box[int]{
		"x": func(old, new int) int {
			if old > new {
				return old
			}
			return new
		},
	}, true)

	b := From[string, int](func(rho assign.ReadOnly[string, int], u string) int { return 1 })
	decorated := b.WithBoxAssignment(boxes)

	rho := assign.Const[string, int](5)
	assert.Equal(t, 5, decorated.Apply(rho, "x"), "box should keep the old (larger) value")
	assert.Equal(t, 1, decorated.Apply(rho, "y"), "y has no box, body result passes through")
}

func TestWithBoxAssignmentEmptyIsIdentity(t *testing.T) {
	b := From[string, int](func(rho assign.ReadOnly[string, int], u string) int { return 42 })
	decorated := b.WithBoxAssignment(box.Empty[string, int]())

	rho := assign.Const[string, int](0)
	assert.Equal(t, 42, decorated.Apply(rho, "x"))
}

func TestTrackRecordsConsultedUnknowns(t *testing.T) {
	b := From[string, int](func(rho assign.ReadOnly[string, int], u string) int {
		return rho.Get("a") + rho.Get("b")
	})
	tracked := b.Track()

	rho := assign.Const[string, int](3)
	v, deps := tracked.Apply(rho, "x")

	assert.Equal(t, 6, v)
	sort.Strings(deps)
	assert.Equal(t, []string{"a", "b"}, deps)
}

func TestTrackIndependentAcrossCalls(t *testing.T) {
	b := From[string, int](func(rho assign.ReadOnly[string, int], u string) int {
		return rho.Get(u)
	})
	tracked := b.Track()
	rho := assign.Const[string, int](1)

	_, depsX := tracked.Apply(rho, "x")
	_, depsY := tracked.Apply(rho, "y")

	assert.Equal(t, []string{"x"}, depsX)
	assert.Equal(t, []string{"y"}, depsY)
}
