package eqsys

import (
	"testing"

	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/body"
	"github.com/gnolang/fixsolve/box"
	"github.com/gnolang/fixsolve/tracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incrementSystem() EquationSystem[string, int] {
	b := body.From[string, int](func(rho assign.ReadOnly[string, int], u string) int {
		return rho.Get(u) + 1
	})
	return New[string, int](b, assign.Const[string, int](0), func(string) bool { return false })
}

func TestApplyPlain(t *testing.T) {
	eqs := incrementSystem()
	rho := assign.Const[string, int](4)
	assert.Equal(t, 5, eqs.Apply(rho, "x"))
}

func TestApplyWithDependencies(t *testing.T) {
	b := body.From[string, int](func(rho assign.ReadOnly[string, int], u string) int {
		return rho.Get("a") + rho.Get("b")
	})
	eqs := New[string, int](b, assign.Const[string, int](1), func(string) bool { return false })

	v, deps := eqs.ApplyWithDependencies(assign.Const[string, int](2), "x")
	assert.Equal(t, 4, v)
	assert.ElementsMatch(t, []string{"a", "b"}, deps)
}

func TestWithBaseAssignment(t *testing.T) {
	eqs := incrementSystem()
	init := assign.NewPartial[string, int](map[string]int{"x": 100})
	decorated := WithBaseAssignment[string, int](eqs, init, func(base, computed int) int { return base + computed })

	rho := assign.Const[string, int](4)
	assert.Equal(t, 105, decorated.Apply(rho, "x"))
	assert.Equal(t, 5, decorated.Apply(rho, "y"))
}

func TestWithBoxesAppliesBox(t *testing.T) {
	eqs := incrementSystem()
	boxes := box.FromMap[string, int](map[string]box.Box[int]{
		"x": func(old, new int) int {
			if old > new {
				return old
			}
			return new
		},
	}, true)
	decorated := WithBoxes[string, int](eqs, boxes)

	rho := assign.Const[string, int](10)
	assert.Equal(t, 11, decorated.Apply(rho, "x"), "box is max(old 10, computed 11)")
}

func TestWithBoxesEmptyIsIdentity(t *testing.T) {
	eqs := incrementSystem()
	decorated := WithBoxes[string, int](eqs, box.Empty[string, int]())
	assert.Same(t, eqs, decorated)
}

func TestBoxedRoundTrip(t *testing.T) {
	eqs := incrementSystem()
	boxes := box.FromMap[string, int](map[string]box.Box[int]{
		"x": func(old, new int) int { return new },
	}, true)
	decorated := WithBoxes[string, int](eqs, boxes)

	boxed, ok := decorated.(Boxed[string, int])
	require.True(t, ok)
	assert.Equal(t, boxes, boxed.Boxes())

	rebound := boxed.RebindBoxes(box.Empty[string, int]())
	assert.Equal(t, 5, rebound.Apply(assign.Const[string, int](4), "x"))
}

type spyTracer struct {
	pre, post, box, nobox int
}

func (s *spyTracer) PreEvaluation(assign.ReadOnly[string, int], string)       { s.pre++ }
func (s *spyTracer) PostEvaluation(assign.ReadOnly[string, int], string, int) { s.post++ }
func (s *spyTracer) BoxEvaluation(assign.ReadOnly[string, int], string, int, int) {
	s.box++
}
func (s *spyTracer) NoBoxEvaluation(assign.ReadOnly[string, int], string, int) {
	s.nobox++
}

func TestWithTracerFiresEachEventOnce(t *testing.T) {
	eqs := incrementSystem()
	sp := &spyTracer{}
	decorated := WithTracer[string, int](eqs, tracer.EquationSystemTracer[string, int](sp))

	decorated.Apply(assign.Const[string, int](0), "x")
	assert.Equal(t, 1, sp.pre)
	assert.Equal(t, 1, sp.post)
	assert.Equal(t, 0, sp.box)
	assert.Equal(t, 1, sp.nobox)
}

func TestWithTracerFiresBoxEvaluation(t *testing.T) {
	eqs := incrementSystem()
	boxes := box.FromMap[string, int](map[string]box.Box[int]{
		"x": func(old, new int) int { return new },
	}, true)
	withBoxes := WithBoxes[string, int](eqs, boxes)

	sp := &spyTracer{}
	decorated := WithTracer[string, int](withBoxes, tracer.EquationSystemTracer[string, int](sp))

	decorated.Apply(assign.Const[string, int](0), "x")
	assert.Equal(t, 1, sp.box)
	assert.Equal(t, 0, sp.nobox)
}
