package solver

import (
	"testing"

	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/body"
	"github.com/gnolang/fixsolve/eqsys"
	"github.com/stretchr/testify/assert"
)

// TestS6InfiniteSolverDiscoversUnknowns builds S6: wanted={0},
// F(ρ)(n) = if n<3 then ρ(n+1)+1 else 0. The solver must materialize
// 0,1,2,3 in order and return ρ(0)=3, ρ(1)=2, ρ(2)=1, ρ(3)=0.
func TestS6InfiniteSolverDiscoversUnknowns(t *testing.T) {
	b := body.From[int, int](func(rho assign.ReadOnly[int, int], n int) int {
		if n < 3 {
			return rho.Get(n+1) + 1
		}
		return 0
	})
	eqs := eqsys.New[int, int](b, assign.Const[int, int](0), func(int) bool { return false })

	result := SolveLocal[int, int](eqs, []int{0}, assign.Const[int, int](0), nil)

	assert.Equal(t, 3, result.Get(0))
	assert.Equal(t, 2, result.Get(1))
	assert.Equal(t, 1, result.Get(2))
	assert.Equal(t, 0, result.Get(3))
}
