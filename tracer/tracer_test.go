package tracer

import (
	"testing"

	"github.com/gnolang/fixsolve/assign"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []string
}

func (r *recorder) PreEvaluation(assign.ReadOnly[string, int], string) {
	r.events = append(r.events, "pre")
}
func (r *recorder) PostEvaluation(assign.ReadOnly[string, int], string, int) {
	r.events = append(r.events, "post")
}
func (r *recorder) BoxEvaluation(assign.ReadOnly[string, int], string, int, int) {
	r.events = append(r.events, "box")
}
func (r *recorder) NoBoxEvaluation(assign.ReadOnly[string, int], string, int) {
	r.events = append(r.events, "nobox")
}

func TestNullTracersDiscardEvents(t *testing.T) {
	var est EquationSystemTracer[string, int] = NullEquationSystemTracer[string, int]{}
	var fst FixpointSolverTracer[string, int] = NullFixpointSolverTracer[string, int]{}

	rho := assign.Const[string, int](0)
	est.PreEvaluation(rho, "x")
	est.PostEvaluation(rho, "x", 1)
	est.BoxEvaluation(rho, "x", 1, 2)
	est.NoBoxEvaluation(rho, "x", 1)
	fst.Initialized(rho)
	fst.Evaluated(rho, "x", 1)
	fst.Completed(rho)
	// nothing to assert beyond "did not panic"; Null tracers have no state.
}

func TestEnabledInDefaultBuild(t *testing.T) {
	assert.True(t, Enabled, "default build must keep tracing enabled")
}

func TestRecorderOrdering(t *testing.T) {
	r := &recorder{}
	var est EquationSystemTracer[string, int] = r
	rho := assign.Const[string, int](0)

	est.PreEvaluation(rho, "x")
	est.PostEvaluation(rho, "x", 1)
	est.NoBoxEvaluation(rho, "x", 1)

	assert.Equal(t, []string{"pre", "post", "nobox"}, r.events)
}
