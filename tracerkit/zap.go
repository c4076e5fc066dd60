// Package tracerkit provides non-core tracer backends: library helpers the
// core (packages tracer, eqsys, solver) never depends on, matching §6's
// "tracer back-ends (stdout logger, null) are provided as library helpers
// but do not belong to the core." Each backend implements one or both of
// tracer.EquationSystemTracer / tracer.FixpointSolverTracer.
package tracerkit

import (
	"fmt"

	"github.com/gnolang/fixsolve/assign"
	"go.uber.org/zap"
)

// ZapTracer logs solver and equation-system events through a *zap.Logger,
// the structured-logging backend this library's teacher codebase uses
// throughout (internal/engine.go, lint/lint.go). U and V are logged as
// string fields formatted with fmt.Sprint, so a String method on U or V is
// used when present.
type ZapTracer[U comparable, V any] struct {
	log *zap.Logger
}

// NewZapTracer wraps an existing logger. A nil logger is replaced with
// zap.NewNop(), matching the teacher's "logger may be nil" convention in
// lint.go's ProcessPath.
func NewZapTracer[U comparable, V any](log *zap.Logger) *ZapTracer[U, V] {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapTracer[U, V]{log: log}
}

func (t *ZapTracer[U, V]) Initialized(assign.ReadOnly[U, V]) {
	t.log.Debug("fixpoint solver initialized")
}

func (t *ZapTracer[U, V]) Evaluated(_ assign.ReadOnly[U, V], u U, v V) {
	t.log.Debug("unknown evaluated",
		zap.String("unknown", fmt.Sprint(u)),
		zap.String("value", fmt.Sprint(v)),
	)
}

func (t *ZapTracer[U, V]) Completed(assign.ReadOnly[U, V]) {
	t.log.Debug("fixpoint solver completed")
}

func (t *ZapTracer[U, V]) PreEvaluation(_ assign.ReadOnly[U, V], u U) {
	t.log.Debug("pre-evaluation", zap.String("unknown", fmt.Sprint(u)))
}

func (t *ZapTracer[U, V]) PostEvaluation(_ assign.ReadOnly[U, V], u U, raw V) {
	t.log.Debug("post-evaluation",
		zap.String("unknown", fmt.Sprint(u)),
		zap.String("raw", fmt.Sprint(raw)),
	)
}

func (t *ZapTracer[U, V]) BoxEvaluation(_ assign.ReadOnly[U, V], u U, raw, boxed V) {
	t.log.Debug("box evaluation",
		zap.String("unknown", fmt.Sprint(u)),
		zap.String("raw", fmt.Sprint(raw)),
		zap.String("boxed", fmt.Sprint(boxed)),
	)
}

func (t *ZapTracer[U, V]) NoBoxEvaluation(_ assign.ReadOnly[U, V], u U, raw V) {
	t.log.Debug("no-box evaluation",
		zap.String("unknown", fmt.Sprint(u)),
		zap.String("raw", fmt.Sprint(raw)),
	)
}
