package tracerkit

import (
	"bytes"
	"testing"

	"github.com/gnolang/fixsolve/assign"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapTracerLogsEvaluated(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tr := NewZapTracer[string, int](zap.New(core))
	rho := assign.Const[string, int](0)

	tr.Initialized(rho)
	tr.Evaluated(rho, "x", 5)
	tr.Completed(rho)

	entries := logs.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "fixpoint solver initialized", entries[0].Message)
	assert.Equal(t, "unknown evaluated", entries[1].Message)
	assert.Equal(t, "fixpoint solver completed", entries[2].Message)
}

func TestZapTracerNilLoggerIsNop(t *testing.T) {
	tr := NewZapTracer[string, int](nil)
	rho := assign.Const[string, int](0)
	assert.NotPanics(t, func() {
		tr.Initialized(rho)
		tr.Evaluated(rho, "x", 1)
		tr.Completed(rho)
	})
}

func TestConsoleTracerWritesOutput(t *testing.T) {
	var buf bytes.Buffer
	tr := NewConsoleTracer[string, int](&buf)
	rho := assign.Const[string, int](0)

	tr.Initialized(rho)
	tr.Evaluated(rho, "x", 5)
	tr.Completed(rho)

	assert.Contains(t, buf.String(), "x")
	assert.Contains(t, buf.String(), "done")
}

func TestProgressBarTracerAdvancesOncePerUnknown(t *testing.T) {
	tr := NewProgressBarTracer[string, int](2, "solving")
	rho := assign.Const[string, int](0)

	tr.Evaluated(rho, "x", 1)
	tr.Evaluated(rho, "x", 2) // re-evaluation, must not double-advance
	tr.Evaluated(rho, "y", 1)
	tr.Completed(rho)

	assert.InDelta(t, 1.0, tr.bar.State().CurrentPercent, 0.01)
}
