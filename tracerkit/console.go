package tracerkit

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gnolang/fixsolve/assign"
)

// ConsoleTracer prints solver progress to a writer (stdout by default)
// using fatih/color, the styling library the teacher uses for its own
// diagnostic output (internal/print.go's errorStyle/ruleStyle/lineStyle).
type ConsoleTracer[U comparable, V any] struct {
	w        io.Writer
	unknown  *color.Color
	value    *color.Color
	complete *color.Color
}

// NewConsoleTracer builds a ConsoleTracer writing to w. A nil w defaults to
// os.Stdout.
func NewConsoleTracer[U comparable, V any](w io.Writer) *ConsoleTracer[U, V] {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleTracer[U, V]{
		w:        w,
		unknown:  color.New(color.FgCyan, color.Bold),
		value:    color.New(color.FgYellow),
		complete: color.New(color.FgGreen, color.Bold),
	}
}

func (t *ConsoleTracer[U, V]) Initialized(assign.ReadOnly[U, V]) {
	fmt.Fprintln(t.w, t.complete.Sprint("solving..."))
}

func (t *ConsoleTracer[U, V]) Evaluated(_ assign.ReadOnly[U, V], u U, v V) {
	fmt.Fprintf(t.w, "  %s -> %s\n", t.unknown.Sprint(u), t.value.Sprint(v))
}

func (t *ConsoleTracer[U, V]) Completed(assign.ReadOnly[U, V]) {
	fmt.Fprintln(t.w, t.complete.Sprint("done"))
}
