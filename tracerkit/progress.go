package tracerkit

import (
	"github.com/gnolang/fixsolve/assign"
	"github.com/schollz/progressbar/v3"
)

// ProgressBarTracer drives a schollz/progressbar/v3 bar as unknowns reach
// their first evaluation, the same bar construction the teacher's lint.go
// uses for its own file-by-file progress. total is the number of unknowns
// expected (Unknowns() for a finite solve); pass 0 for an infinite solve's
// unknown bar count — the bar then just counts up without a fixed end.
type ProgressBarTracer[U comparable, V any] struct {
	bar  *progressbar.ProgressBar
	seen map[any]struct{}
}

// NewProgressBarTracer builds a bar styled like the teacher's, showing the
// count and a green saucer fill.
func NewProgressBarTracer[U comparable, V any](total int, description string) *ProgressBarTracer[U, V] {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return &ProgressBarTracer[U, V]{bar: bar, seen: make(map[any]struct{})}
}

func (t *ProgressBarTracer[U, V]) Initialized(assign.ReadOnly[U, V]) {}

// Evaluated advances the bar once per distinct unknown the first time it is
// evaluated; re-evaluations of an already-seen unknown (re-iteration to a
// fixpoint) do not advance it further, since the bar tracks discovery
// progress, not total evaluation count.
func (t *ProgressBarTracer[U, V]) Evaluated(_ assign.ReadOnly[U, V], u U, _ V) {
	if _, ok := t.seen[u]; ok {
		return
	}
	t.seen[u] = struct{}{}
	_ = t.bar.Add(1)
}

func (t *ProgressBarTracer[U, V]) Completed(assign.ReadOnly[U, V]) {
	_ = t.bar.Finish()
}
