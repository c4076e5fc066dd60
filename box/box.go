// Package box provides Box operators (old-value/new-value combinators used
// to realize widenings and narrowings) and BoxAssignment, the per-unknown
// selection of boxes a solver applies while evaluating a body.
package box

// Box interprets as "given the old value and the newly computed value,
// produce the value to store". A box is idempotent if
// Box(x, Box(x, y)) == Box(x, y) for all x, y; BoxAssignment tracks this as
// a single flag over every box it yields, not per-box, since solvers only
// ever need to know whether the assignment as a whole is idempotent.
type Box[V any] func(old, new V) V

// BoxAssignment selects a Box per unknown. It may be stateful (closing over
// counters, e.g. switching from widening to narrowing after k
// applications); callers MUST call Copy() before using a BoxAssignment in a
// solve, and use the copy exclusively for that run. Failing to copy a
// stateful BoxAssignment before reuse is undefined behavior: its internal
// state would leak across unrelated solves.
type BoxAssignment[U comparable, V any] interface {
	// Get returns the box for u, if any. Get may be stateful (e.g. advancing
	// an internal counter); callers must only call it where they intend to
	// actually apply the returned box, once per evaluation.
	Get(u U) (Box[V], bool)
	// Defined reports whether u has a box, with no side effects. Callers
	// that only need to know whether a box applies to u — without
	// evaluating it — must use Defined instead of Get, so probing never
	// perturbs a stateful assignment's internal state.
	Defined(u U) bool
	// IsEmpty reports whether no unknown has a box; decorating with an
	// empty BoxAssignment must be the identity.
	IsEmpty() bool
	// Idempotent reports whether every box this assignment can yield is
	// idempotent.
	Idempotent() bool
	// Copy returns an assignment safe to use for one solve. Pure
	// assignments may return themselves; stateful ones must deep-copy
	// their internal state.
	Copy() BoxAssignment[U, V]
}
