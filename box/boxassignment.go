package box

// emptyAssignment is the zero BoxAssignment: defined nowhere. Decorating a
// body or equation system with it must be a no-op (§4.4, §4.7).
type emptyAssignment[U comparable, V any] struct{}

func Empty[U comparable, V any]() BoxAssignment[U, V] {
	return emptyAssignment[U, V]{}
}

func (emptyAssignment[U, V]) Get(U) (Box[V], bool)        { return nil, false }
func (emptyAssignment[U, V]) Defined(U) bool              { return false }
func (emptyAssignment[U, V]) IsEmpty() bool               { return true }
func (emptyAssignment[U, V]) Idempotent() bool            { return true }
func (e emptyAssignment[U, V]) Copy() BoxAssignment[U, V] { return e }

// pureAssignment is a plain per-unknown map of boxes with no internal
// mutable state; cloning it is the identity, so Copy returns the receiver.
type pureAssignment[U comparable, V any] struct {
	boxes      map[U]Box[V]
	idempotent bool
}

// FromMap builds a pure (stateless) BoxAssignment from an explicit per-
// unknown map. idempotent must be true only if every box in boxes satisfies
// the idempotence law.
func FromMap[U comparable, V any](boxes map[U]Box[V], idempotent bool) BoxAssignment[U, V] {
	if len(boxes) == 0 {
		return Empty[U, V]()
	}
	cp := make(map[U]Box[V], len(boxes))
	for k, v := range boxes {
		cp[k] = v
	}
	return &pureAssignment[U, V]{boxes: cp, idempotent: idempotent}
}

// Uniform builds a pure BoxAssignment applying the same box to every
// unknown in domain.
func Uniform[U comparable, V any](domain []U, b Box[V], idempotent bool) BoxAssignment[U, V] {
	boxes := make(map[U]Box[V], len(domain))
	for _, u := range domain {
		boxes[u] = b
	}
	return FromMap(boxes, idempotent)
}

func (p *pureAssignment[U, V]) Get(u U) (Box[V], bool) {
	b, ok := p.boxes[u]
	return b, ok
}

func (p *pureAssignment[U, V]) Defined(u U) bool {
	_, ok := p.boxes[u]
	return ok
}

func (p *pureAssignment[U, V]) IsEmpty() bool    { return len(p.boxes) == 0 }
func (p *pureAssignment[U, V]) Idempotent() bool { return p.idempotent }

func (p *pureAssignment[U, V]) Copy() BoxAssignment[U, V] { return p }

// counterSwitch is a stateful BoxAssignment: it applies widen until an
// unknown has been evaluated threshold times, then switches to narrow,
// exactly the motivating example in §4.3 ("counters that switch from
// widening to narrowing after k applications"). Copy deep-copies the
// per-unknown counters so concurrent solves sharing the same decorated
// equation system never see each other's iteration counts.
type counterSwitch[U comparable, V any] struct {
	widen     Box[V]
	narrow    Box[V]
	threshold int
	counts    map[U]int
}

// NewCounterSwitch builds a stateful BoxAssignment applying widen for the
// first threshold evaluations of each unknown and narrow afterwards. It is
// never idempotent, because the very fact of re-applying it changes which
// box fires next.
func NewCounterSwitch[U comparable, V any](widen, narrow Box[V], threshold int) BoxAssignment[U, V] {
	return &counterSwitch[U, V]{
		widen:     widen,
		narrow:    narrow,
		threshold: threshold,
		counts:    make(map[U]int),
	}
}

func (c *counterSwitch[U, V]) Get(u U) (Box[V], bool) {
	n := c.counts[u]
	c.counts[u] = n + 1
	if n < c.threshold {
		return c.widen, true
	}
	return c.narrow, true
}

func (c *counterSwitch[U, V]) Defined(U) bool   { return true }
func (c *counterSwitch[U, V]) IsEmpty() bool    { return false }
func (c *counterSwitch[U, V]) Idempotent() bool { return false }

func (c *counterSwitch[U, V]) Copy() BoxAssignment[U, V] {
	cp := make(map[U]int, len(c.counts))
	for k, v := range c.counts {
		cp[k] = v
	}
	return &counterSwitch[U, V]{
		widen:     c.widen,
		narrow:    c.narrow,
		threshold: c.threshold,
		counts:    cp,
	}
}
