package body

import "github.com/gnolang/fixsolve/assign"

// WithDependencies is ρ ↦ (u ↦ (v, deps)): like Body, but also reports
// every unknown whose value in ρ was consulted while producing v. A
// superset of the true reads is allowed; omitting one that was actually
// read is a contract violation (§3, §7).
type WithDependencies[U comparable, V any] func(rho assign.ReadOnly[U, V]) func(u U) (V, []U)

// recordingProxy wraps a ReadOnly assignment and appends every queried key
// to a shared buffer, implementing the generic (body-agnostic) dependency
// tracking strategy from §4.5: evaluate the body once on the proxy, return
// the value together with whatever the proxy recorded.
type recordingProxy[U comparable, V any] struct {
	rho  assign.ReadOnly[U, V]
	seen *[]U
}

func (p recordingProxy[U, V]) Get(u U) V {
	*p.seen = append(*p.seen, u)
	return p.rho.Get(u)
}

// Track derives a WithDependencies body from a plain Body using the generic
// recording-proxy strategy: a fresh proxy is built per evaluated unknown so
// concurrent-looking reuse of the returned function for different unknowns
// never mixes their dependency buffers.
func (b Body[U, V]) Track() WithDependencies[U, V] {
	return func(rho assign.ReadOnly[U, V]) func(U) (V, []U) {
		return func(u U) (V, []U) {
			var seen []U
			proxy := recordingProxy[U, V]{rho: rho, seen: &seen}
			v := b(proxy)(u)
			return v, seen
		}
	}
}

// Apply is shorthand for d(rho)(u).
func (d WithDependencies[U, V]) Apply(rho assign.ReadOnly[U, V], u U) (V, []U) {
	return d(rho)(u)
}
