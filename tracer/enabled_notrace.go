//go:build notrace

package tracer

// Enabled is false under the "notrace" build tag: every guarded tracer call
// site becomes unreachable code the compiler removes.
const Enabled = false
