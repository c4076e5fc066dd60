//go:build !notrace

package tracer

// Enabled gates the EquationSystemTracer call sites in eqsys. It is a
// compile-time constant so that a build tagged "notrace" lets the compiler
// dead-code-eliminate the `if tracer.Enabled { ... }` branches entirely,
// instead of paying interface-dispatch cost for a NullTracer at runtime
// (§4.5, §9 "Tracers as elidable hooks"). The FixpointSolverTracer calls in
// package solver are not gated by it and still run under "notrace".
const Enabled = true
