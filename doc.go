// Package fixsolve is the module root for a generic fixpoint solver library:
// equation systems over user-defined lattices (packages algebra, assign, box,
// body, eqsys, graph) and the worklist-based solvers that compute their
// solutions (package solver). Tracing hooks live in package tracer (core,
// elidable) and package tracerkit (concrete library-helper backends).
//
// The module root itself holds no exported API; import the subpackages you
// need, starting with eqsys or graph to build a system and solver to run it.
package fixsolve
