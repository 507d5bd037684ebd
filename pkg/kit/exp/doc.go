// Package exp contains the chaining primitives for kit.Expected. These
// functions form the building blocks for failure-aware pipelines: a failure
// travels unchanged past every step meant for a success, and recovery steps
// only run on a failure.
//
// Highlights:
// - AndThen: continue with a step returning Expected (flattens)
// - Map/MapError: transform one side, leave the other untouched
// - OrElse: recover from a failure
// - Pipe: run same-typed AndThen steps left to right
// - Of/Try: bridge Go's (value, error) returns
// - Tee/Finally: side effects and reduction to a plain value
package exp
