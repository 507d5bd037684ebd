// Package ext provides Ext[T], a fluent wrapper over kit.Optional[T] for
// chaining presence-aware steps.
//
// Go methods cannot introduce type parameters, so steps that change the
// value type are package functions taking the wrapper first:
// - AndThen/AndThenExt: continue with an Optional-returning step (flattens)
// - Map/Transform: apply a plain transform
// - AndThenDo: run an effect, yielding Ext[kit.Unit]
// - OrElseDo: run a fallback effect, yielding Ext[kit.Unit]
//
// Same-typed steps are methods: Then, Filter, Ensure, OrElse, ValueOr.
// No step is ever invoked on the path it does not belong to.
package ext
