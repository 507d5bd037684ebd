// Package opt contains free functions over a plain kit.Optional, for
// callers that do not want the ext.Ext wrapper.
//
// - AndThen: continue with a function returning an Optional (flattens)
// - Map: apply a plain transform to a present value
// - Pipe: run same-typed AndThen steps left to right
// - OrElse/Or: fall back to a computed value or another Optional
// - Average: mean of the present entries
package opt
