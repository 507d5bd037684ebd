package ext

import "github.com/ib-77/kit3/pkg/kit"

// Ext wraps an Optional and always reports the same presence as it.
type Ext[T any] struct {
	opt kit.Optional[T]
}

func Extend[T any](o kit.Optional[T]) Ext[T] {
	return Ext[T]{opt: o}
}

func Of[T any](v T) Ext[T] {
	return Extend(kit.Some(v))
}

func Empty[T any]() Ext[T] {
	return Extend(kit.None[T]())
}

// Raw returns the wrapped Optional.
func (e Ext[T]) Raw() kit.Optional[T] {
	return e.opt
}

func (e Ext[T]) IsPresent() bool {
	return e.opt.IsPresent()
}

// ValueOr ends the chain with the value or fallback.
func (e Ext[T]) ValueOr(fallback T) T {
	return e.opt.ValueOr(fallback)
}

// Then composes same-typed steps that already return an Optional.
func (e Ext[T]) Then(onPresent func(v T) kit.Optional[T]) Ext[T] {
	return AndThen(e, onPresent)
}

// Filter drops the value unless pred holds.
func (e Ext[T]) Filter(pred func(v T) bool) Ext[T] {
	v, ok := e.opt.Get()
	if !ok || pred(v) {
		return e
	}
	return Empty[T]()
}

// Ensure runs onPresent for its side effect and keeps the value.
func (e Ext[T]) Ensure(onPresent func(v T)) Ext[T] {
	if v, ok := e.opt.Get(); ok {
		onPresent(v)
	}
	return e
}

// OrElse returns e when present, otherwise wraps the value onAbsent produces.
func (e Ext[T]) OrElse(onAbsent func() T) Ext[T] {
	if e.opt.IsPresent() {
		return e
	}
	return Of(onAbsent())
}

// AndThen calls onPresent and adopts the presence of its result.
func AndThen[T, U any](e Ext[T], onPresent func(v T) kit.Optional[U]) Ext[U] {
	v, ok := e.opt.Get()
	if !ok {
		return Empty[U]()
	}
	return Extend(onPresent(v))
}

// AndThenExt is AndThen for steps that return a wrapper.
func AndThenExt[T, U any](e Ext[T], onPresent func(v T) Ext[U]) Ext[U] {
	v, ok := e.opt.Get()
	if !ok {
		return Empty[U]()
	}
	return onPresent(v)
}

// AndThenDo runs onPresent and reports that it ran with a present unit.
func AndThenDo[T any](e Ext[T], onPresent func(v T)) Ext[kit.Unit] {
	v, ok := e.opt.Get()
	if !ok {
		return Empty[kit.Unit]()
	}
	onPresent(v)
	return Of(kit.Unit{})
}

// Map applies a plain transform without flattening.
func Map[T, U any](e Ext[T], onPresent func(v T) U) Ext[U] {
	v, ok := e.opt.Get()
	if !ok {
		return Empty[U]()
	}
	return Of(onPresent(v))
}

// Transform is Map.
func Transform[T, U any](e Ext[T], onPresent func(v T) U) Ext[U] {
	return Map(e, onPresent)
}

// OrElseDo runs onAbsent only when e is absent. The result is always a
// present unit: either the value existed or the fallback ran.
func OrElseDo[T any](e Ext[T], onAbsent func()) Ext[kit.Unit] {
	if !e.opt.IsPresent() {
		onAbsent()
	}
	return Of(kit.Unit{})
}
