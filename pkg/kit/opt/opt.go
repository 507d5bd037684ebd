package opt

import "github.com/ib-77/kit3/pkg/kit"

// AndThen calls onPresent with the value and adopts its result.
// On absence onPresent is not called.
func AndThen[T, U any](o kit.Optional[T], onPresent func(v T) kit.Optional[U]) kit.Optional[U] {
	if v, ok := o.Get(); ok {
		return onPresent(v)
	}
	return kit.None[U]()
}

// Map applies onPresent to a present value.
func Map[T, U any](o kit.Optional[T], onPresent func(v T) U) kit.Optional[U] {
	if v, ok := o.Get(); ok {
		return kit.Some(onPresent(v))
	}
	return kit.None[U]()
}

// Pipe runs steps in order and stops at the first absent result.
func Pipe[T any](o kit.Optional[T], steps ...func(v T) kit.Optional[T]) kit.Optional[T] {
	for _, step := range steps {
		if o.IsAbsent() {
			return o
		}
		o = AndThen(o, step)
	}
	return o
}

// OrElse returns the value, or the result of onAbsent when there is none.
func OrElse[T any](o kit.Optional[T], onAbsent func() T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return onAbsent()
}

// Or returns o when present, otherwise alternative.
func Or[T any](o, alternative kit.Optional[T]) kit.Optional[T] {
	if o.IsPresent() {
		return o
	}
	return alternative
}

// Filter keeps a present value only if pred holds.
func Filter[T any](o kit.Optional[T], pred func(v T) bool) kit.Optional[T] {
	if v, ok := o.Get(); ok && pred(v) {
		return o
	}
	return kit.None[T]()
}

func FromPtr[T any](p *T) kit.Optional[T] {
	if p == nil {
		return kit.None[T]()
	}
	return kit.Some(*p)
}

// FromNillable treats nil pointers, maps, slices, channels, funcs and
// interfaces as absent.
func FromNillable[T any](v T) kit.Optional[T] {
	if kit.IsNil(v) {
		return kit.None[T]()
	}
	return kit.Some(v)
}

// Flatten collapses a nested Optional.
func Flatten[T any](o kit.Optional[kit.Optional[T]]) kit.Optional[T] {
	return o.ValueOr(kit.None[T]())
}

// Average returns the mean of the present entries, or absent when there are none.
func Average[T kit.Number](values []kit.Optional[T]) kit.Optional[T] {
	var sum T
	count := 0
	for _, o := range values {
		if v, ok := o.Get(); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return kit.None[T]()
	}
	return kit.Some(sum / T(count))
}
