package kit

import "fmt"

// Expected holds either a success value T or a failure E, never both.
// The zero value is a success carrying the zero T.
type Expected[T, E any] struct {
	value  T
	err    E
	failed bool
}

func Success[T, E any](v T) Expected[T, E] {
	return Expected[T, E]{
		value:  v,
		failed: false,
	}
}

func Failure[T, E any](e E) Expected[T, E] {
	return Expected[T, E]{
		err:    e,
		failed: true,
	}
}

func (x Expected[T, E]) HasValue() bool {
	return !x.failed
}

func (x Expected[T, E]) HasError() bool {
	return x.failed
}

// Value returns the success value. It panics on a failure.
func (x Expected[T, E]) Value() T {
	if x.failed {
		panic(fmt.Errorf("%w: value of a failed expected (error: %v)", ErrBadAccess, x.err))
	}
	return x.value
}

// Err returns the failure value. It panics on a success.
func (x Expected[T, E]) Err() E {
	if !x.failed {
		panic(fmt.Errorf("%w: error of a successful expected", ErrBadAccess))
	}
	return x.err
}

// Get returns the success value and true, or the zero T and false.
func (x Expected[T, E]) Get() (T, bool) {
	if x.failed {
		var zero T
		return zero, false
	}
	return x.value, true
}

func (x Expected[T, E]) ValueOr(fallback T) T {
	if x.failed {
		return fallback
	}
	return x.value
}

// Optional drops the error side.
func (x Expected[T, E]) Optional() Optional[T] {
	if x.failed {
		return None[T]()
	}
	return Some(x.value)
}

// OrElse recovers from a failure. onFailure is not called on success.
func (x Expected[T, E]) OrElse(onFailure func(e E) Expected[T, E]) Expected[T, E] {
	if !x.failed {
		return x
	}
	return onFailure(x.err)
}

func (x Expected[T, E]) String() string {
	if x.failed {
		return fmt.Sprintf("Failure(%v)", x.err)
	}
	return fmt.Sprintf("Success(%v)", x.value)
}
