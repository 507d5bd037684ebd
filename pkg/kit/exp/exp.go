package exp

import "github.com/ib-77/kit3/pkg/kit"

// AndThen calls onSuccess with the value and adopts its result. A failure
// is propagated without calling onSuccess.
func AndThen[T, U, E any](x kit.Expected[T, E], onSuccess func(v T) kit.Expected[U, E]) kit.Expected[U, E] {
	if v, ok := x.Get(); ok {
		return onSuccess(v)
	}
	return kit.Failure[U](x.Err())
}

// Map wraps onSuccess's plain return as a new success.
func Map[T, U, E any](x kit.Expected[T, E], onSuccess func(v T) U) kit.Expected[U, E] {
	if v, ok := x.Get(); ok {
		return kit.Success[U, E](onSuccess(v))
	}
	return kit.Failure[U](x.Err())
}

// MapError transforms the failure value.
func MapError[T, E, F any](x kit.Expected[T, E], onFailure func(e E) F) kit.Expected[T, F] {
	if v, ok := x.Get(); ok {
		return kit.Success[T, F](v)
	}
	return kit.Failure[T](onFailure(x.Err()))
}

// OrElse calls onFailure with the error and returns its result.
func OrElse[T, E any](x kit.Expected[T, E], onFailure func(e E) kit.Expected[T, E]) kit.Expected[T, E] {
	return x.OrElse(onFailure)
}

// Pipe runs steps in order and stops at the first failure.
func Pipe[T, E any](x kit.Expected[T, E], steps ...func(v T) kit.Expected[T, E]) kit.Expected[T, E] {
	for _, step := range steps {
		if x.HasError() {
			return x
		}
		x = AndThen(x, step)
	}
	return x
}

// Of converts a Go (value, error) pair.
func Of[T any](v T, err error) kit.Expected[T, error] {
	if err != nil {
		return kit.Failure[T](err)
	}
	return kit.Success[T, error](v)
}

// Try calls onTryExecute on success and turns its error into a failure.
func Try[T, U any](x kit.Expected[T, error], onTryExecute func(v T) (U, error)) kit.Expected[U, error] {
	return AndThen(x, func(v T) kit.Expected[U, error] {
		u, err := onTryExecute(v)
		return Of(u, err)
	})
}

// Tee runs onSuccess for its side effect and returns x.
func Tee[T, E any](x kit.Expected[T, E], onSuccess func(v T)) kit.Expected[T, E] {
	if v, ok := x.Get(); ok {
		onSuccess(v)
	}
	return x
}

// Finally reduces x to a plain value.
func Finally[T, E, R any](x kit.Expected[T, E],
	onSuccess func(v T) R,
	onFailure func(e E) R) R {

	if v, ok := x.Get(); ok {
		return onSuccess(v)
	}
	return onFailure(x.Err())
}
