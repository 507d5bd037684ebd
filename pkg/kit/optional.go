package kit

import "fmt"

// Optional holds a value of type T or nothing. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		value:   v,
		present: true,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPair builds an Optional from the common Go (value, ok) return shape.
func FromPair[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the contained value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Value returns the contained value and panics when the optional is absent.
func (o Optional[T]) Value() T {
	if !o.present {
		panic(fmt.Errorf("%w: value of an absent optional", ErrBadAccess))
	}
	return o.value
}

func (o Optional[T]) ValueOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
