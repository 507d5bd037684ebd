package kit

import (
	"errors"
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, chan,
// func or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsBadAccess reports whether a recovered panic value was raised by a
// wrong-side read of an Optional or Expected.
func IsBadAccess(recovered any) bool {
	err, ok := recovered.(error)
	return ok && errors.Is(err, ErrBadAccess)
}

// ToExpected converts an absent optional into a failure carrying err.
func ToExpected[T any](o Optional[T], err error) Expected[T, error] {
	if v, ok := o.Get(); ok {
		return Success[T, error](v)
	}
	return Failure[T](err)
}
