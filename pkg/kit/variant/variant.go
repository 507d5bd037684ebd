// Package variant provides closed tagged unions of two to four alternatives
// and GetIf, which extracts one alternative as a kit.Optional.
package variant

import (
	"reflect"

	"github.com/ib-77/kit3/pkg/kit"
)

// Variant is implemented by the closed unions of this package.
type Variant interface {
	// Index is the zero-based position of the active alternative
	Index() int
	// Value is the active alternative
	Value() any
	// Type is the declared type of the active alternative
	Type() reflect.Type
}

// GetIf returns the active alternative when its declared type is exactly T.
func GetIf[T any](v Variant) kit.Optional[T] {
	if v.Type() != reflect.TypeFor[T]() {
		return kit.None[T]()
	}
	t, _ := v.Value().(T)
	return kit.Some(t)
}

// Of2 holds exactly one of A or B. The zero value holds a zero A.
type Of2[A, B any] struct {
	index int
	a     A
	b     B
}

func First2[A, B any](v A) Of2[A, B] {
	return Of2[A, B]{index: 0, a: v}
}

func Second2[A, B any](v B) Of2[A, B] {
	return Of2[A, B]{index: 1, b: v}
}

func (v Of2[A, B]) Index() int {
	return v.index
}

func (v Of2[A, B]) Value() any {
	if v.index == 1 {
		return v.b
	}
	return v.a
}

func (v Of2[A, B]) Type() reflect.Type {
	if v.index == 1 {
		return reflect.TypeFor[B]()
	}
	return reflect.TypeFor[A]()
}

// Of3 holds exactly one of A, B or C. The zero value holds a zero A.
type Of3[A, B, C any] struct {
	index int
	a     A
	b     B
	c     C
}

func First3[A, B, C any](v A) Of3[A, B, C] {
	return Of3[A, B, C]{index: 0, a: v}
}

func Second3[A, B, C any](v B) Of3[A, B, C] {
	return Of3[A, B, C]{index: 1, b: v}
}

func Third3[A, B, C any](v C) Of3[A, B, C] {
	return Of3[A, B, C]{index: 2, c: v}
}

func (v Of3[A, B, C]) Index() int {
	return v.index
}

func (v Of3[A, B, C]) Value() any {
	switch v.index {
	case 1:
		return v.b
	case 2:
		return v.c
	default:
		return v.a
	}
}

func (v Of3[A, B, C]) Type() reflect.Type {
	switch v.index {
	case 1:
		return reflect.TypeFor[B]()
	case 2:
		return reflect.TypeFor[C]()
	default:
		return reflect.TypeFor[A]()
	}
}

// Of4 holds exactly one of A, B, C or D. The zero value holds a zero A.
type Of4[A, B, C, D any] struct {
	index int
	a     A
	b     B
	c     C
	d     D
}

func First4[A, B, C, D any](v A) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{index: 0, a: v}
}

func Second4[A, B, C, D any](v B) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{index: 1, b: v}
}

func Third4[A, B, C, D any](v C) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{index: 2, c: v}
}

func Fourth4[A, B, C, D any](v D) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{index: 3, d: v}
}

func (v Of4[A, B, C, D]) Index() int {
	return v.index
}

func (v Of4[A, B, C, D]) Value() any {
	switch v.index {
	case 1:
		return v.b
	case 2:
		return v.c
	case 3:
		return v.d
	default:
		return v.a
	}
}

func (v Of4[A, B, C, D]) Type() reflect.Type {
	switch v.index {
	case 1:
		return reflect.TypeFor[B]()
	case 2:
		return reflect.TypeFor[C]()
	case 3:
		return reflect.TypeFor[D]()
	default:
		return reflect.TypeFor[A]()
	}
}

var (
	_ Variant = Of2[int, string]{}
	_ Variant = Of3[int, string, bool]{}
	_ Variant = Of4[int, string, bool, float64]{}
)
