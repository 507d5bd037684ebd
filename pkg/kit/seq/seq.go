package seq

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/ib-77/kit3/pkg/kit"
)

// Find returns the first element satisfying pred.
func Find[T any](s []T, pred func(T) bool) kit.Optional[T] {
	for _, v := range s {
		if pred(v) {
			return kit.Some(v)
		}
	}
	return kit.None[T]()
}

// FindIndex returns the index of the first element satisfying pred.
func FindIndex[T any](s []T, pred func(T) bool) kit.Optional[int] {
	for i, v := range s {
		if pred(v) {
			return kit.Some(i)
		}
	}
	return kit.None[int]()
}

func Contains[T comparable](s []T, v T) bool {
	return Find(s, func(x T) bool { return x == v }).IsPresent()
}

// Unique returns the distinct elements of s in ascending order.
func Unique[T cmp.Ordered](s []T) []T {
	return UniqueFunc(s, cmp.Compare[T])
}

// UniqueFunc is Unique for types ordered by compare.
func UniqueFunc[T any](s []T, compare func(a, b T) int) []T {
	out := slices.Clone(s)
	if out == nil {
		out = []T{}
	}
	slices.SortFunc(out, compare)
	return slices.CompactFunc(out, func(a, b T) bool {
		return compare(a, b) == 0
	})
}

// Zip pairs a and b by position. Extra elements of the longer one are dropped.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = MakePair(a[i], b[i])
	}
	return out
}

// Filter returns the elements of s that satisfy pred, in order.
func Filter[T any](s []T, pred func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Partition splits s into the elements that satisfy pred and those that don't.
func Partition[T any](s []T, pred func(T) bool) (matched, rest []T) {
	matched = make([]T, 0, len(s))
	rest = make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

// Merge interleaves two ascending slices into one ascending slice. On ties
// the element of a comes first. Unsorted input is not sorted first.
func Merge[T cmp.Ordered](a, b []T) []T {
	return MergeFunc(a, b, cmp.Compare[T])
}

func MergeFunc[T any](a, b []T, compare func(x, y T) int) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if compare(b[j], a[i]) < 0 {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

func Flatten[T any](s [][]T) []T {
	total := 0
	for _, inner := range s {
		total += len(inner)
	}

	out := make([]T, 0, total)
	for _, inner := range s {
		out = append(out, inner...)
	}
	return out
}

// Split cuts s at every sep. Empty segments are kept, an empty s gives an
// empty result.
func Split(s string, sep rune) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, string(sep))
}

// TransformIf replaces every element satisfying pred with fn(element).
func TransformIf[T any](s []T, pred func(T) bool, fn func(T) T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		if pred(v) {
			out[i] = fn(v)
		} else {
			out[i] = v
		}
	}
	return out
}

// TransformFilter keeps fn(element) for every element satisfying pred.
func TransformFilter[T, U any](s []T, pred func(T) bool, fn func(T) U) []U {
	out := make([]U, 0, len(s))
	for _, v := range s {
		if pred(v) {
			out = append(out, fn(v))
		}
	}
	return out
}

// ToSlice drains src into a new slice.
func ToSlice[T any](src iter.Seq[T]) []T {
	out := []T{}
	for v := range src {
		out = append(out, v)
	}
	return out
}

func TransformToSlice[T, U any](src iter.Seq[T], fn func(T) U) []U {
	out := []U{}
	for v := range src {
		out = append(out, fn(v))
	}
	return out
}
