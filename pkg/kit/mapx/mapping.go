package mapx

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Mapping is a read-only keyed container. Multi-key containers return the
// first stored association from Get.
type Mapping[K comparable, V any] interface {
	Get(key K) (V, bool)
	All() iter.Seq2[K, V]
	Len() int
}

// Entry is a single key/value association.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map adapts a built-in Go map.
type Map[K comparable, V any] map[K]V

func FromMap[K comparable, V any](m map[K]V) Map[K, V] {
	return Map[K, V](m)
}

func (m Map[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m)
}

func (m Map[K, V]) Len() int {
	return len(m)
}

// MultiMap keeps every association, duplicates included, in insertion order.
type MultiMap[K comparable, V any] struct {
	entries []Entry[K, V]
}

func NewMultiMap[K comparable, V any](entries ...Entry[K, V]) *MultiMap[K, V] {
	return &MultiMap[K, V]{entries: slices.Clone(entries)}
}

func (m *MultiMap[K, V]) Add(key K, value V) {
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
}

func (m *MultiMap[K, V]) Get(key K) (V, bool) {
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// GetAll returns every value stored under key.
func (m *MultiMap[K, V]) GetAll(key K) []V {
	var out []V
	for _, e := range m.entries {
		if e.Key == key {
			out = append(out, e.Value)
		}
	}
	return out
}

func (m *MultiMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (m *MultiMap[K, V]) Len() int {
	return len(m.entries)
}

// SortedMap holds unique keys and iterates them in ascending order.
type SortedMap[K cmp.Ordered, V any] struct {
	entries []Entry[K, V]
}

// NewSortedMap builds a SortedMap. A repeated key keeps its last value.
func NewSortedMap[K cmp.Ordered, V any](entries ...Entry[K, V]) *SortedMap[K, V] {
	m := &SortedMap[K, V]{entries: make([]Entry[K, V], 0, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (m *SortedMap[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e Entry[K, V], k K) int {
		return cmp.Compare(e.Key, k)
	})
}

// Set inserts key or replaces its value.
func (m *SortedMap[K, V]) Set(key K, value V) {
	i, found := m.search(key)
	if found {
		m.entries[i].Value = value
		return
	}
	m.entries = slices.Insert(m.entries, i, Entry[K, V]{Key: key, Value: value})
}

func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	if i, found := m.search(key); found {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (m *SortedMap[K, V]) Len() int {
	return len(m.entries)
}

var (
	_ Mapping[string, int] = Map[string, int]{}
	_ Mapping[string, int] = (*MultiMap[string, int])(nil)
	_ Mapping[string, int] = (*SortedMap[string, int])(nil)
)
