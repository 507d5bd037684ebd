package mapx

import "github.com/ib-77/kit3/pkg/kit"

// LookupByKey returns the value stored under key.
func LookupByKey[K comparable, V any](m Mapping[K, V], key K) kit.Optional[V] {
	v, ok := m.Get(key)
	return kit.FromPair(v, ok)
}

// LookupByValue returns the key of the first association, in m's iteration
// order, whose value equals v.
func LookupByValue[K, V comparable](m Mapping[K, V], v V) kit.Optional[K] {
	for k, val := range m.All() {
		if val == v {
			return kit.Some(k)
		}
	}
	return kit.None[K]()
}

// Keys returns one key per stored association.
func Keys[K comparable, V any](m Mapping[K, V]) []K {
	keys := make([]K, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns one value per stored association.
func Values[K comparable, V any](m Mapping[K, V]) []V {
	values := make([]V, 0, m.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}
