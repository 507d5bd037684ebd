// Package mapx provides lookups and key/value extraction over any keyed
// container that satisfies Mapping.
//
// Three containers are included:
// - Map: a Go map adapter; iteration order is unspecified
// - MultiMap: duplicate keys allowed, iteration in insertion order
// - SortedMap: unique keys, iteration in ascending key order
//
// LookupByKey, LookupByValue, Keys and Values work on all of them and
// report absence through kit.Optional.
package mapx
