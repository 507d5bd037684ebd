// Package seq contains stateless algorithms over slices and iter.Seq
// sources. Every function allocates its result and leaves its inputs
// untouched.
//
// Highlights:
// - Find/Contains: search, returning kit.Optional on lookup
// - Filter/Partition/TransformIf/TransformFilter: predicate driven copies
// - Unique/Merge: order based deduplication and two-way sorted merge
// - Zip/Flatten: shape changes between one and two dimensional slices
// - Split: delimiter split that keeps empty segments
// - ToSlice/TransformToSlice: materialize any iter.Seq
package seq
