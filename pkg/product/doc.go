// Package product provides lazy, memory-bounded enumeration of the N-ary
// cartesian product of homogeneous sequences — sequences whose elements all
// share one item type.
//
// Tuples are produced one at a time in lexicographic (odometer) order, with
// the last factor varying fastest, without materializing any intermediate
// collection. Repeated elements in a factor are treated as distinct and
// propagate to repeated output tuples.
//
// Take a look at example_test.go for how the iterators compose with
// range-over-func loops.
package product
