// Package stream is a lazy, push-based pipeline over integer sequences.
//
// Stages are recorded when they are chained and only run when a terminal
// operation (ToSlice, Count, Reduce, ...) is called. Every terminal operation
// walks the source again, so one Stream can be terminated more than once.
package stream

import (
	"github.com/kabu1204/go-sortbench/optional"
	"github.com/kabu1204/go-sortbench/types"
)

type Stream interface {
	// stateless (nothing to do with elements order)
	Filter(p types.Predicate) Stream
	Map(f types.Function) Stream
	Peek(f types.Consumer) Stream

	// Parallel hands every element to a pool of n workers. Downstream
	// stages see elements in no particular order until the next Sorted.
	Parallel(n int) Stream

	// stateful
	Distinct(f types.IntFunction) Stream // keeps the first element seen per key
	Sorted(cmp types.Comparator) Stream  // non-stable
	SortedBy(sort types.SortFunc) Stream // collects, then sorts with the given function
	Limit(N int64) Stream                // first N elems
	Skip(N int64) Stream                 // skip first N elems

	ForEach(f types.Consumer)
	ToSlice() types.Sequence
	AllMatch(p types.Predicate) bool
	NoneMatch(p types.Predicate) bool
	AnyMatch(p types.Predicate) bool
	Reduce(accumulator types.BinaryOperator) optional.Int
	ReduceFrom(initValue int, accumulator types.BinaryOperator) int
	FindFirst() optional.Int
	Count() int64

	// Err reports the failure, if any, of the last terminal operation.
	Err() error
}
