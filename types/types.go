package types

type (
	// Sequence is an ordered collection of integers, the unit every sort works on.
	Sequence []int

	Predicate func(int) bool

	Function func(int) int

	Consumer func(int)

	IntFunction func(int) int

	Comparator func(e1, e2 int) int

	BinaryOperator func(e1, e2 int) int

	// SortFunc returns a sorted copy of its input and leaves the input untouched.
	SortFunc func(Sequence) (Sequence, error)
)

// Ascending is the natural integer order.
func Ascending(e1, e2 int) int {
	switch {
	case e1 < e2:
		return -1
	case e1 > e2:
		return 1
	}
	return 0
}
