// Package sorts holds six textbook integer sorts and the closed set of
// identifiers that selects between them.
//
// Every function returns a new sequence and leaves its argument untouched.
// Only Radix can fail: it rejects negative values.
package sorts

import (
	"strings"

	"github.com/cornelk/hashmap"
	"github.com/kabu1204/go-sortbench/types"
)

// Algorithm identifies one of the six sorts. The zero value is invalid.
type Algorithm int

const (
	BubbleSort Algorithm = iota + 1
	InsertionSort
	SelectionSort
	MergeSort
	QuickSort
	RadixSort
)

// Info is the static trade-off summary shown next to benchmark results.
type Info struct {
	Advantages    string
	Disadvantages string
}

type descriptor struct {
	name    string
	short   string
	sort    types.SortFunc
	info    Info
	stable  bool
	inPlace bool
}

func infallible(f func(types.Sequence) types.Sequence) types.SortFunc {
	return func(in types.Sequence) (types.Sequence, error) { return f(in), nil }
}

var descriptors = [...]descriptor{
	BubbleSort: {
		name: "Bubble Sort", short: "bubble", sort: infallible(Bubble), stable: true, inPlace: true,
		info: Info{
			Advantages:    "Simple to implement, good for small datasets.",
			Disadvantages: "Very slow for large lists due to O(n²) time complexity.",
		},
	},
	InsertionSort: {
		name: "Insertion Sort", short: "insertion", sort: infallible(Insertion), stable: true, inPlace: true,
		info: Info{
			Advantages:    "Simple, adaptive, efficient for nearly sorted data.",
			Disadvantages: "O(n²) worst case, inefficient for large arrays.",
		},
	},
	SelectionSort: {
		name: "Selection Sort", short: "selection", sort: infallible(Selection), inPlace: true,
		info: Info{
			Advantages:    "Simple, performs well on small lists, few swaps.",
			Disadvantages: "O(n²) time complexity regardless of input.",
		},
	},
	MergeSort: {
		name: "Merge Sort", short: "merge", sort: infallible(Merge), stable: true,
		info: Info{
			Advantages:    "Stable, O(n log n) time, works well on large datasets.",
			Disadvantages: "Requires extra memory, not in-place.",
		},
	},
	QuickSort: {
		name: "Quick Sort", short: "quick", sort: infallible(Quick), inPlace: true,
		info: Info{
			Advantages:    "Very fast average case O(n log n), in-place sorting.",
			Disadvantages: "Worst case O(n²), unstable sort.",
		},
	},
	RadixSort: {
		name: "Radix Sort", short: "radix", sort: Radix, stable: true,
		info: Info{
			Advantages:    "Efficient for integers, O(nk) time complexity.",
			Disadvantages: "Only works on integers or fixed-length keys.",
		},
	},
}

// byName maps every accepted spelling, lower-cased, to its Algorithm.
var byName = func() *hashmap.HashMap {
	m := &hashmap.HashMap{}
	for _, a := range All() {
		d := descriptors[a]
		m.Set(normalize(d.name), a)
		m.Set(d.short, a)
		m.Set(d.short+"sort", a)
	}
	return m
}()

// All returns the six algorithms in their canonical order.
func All() []Algorithm {
	return []Algorithm{BubbleSort, InsertionSort, SelectionSort, MergeSort, QuickSort, RadixSort}
}

// Names returns the display names of All, in the same order.
func Names() []string {
	names := make([]string, 0, len(descriptors)-1)
	for _, a := range All() {
		names = append(names, a.Name())
	}
	return names
}

// ParseAlgorithm accepts a display name ("Quick Sort"), a short name ("quick")
// or either one glued together ("quicksort"), ignoring case and surrounding
// blanks.
func ParseAlgorithm(name string) (Algorithm, error) {
	if v, ok := byName.Get(normalize(name)); ok {
		return v.(Algorithm), nil
	}
	return 0, &UnknownAlgorithmError{Name: name}
}

func normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func (a Algorithm) Valid() bool {
	return a >= BubbleSort && a <= RadixSort
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return "Unknown Sort"
	}
	return descriptors[a].name
}

// Name is the display name, also used as the key of benchmark results.
func (a Algorithm) Name() string { return a.String() }

// Short is the lower-case single-word name used on the command line.
func (a Algorithm) Short() string {
	if !a.Valid() {
		return ""
	}
	return descriptors[a].short
}

func (a Algorithm) Info() Info {
	if !a.Valid() {
		return Info{}
	}
	return descriptors[a].info
}

func (a Algorithm) Stable() bool  { return a.Valid() && descriptors[a].stable }
func (a Algorithm) InPlace() bool { return a.Valid() && descriptors[a].inPlace }

// Func exposes the implementation as a types.SortFunc.
func (a Algorithm) Func() types.SortFunc {
	if !a.Valid() {
		return func(types.Sequence) (types.Sequence, error) {
			return nil, &UnknownAlgorithmError{Name: a.String()}
		}
	}
	return descriptors[a].sort
}

// Sort runs the algorithm on a private copy of in.
func (a Algorithm) Sort(in types.Sequence) (types.Sequence, error) {
	return a.Func()(in)
}
