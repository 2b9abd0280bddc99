package sorts

import "github.com/kabu1204/go-sortbench/types"

// Bubble sorts with repeated adjacent compares. A pair is swapped only when the
// left element is strictly greater, so equal values keep their order.
func Bubble(in types.Sequence) types.Sequence {
	a := in.Clone()
	n := len(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
	return a
}

// Insertion grows a sorted prefix left to right, shifting every element greater
// than the key one slot to the right.
func Insertion(in types.Sequence) types.Sequence {
	a := in.Clone()
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && key < a[j] {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
	return a
}

// Selection swaps the minimum of the unplaced suffix into each position in turn.
// The swap can carry an element past its equals: not stable.
func Selection(in types.Sequence) types.Sequence {
	a := in.Clone()
	n := len(a)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		a[i], a[minIdx] = a[minIdx], a[i]
	}
	return a
}
