package sorts

import "github.com/kabu1204/go-sortbench/types"

// Quick sorts a copy with the Lomuto partition scheme, pivoting on the last
// element of every subrange.
func Quick(in types.Sequence) types.Sequence {
	a := in.Clone()
	quickRange(a, 0, len(a)-1)
	return a
}

// quickRange recurses into the smaller partition and loops over the larger
// one, keeping the stack at O(log n) even when every split is degenerate.
func quickRange(a types.Sequence, low, high int) {
	for low < high {
		p := partition(a, low, high)
		if p-low < high-p {
			quickRange(a, low, p-1)
			low = p + 1
		} else {
			quickRange(a, p+1, high)
			high = p - 1
		}
	}
}

func partition(a types.Sequence, low, high int) int {
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	return i + 1
}
