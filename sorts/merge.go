package sorts

import "github.com/kabu1204/go-sortbench/types"

// Merge is a top-down merge sort. Ties are taken from the left half.
func Merge(in types.Sequence) types.Sequence {
	return mergeSort(in)
}

func mergeSort(a types.Sequence) types.Sequence {
	if len(a) <= 1 {
		return a.Clone()
	}
	mid := len(a) / 2
	return merge(mergeSort(a[:mid]), mergeSort(a[mid:]))
}

func merge(left, right types.Sequence) types.Sequence {
	result := make(types.Sequence, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			result = append(result, right[j])
			j++
		} else {
			result = append(result, left[i])
			i++
		}
	}
	result = append(result, left[i:]...)
	return append(result, right[j:]...)
}
