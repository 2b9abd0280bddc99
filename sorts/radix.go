package sorts

import "github.com/kabu1204/go-sortbench/types"

const radixBase = 10

// Radix is an LSD counting sort over decimal digits. It accepts non-negative
// values only and reports the first negative one as an *AlgorithmError.
func Radix(in types.Sequence) (types.Sequence, error) {
	a := in.Clone()
	maxVal := 0
	for i, v := range a {
		if v < 0 {
			return nil, &AlgorithmError{
				Algorithm: RadixSort,
				Index:     i,
				Value:     v,
				Reason:    "negative values cannot be bucketed by decimal digit",
			}
		}
		if v > maxVal {
			maxVal = v
		}
	}
	// empty and all-zero inputs have no digit to bucket on
	if maxVal == 0 {
		return a, nil
	}
	out := make(types.Sequence, len(a))
	for exp := 1; maxVal/exp > 0; exp *= radixBase {
		countingPass(a, out, exp)
		a, out = out, a
		if exp > maxVal/radixBase {
			break
		}
	}
	return a, nil
}

// countingPass distributes src into dst by the digit selected by exp. Walking
// src backwards keeps each pass stable.
func countingPass(src, dst types.Sequence, exp int) {
	var count [radixBase]int
	for _, v := range src {
		count[(v/exp)%radixBase]++
	}
	for d := 1; d < radixBase; d++ {
		count[d] += count[d-1]
	}
	for i := len(src) - 1; i >= 0; i-- {
		d := (src[i] / exp) % radixBase
		count[d]--
		dst[count[d]] = src[i]
	}
}
