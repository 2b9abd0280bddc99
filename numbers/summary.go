package numbers

import (
	"strconv"
	"strings"

	"github.com/kabu1204/go-sortbench/optional"
	"github.com/kabu1204/go-sortbench/stream"
	"github.com/kabu1204/go-sortbench/types"
)

const DefaultPreview = 20

// Preview returns at most n leading numbers of seq.
func Preview(seq types.Sequence, n int) types.Sequence {
	if n <= 0 {
		return types.Sequence{}
	}
	return stream.FromSequence(seq).Limit(int64(n)).ToSlice()
}

// FormatPreview renders Preview as space-joined text.
func FormatPreview(seq types.Sequence, n int) string {
	preview := Preview(seq, n)
	parts := make([]string, len(preview))
	for i, v := range preview {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

type Summary struct {
	Count    int
	Distinct int
	Min      optional.Int
	Max      optional.Int
	Sorted   bool

	// RadixEligible is false when any value is negative.
	RadixEligible bool
}

func Summarize(seq types.Sequence) Summary {
	s := stream.FromSequence(seq)
	return Summary{
		Count:         int(s.Count()),
		Distinct:      int(s.Distinct(func(e int) int { return e }).Count()),
		Min:           s.Reduce(minInt),
		Max:           s.Reduce(stream.MaxInt),
		Sorted:        seq.IsSorted(),
		RadixEligible: s.NoneMatch(func(e int) bool { return e < 0 }),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
