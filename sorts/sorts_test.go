package sorts

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabu1204/go-sortbench/types"
)

func reference(in types.Sequence) types.Sequence {
	out := in.Clone()
	sort.Ints(out)
	return out
}

func randomSequence(rng *rand.Rand, n, lo, hi int) types.Sequence {
	s := make(types.Sequence, n)
	for i := range s {
		s[i] = lo + rng.Intn(hi-lo+1)
	}
	return s
}

func TestAllAlgorithmsSortRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 100, 257, 1000}
	for _, alg := range All() {
		for _, n := range sizes {
			in := randomSequence(rng, n, 0, 5000)
			orig := in.Clone()
			got, err := alg.Sort(in)
			require.NoError(t, err, "%s n=%d", alg, n)
			if diff := cmp.Diff(reference(in), got); diff != "" {
				t.Errorf("%s(n=%d) mismatch (-want +got):\n%s", alg, n, diff)
			}
			assert.Equal(t, orig, in, "%s mutated its input", alg)
		}
	}
}

func TestComparisonSortsHandleNegatives(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	in := randomSequence(rng, 300, -1000, 1000)
	for _, alg := range All() {
		if alg == RadixSort {
			continue
		}
		got, err := alg.Sort(in)
		require.NoError(t, err)
		assert.True(t, got.IsSorted(), "%s produced unsorted output", alg)
		assert.Equal(t, reference(in), got)
	}
}

func TestSortAlreadySorted(t *testing.T) {
	in := types.Sequence{1, 2, 2, 3, 5, 8, 13, 21}
	for _, alg := range All() {
		got, err := alg.Sort(in)
		require.NoError(t, err)
		assert.Equal(t, in, got, "%s is not idempotent", alg)
	}
}

func TestSortEmpty(t *testing.T) {
	for _, alg := range All() {
		got, err := alg.Sort(types.Sequence{})
		require.NoError(t, err, alg.Name())
		assert.Empty(t, got)
		got, err = alg.Sort(nil)
		require.NoError(t, err, alg.Name())
		assert.Empty(t, got)
	}
}

func TestSortSingle(t *testing.T) {
	for _, alg := range All() {
		got, err := alg.Sort(types.Sequence{42})
		require.NoError(t, err)
		assert.Equal(t, types.Sequence{42}, got, alg.Name())
	}
}

func TestSortAllSame(t *testing.T) {
	in := types.Sequence{5, 5, 5, 5, 5, 5}
	for _, alg := range All() {
		got, err := alg.Sort(in)
		require.NoError(t, err)
		assert.Equal(t, in, got, alg.Name())
	}
}

func TestRadixExample(t *testing.T) {
	got, err := Radix(types.Sequence{170, 45, 75, 90, 802, 24, 2, 66})
	require.NoError(t, err)
	assert.Equal(t, types.Sequence{2, 24, 45, 66, 75, 90, 170, 802}, got)
}

func TestRadixAllZero(t *testing.T) {
	got, err := Radix(types.Sequence{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, types.Sequence{0, 0, 0}, got)
}

func TestRadixLargeValues(t *testing.T) {
	in := types.Sequence{1000000000, 1, 999999999, 10, 100, 0}
	got, err := Radix(in)
	require.NoError(t, err)
	assert.Equal(t, reference(in), got)
}

func TestRadixRejectsNegative(t *testing.T) {
	in := types.Sequence{3, 1, -4, 1}
	got, err := Radix(in)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrAlgorithm))
	assert.False(t, errors.Is(err, types.ErrSelection))

	var algErr *AlgorithmError
	require.True(t, errors.As(err, &algErr))
	assert.Equal(t, RadixSort, algErr.Algorithm)
	assert.Equal(t, 2, algErr.Index)
	assert.Equal(t, -4, algErr.Value)
	assert.Contains(t, err.Error(), "Radix Sort")
}

func TestQuickDescending(t *testing.T) {
	n := 20000
	in := make(types.Sequence, n)
	for i := range in {
		in[i] = n - i
	}
	got := Quick(in)
	require.Len(t, got, n)
	assert.True(t, got.IsSorted())
	assert.Equal(t, 1, got[0])
	assert.Equal(t, n, got[n-1])
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"Bubble Sort":       BubbleSort,
		"insertion sort":    InsertionSort,
		"  SELECTION  SORT": SelectionSort,
		"merge":             MergeSort,
		"quicksort":         QuickSort,
		"Radix":             RadixSort,
	}
	for name, want := range cases {
		got, err := ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParseAlgorithmUnknown(t *testing.T) {
	_, err := ParseAlgorithm("Bogo Sort")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrSelection))
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	assert.Equal(t, `unrecognized algorithm "Bogo Sort"`, err.Error())
}

func TestAlgorithmMetadata(t *testing.T) {
	assert.Equal(t, []string{
		"Bubble Sort", "Insertion Sort", "Selection Sort", "Merge Sort", "Quick Sort", "Radix Sort",
	}, Names())
	for _, alg := range All() {
		assert.True(t, alg.Valid())
		assert.NotEmpty(t, alg.Info().Advantages, alg.Name())
		assert.NotEmpty(t, alg.Info().Disadvantages, alg.Name())
		assert.NotEmpty(t, alg.Short())
	}
	assert.True(t, MergeSort.Stable())
	assert.False(t, QuickSort.Stable())
	assert.True(t, QuickSort.InPlace())
	assert.False(t, RadixSort.InPlace())

	var zero Algorithm
	assert.False(t, zero.Valid())
	_, err := zero.Sort(types.Sequence{1})
	assert.True(t, errors.Is(err, types.ErrSelection))
}
