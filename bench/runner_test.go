package bench

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabu1204/go-sortbench/sorts"
	"github.com/kabu1204/go-sortbench/types"
)

func newTestRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()
	r, err := NewRunner(opts...)
	require.NoError(t, err)
	t.Cleanup(r.Release)
	return r
}

// scriptedClock returns base+ticks[i] on the i-th call and repeats the last
// tick once the script runs out.
func scriptedClock(ticks ...time.Duration) func() time.Time {
	var mu sync.Mutex
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick := ticks[len(ticks)-1]
		if i < len(ticks) {
			tick = ticks[i]
		}
		i++
		return base.Add(tick)
	}
}

func TestRunInsertionBubble(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.RunNames(types.Sequence{5, 3, 3, 1}, []string{"Insertion Sort", "Bubble Sort"}, nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, []string{"Insertion Sort", "Bubble Sort"}, res.Names())
	assert.Equal(t, 2, res.Len())
	for _, e := range res.Entries() {
		assert.GreaterOrEqual(t, e.Duration, time.Duration(0))
	}
	assert.Equal(t, types.Sequence{1, 3, 3, 5}, res.Sorted)
	assert.True(t, res.Complete)

	secs, ok := res.Seconds("Bubble Sort")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, secs, 0.0)
	_, ok = res.Seconds("Merge Sort")
	assert.False(t, ok)
}

func TestRunRejectsEmptyInput(t *testing.T) {
	r := newTestRunner(t)
	called := false
	res, err := r.Run(nil, []sorts.Algorithm{sorts.QuickSort}, func(Progress) { called = true })
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNoData)
	assert.ErrorIs(t, err, types.ErrInput)
	assert.False(t, called)

	res, err = r.RunNames(types.Sequence{}, nil, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRunRejectsEmptySelection(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Run(types.Sequence{1}, nil, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNoAlgorithm)
	assert.ErrorIs(t, err, types.ErrSelection)
	assert.False(t, errors.Is(err, types.ErrInput))

	_, err = r.RunNames(types.Sequence{1}, []string{}, nil)
	assert.ErrorIs(t, err, ErrNoAlgorithm)
}

func TestRunRejectsUnknownAlgorithm(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.RunNames(types.Sequence{2, 1}, []string{"Quick Sort", "Sleep Sort"}, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.ErrorIs(t, err, types.ErrSelection)
	assert.Contains(t, err.Error(), "Sleep Sort")

	res, err = r.Run(types.Sequence{2, 1}, []sorts.Algorithm{sorts.MergeSort, sorts.Algorithm(42)}, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRunSortsOriginalInputEveryTime(t *testing.T) {
	r := newTestRunner(t, WithCaptureOutputs())
	in := types.Sequence{9, -2, 7, 7, 0, 3}
	orig := in.Clone()
	sel := []sorts.Algorithm{sorts.QuickSort, sorts.SelectionSort, sorts.MergeSort}
	res, err := r.Run(in, sel, nil)
	require.NoError(t, err)

	assert.Equal(t, orig, in)
	assert.Equal(t, orig, res.Input)
	require.Len(t, res.Outputs, 3)
	for _, alg := range sel {
		assert.Equal(t, types.Sequence{-2, 0, 3, 7, 7, 9}, res.Outputs[alg], alg.Name())
	}
}

func TestRunCollapsesDuplicates(t *testing.T) {
	r := newTestRunner(t)
	sel := []sorts.Algorithm{sorts.RadixSort, sorts.BubbleSort, sorts.RadixSort}
	res, err := r.Run(types.Sequence{3, 1, 2}, sel, nil)
	require.NoError(t, err)
	assert.Equal(t, []sorts.Algorithm{sorts.RadixSort, sorts.BubbleSort}, res.Algorithms())
	assert.Equal(t, 2, res.Planned)
}

func TestRunAlgorithmErrorKeepsPartialResults(t *testing.T) {
	r := newTestRunner(t)
	var events []Progress
	sel := []sorts.Algorithm{sorts.InsertionSort, sorts.RadixSort, sorts.MergeSort}
	res, err := r.Run(types.Sequence{4, -1, 2}, sel, func(p Progress) { events = append(events, p) })

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrAlgorithm)
	var algErr *sorts.AlgorithmError
	require.True(t, errors.As(err, &algErr))
	assert.Equal(t, sorts.RadixSort, algErr.Algorithm)

	require.NotNil(t, res)
	assert.False(t, res.Complete)
	assert.Equal(t, []sorts.Algorithm{sorts.InsertionSort}, res.Algorithms())
	assert.Equal(t, types.Sequence{-1, 2, 4}, res.Sorted)
	require.Len(t, res.Notes, 1)
	assert.Equal(t, sorts.InsertionSort, res.Notes[0].Algorithm)
	require.Len(t, events, 1)
}

func TestRunProgressAndRanking(t *testing.T) {
	clock := scriptedClock(0,
		0, 30*time.Millisecond,
		30*time.Millisecond, 40*time.Millisecond,
		40*time.Millisecond, 60*time.Millisecond,
		60*time.Millisecond)
	r := newTestRunner(t, WithClock(clock))
	var events []Progress
	sel := []sorts.Algorithm{sorts.BubbleSort, sorts.MergeSort, sorts.QuickSort}
	res, err := r.Run(types.Sequence{2, 3, 1}, sel, func(p Progress) { events = append(events, p) })
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, "Bubble Sort finished in 0.030s", events[0].Message)
	assert.InDelta(t, 1.0/3, events[0].Fraction, 1e-9)
	assert.Equal(t, 1.0, events[2].Fraction)
	assert.Equal(t, 3, events[2].Total)

	d, ok := res.Duration(sorts.MergeSort)
	require.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, d)
	assert.Equal(t, 60*time.Millisecond, res.Total())
	assert.Equal(t, 60*time.Millisecond, res.Finished.Sub(res.Started))

	var ranked []sorts.Algorithm
	for _, e := range res.Ranked() {
		ranked = append(ranked, e.Algorithm)
	}
	assert.Equal(t, []sorts.Algorithm{sorts.MergeSort, sorts.QuickSort, sorts.BubbleSort}, ranked)

	require.Len(t, res.Notes, 3)
	assert.Equal(t, sorts.BubbleSort.Info(), res.Notes[0].Info)
}

func TestStartDeliversProgressAndResult(t *testing.T) {
	r := newTestRunner(t, WithWorkers(2))
	sel := []sorts.Algorithm{sorts.MergeSort, sorts.QuickSort, sorts.RadixSort}
	var calls int
	task, err := r.Start(types.Sequence{30, 10, 20}, sel, func(Progress) { calls++ })
	require.NoError(t, err)

	var seen []sorts.Algorithm
	for p := range task.Progress() {
		seen = append(seen, p.Algorithm)
	}
	<-task.Done()
	res, err := task.Wait()
	require.NoError(t, err)
	assert.Equal(t, sel, seen)
	assert.Equal(t, 3, calls)
	assert.True(t, res.Complete)
	assert.Equal(t, types.Sequence{10, 20, 30}, res.Sorted)
}

func TestStartValidatesSynchronously(t *testing.T) {
	r := newTestRunner(t)
	task, err := r.Start(nil, []sorts.Algorithm{sorts.BubbleSort}, nil)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, ErrNoData)

	task, err = r.Start(types.Sequence{1}, nil, nil)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, ErrNoAlgorithm)
}

func TestStartDoesNotWaitForBusyPool(t *testing.T) {
	r := newTestRunner(t, WithWorkers(1))
	holding, release := make(chan struct{}), make(chan struct{})
	first, err := r.Start(types.Sequence{2, 1}, []sorts.Algorithm{sorts.BubbleSort}, func(Progress) {
		close(holding)
		<-release
	})
	require.NoError(t, err)
	<-holding

	began := time.Now()
	second, err := r.Start(types.Sequence{4, 3}, []sorts.Algorithm{sorts.QuickSort}, nil)
	require.NoError(t, err)
	assert.Less(t, time.Since(began), time.Second)

	select {
	case <-second.Done():
		t.Fatal("second run finished while the only worker was held")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	res, err := first.Wait()
	require.NoError(t, err)
	assert.Equal(t, types.Sequence{1, 2}, res.Sorted)
	res, err = second.Wait()
	require.NoError(t, err)
	assert.Equal(t, types.Sequence{3, 4}, res.Sorted)
}

func TestStartAfterRelease(t *testing.T) {
	r, err := NewRunner()
	require.NoError(t, err)
	r.Release()

	task, err := r.Start(types.Sequence{2, 1}, []sorts.Algorithm{sorts.MergeSort}, nil)
	require.NoError(t, err)
	res, err := task.Wait()
	assert.Nil(t, res)
	assert.Error(t, err)
	_, open := <-task.Progress()
	assert.False(t, open)
}

func TestStartSurfacesAlgorithmError(t *testing.T) {
	r := newTestRunner(t)
	task, err := r.Start(types.Sequence{-5, 5}, []sorts.Algorithm{sorts.BubbleSort, sorts.RadixSort}, nil)
	require.NoError(t, err)
	res, err := task.Wait()
	assert.ErrorIs(t, err, types.ErrAlgorithm)
	require.NotNil(t, res)
	assert.False(t, res.Complete)
	assert.Equal(t, 1, res.Len())
}

func TestStartIgnoresLaterInputMutation(t *testing.T) {
	r := newTestRunner(t)
	in := types.Sequence{3, 2, 1}
	task, err := r.Start(in, []sorts.Algorithm{sorts.InsertionSort}, nil)
	require.NoError(t, err)
	in[0] = 100
	res, err := task.Wait()
	require.NoError(t, err)
	assert.Equal(t, types.Sequence{1, 2, 3}, res.Sorted)
}

func TestWriteTimingsAndNotes(t *testing.T) {
	clock := scriptedClock(0, 0, 2*time.Second, 2*time.Second, 2500*time.Millisecond, 2500*time.Millisecond)
	r := newTestRunner(t, WithClock(clock))
	res, err := r.Run(types.Sequence{1, 2}, []sorts.Algorithm{sorts.SelectionSort, sorts.RadixSort}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTimings(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "ALGORITHM")
	assert.Regexp(t, `Selection Sort\s+2\.000\s+2`, out)
	assert.Regexp(t, `Radix Sort\s+0\.500\s+1`, out)
	assert.NotContains(t, out, "incomplete")

	buf.Reset()
	require.NoError(t, WriteNotes(&buf, res))
	assert.Contains(t, buf.String(), "Selection Sort:\n - Advantages: Simple, performs well on small lists, few swaps.")
	assert.Contains(t, buf.String(), "Radix Sort:\n - Advantages:")
}
