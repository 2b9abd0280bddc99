package bench

import (
	"time"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/google/btree"
	"github.com/samber/lo"

	"github.com/kabu1204/go-sortbench/sorts"
	"github.com/kabu1204/go-sortbench/types"
)

// Entry is one timed algorithm of a run. Index is its position in the
// selection.
type Entry struct {
	Algorithm sorts.Algorithm
	Duration  time.Duration
	Index     int
}

func (e Entry) Seconds() float64 { return e.Duration.Seconds() }

// Note is the static trade-off text of an algorithm that completed.
type Note struct {
	Algorithm sorts.Algorithm
	sorts.Info
}

// Result is the outcome of one run. Durations keep selection order; Sorted is
// the output of the last algorithm that finished.
type Result struct {
	durations *linkedhashmap.Map // sorts.Algorithm -> time.Duration

	Input    types.Sequence
	Sorted   types.Sequence
	Outputs  map[sorts.Algorithm]types.Sequence // filled only with CaptureOutputs
	Notes    []Note
	Planned  int
	Complete bool
	Started  time.Time
	Finished time.Time
}

func newResult(input types.Sequence, planned int, capture bool) *Result {
	r := &Result{
		durations: linkedhashmap.New(),
		Input:     input,
		Planned:   planned,
	}
	if capture {
		r.Outputs = make(map[sorts.Algorithm]types.Sequence, planned)
	}
	return r
}

func (r *Result) record(alg sorts.Algorithm, d time.Duration, out types.Sequence) {
	r.durations.Put(alg, d)
	r.Sorted = out
	if r.Outputs != nil {
		r.Outputs[alg] = out
	}
}

// Len is the number of algorithms that finished.
func (r *Result) Len() int { return r.durations.Size() }

func (r *Result) Duration(alg sorts.Algorithm) (time.Duration, bool) {
	v, ok := r.durations.Get(alg)
	if !ok {
		return 0, false
	}
	return v.(time.Duration), true
}

// Seconds looks a duration up by display name, the way results are keyed
// on screen.
func (r *Result) Seconds(name string) (float64, bool) {
	alg, err := sorts.ParseAlgorithm(name)
	if err != nil {
		return 0, false
	}
	d, ok := r.Duration(alg)
	return d.Seconds(), ok
}

// Entries lists the finished algorithms in selection order.
func (r *Result) Entries() []Entry {
	entries := make([]Entry, 0, r.durations.Size())
	it := r.durations.Iterator()
	for i := 0; it.Next(); i++ {
		entries = append(entries, Entry{
			Algorithm: it.Key().(sorts.Algorithm),
			Duration:  it.Value().(time.Duration),
			Index:     i,
		})
	}
	return entries
}

func (r *Result) Algorithms() []sorts.Algorithm {
	return lo.Map(r.Entries(), func(e Entry, _ int) sorts.Algorithm { return e.Algorithm })
}

func (r *Result) Names() []string {
	return lo.Map(r.Entries(), func(e Entry, _ int) string { return e.Algorithm.Name() })
}

// Ranked orders the finished algorithms fastest first; equal times keep
// selection order.
func (r *Result) Ranked() []Entry {
	tree := btree.NewG[Entry](2, func(a, b Entry) bool {
		if a.Duration != b.Duration {
			return a.Duration < b.Duration
		}
		return a.Index < b.Index
	})
	for _, e := range r.Entries() {
		tree.ReplaceOrInsert(e)
	}
	ranked := make([]Entry, 0, tree.Len())
	tree.Ascend(func(e Entry) bool {
		ranked = append(ranked, e)
		return true
	})
	return ranked
}

// Total is the summed duration of every finished algorithm.
func (r *Result) Total() time.Duration {
	return lo.SumBy(r.Entries(), func(e Entry) time.Duration { return e.Duration })
}
