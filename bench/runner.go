// Package bench times a selection of sorting algorithms against one shared
// input.
//
// Every algorithm sorts the original, unsorted input: outputs are never
// chained, so timings stay comparable. Runs execute on a pooled goroutine and
// report progress through a Task.
package bench

import (
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"

	"github.com/kabu1204/go-sortbench/sorts"
	"github.com/kabu1204/go-sortbench/stream"
	"github.com/kabu1204/go-sortbench/types"
)

// Progress is emitted once per finished algorithm.
type Progress struct {
	Algorithm sorts.Algorithm
	Index     int // 0-based position in the selection
	Total     int
	Fraction  float64
	Elapsed   time.Duration
	Message   string
}

type ProgressFunc func(Progress)

type Option func(*Runner)

// WithWorkers bounds how many runs may execute at once.
func WithWorkers(n int) Option { return func(r *Runner) { r.workers = n } }

// WithCaptureOutputs keeps the output of every algorithm, not just the last.
func WithCaptureOutputs() Option { return func(r *Runner) { r.capture = true } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(r *Runner) { r.now = now } }

type Runner struct {
	pool    *ants.Pool
	workers int
	capture bool
	now     func() time.Time
}

func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{workers: 1, now: time.Now}
	for _, o := range opts {
		o(r)
	}
	pool, err := ants.NewPool(stream.MaxInt(r.workers, 1))
	if err != nil {
		return nil, fmt.Errorf("bench: create worker pool: %w", err)
	}
	r.pool = pool
	return r, nil
}

// Release stops the worker pool. Runs already started finish first.
func (r *Runner) Release() {
	r.pool.Release()
}

// Validate reports why a run over input and selection would be rejected, in
// the order the checks are made: input first, then selection. Duplicate
// entries collapse to their first occurrence.
func Validate(input types.Sequence, selection []sorts.Algorithm) ([]sorts.Algorithm, error) {
	if len(input) == 0 {
		return nil, ErrNoData
	}
	if len(selection) == 0 {
		return nil, ErrNoAlgorithm
	}
	for _, alg := range selection {
		if !alg.Valid() {
			return nil, &sorts.UnknownAlgorithmError{Name: fmt.Sprintf("Algorithm(%d)", int(alg))}
		}
	}
	return lo.Uniq(selection), nil
}

// ParseSelection resolves display or short names to algorithms.
func ParseSelection(names []string) ([]sorts.Algorithm, error) {
	if len(names) == 0 {
		return nil, ErrNoAlgorithm
	}
	selection := make([]sorts.Algorithm, 0, len(names))
	for _, name := range names {
		alg, err := sorts.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		selection = append(selection, alg)
	}
	return selection, nil
}

// Run times every selected algorithm in order on the calling goroutine.
//
// Validation failures return a nil Result and nothing is timed. An algorithm
// failure stops the run: the Result keeps what finished before it, is marked
// incomplete, and is returned along with the error.
func (r *Runner) Run(input types.Sequence, selection []sorts.Algorithm, onProgress ProgressFunc) (*Result, error) {
	selection, err := Validate(input, selection)
	if err != nil {
		return nil, err
	}
	return r.run(input.Clone(), selection, onProgress)
}

// RunNames is Run for a selection given by name.
func (r *Runner) RunNames(input types.Sequence, names []string, onProgress ProgressFunc) (*Result, error) {
	if len(input) == 0 {
		return nil, ErrNoData
	}
	selection, err := ParseSelection(names)
	if err != nil {
		return nil, err
	}
	return r.Run(input, selection, onProgress)
}

func (r *Runner) run(input types.Sequence, selection []sorts.Algorithm, onProgress ProgressFunc) (*Result, error) {
	res := newResult(input, len(selection), r.capture)
	res.Started = r.now()
	defer func() { res.Finished = r.now() }()

	total := len(selection)
	for i, alg := range selection {
		start := r.now()
		out, err := alg.Sort(input)
		elapsed := r.now().Sub(start)
		if err != nil {
			res.Notes = notesFor(res.Algorithms())
			return res, fmt.Errorf("run aborted at %s after %d of %d algorithms: %w", alg, i, total, err)
		}
		res.record(alg, elapsed, out)
		if onProgress != nil {
			onProgress(Progress{
				Algorithm: alg,
				Index:     i,
				Total:     total,
				Fraction:  float64(i+1) / float64(total),
				Elapsed:   elapsed,
				Message:   fmt.Sprintf("%s finished in %.3fs", alg, elapsed.Seconds()),
			})
		}
	}
	res.Complete = true
	res.Notes = notesFor(res.Algorithms())
	return res, nil
}

func notesFor(algs []sorts.Algorithm) []Note {
	return lo.Map(algs, func(alg sorts.Algorithm, _ int) Note {
		return Note{Algorithm: alg, Info: alg.Info()}
	})
}
