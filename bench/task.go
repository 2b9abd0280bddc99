package bench

import (
	"fmt"
	"sync"

	"github.com/kabu1204/go-sortbench/sorts"
	"github.com/kabu1204/go-sortbench/types"
)

// Task is the handle of a run executing in the background. Progress events
// are buffered for the whole run, so a run never waits on its reader.
type Task struct {
	progress chan Progress
	done     chan struct{}
	once     sync.Once

	result *Result
	err    error
}

func newTask(capacity int) *Task {
	return &Task{
		progress: make(chan Progress, capacity),
		done:     make(chan struct{}),
	}
}

// Progress delivers one event per finished algorithm and is closed when the
// run ends.
func (t *Task) Progress() <-chan Progress { return t.progress }

// Done is closed when the run ends.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the run ends and returns its outcome.
func (t *Task) Wait() (*Result, error) {
	<-t.done
	return t.result, t.err
}

func (t *Task) finish(res *Result, err error) {
	t.once.Do(func() {
		t.result, t.err = res, err
		close(t.progress)
		close(t.done)
	})
}

// Start validates the run synchronously and returns at once; the run queues
// for a free worker of the runner's pool. onProgress, when set, is called on
// the pool goroutine before the same event is queued on Task.Progress.
func (r *Runner) Start(input types.Sequence, selection []sorts.Algorithm, onProgress ProgressFunc) (*Task, error) {
	selection, err := Validate(input, selection)
	if err != nil {
		return nil, err
	}
	input = input.Clone()
	task := newTask(len(selection))
	notify := func(p Progress) {
		if onProgress != nil {
			onProgress(p)
		}
		task.progress <- p
	}
	job := func() {
		defer func() {
			if v := recover(); v != nil {
				task.finish(nil, fmt.Errorf("bench: run panicked: %v", v))
			}
		}()
		task.finish(r.run(input, selection, notify))
	}
	// Submit blocks while every worker is busy.
	go func() {
		if err := r.pool.Submit(job); err != nil {
			task.finish(nil, fmt.Errorf("bench: submit run: %w", err))
		}
	}()
	return task, nil
}
