package numbers

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cornelk/hashmap"
	"golang.org/x/sync/errgroup"

	"github.com/kabu1204/go-sortbench/types"
)

const (
	DefaultStep  = 15_000
	fileGlob     = "numbers_file_*.txt"
	fileTemplate = "numbers_file_%d.txt"
)

// dirLocks serializes bulk operations that target the same directory.
var dirLocks = &hashmap.HashMap{}

func lockDir(dir string) func() {
	key, err := filepath.Abs(dir)
	if err != nil {
		key = filepath.Clean(dir)
	}
	v, _ := dirLocks.GetOrInsert(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// FileProgress is reported once per written file, in completion order.
type FileProgress struct {
	Index    int // 1-based file number
	Path     string
	Count    int
	Done     int
	Total    int
	Fraction float64
	Message  string
}

// BulkGenerator writes numbers_file_1.txt ... numbers_file_N.txt into Dir.
// File i holds PerFile + (i-1)*Step random numbers.
type BulkGenerator struct {
	Dir      string
	Step     int
	Min      int
	Max      int
	MinCount int
	Seed     int64 // 0 seeds from the clock
	Workers  int
}

func (b *BulkGenerator) validate(files, perFile int) error {
	if b.MinCount < 1 {
		return fmt.Errorf("bulk: minimum count must be at least 1, got %d", b.MinCount)
	}
	if err := ValidRange(b.Min, b.Max); err != nil {
		return err
	}
	if files < 1 || perFile < b.MinCount {
		return types.NewKind(types.ErrInput, fmt.Sprintf(
			"enter valid integers (files >= 1, numbers >= %d): got %d files of %d numbers",
			b.MinCount, files, perFile))
	}
	return nil
}

// Run removes stale numbers files from Dir and writes the new set. Files are
// written concurrently; the returned paths are in file-number order.
func (b *BulkGenerator) Run(ctx context.Context, files, perFile int, onProgress func(FileProgress)) ([]string, error) {
	if err := b.validate(files, perFile); err != nil {
		return nil, err
	}
	unlock := lockDir(b.Dir)
	defer unlock()

	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	stale, err := filepath.Glob(filepath.Join(b.Dir, fileGlob))
	if err != nil {
		return nil, err
	}
	for _, old := range stale {
		if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("remove stale file: %w", err)
		}
	}

	seed := b.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	paths := make([]string, files)
	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	if b.Workers > 0 {
		g.SetLimit(b.Workers)
	}
	for i := 0; i < files; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			count := perFile + i*b.Step
			path := filepath.Join(b.Dir, fmt.Sprintf(fileTemplate, i+1))
			rng := rand.New(rand.NewSource(seed + int64(i)))
			if err := WriteFile(path, sample(rng, count, b.Min, b.Max)); err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			paths[i] = path
			done++
			if onProgress != nil {
				onProgress(FileProgress{
					Index:    i + 1,
					Path:     path,
					Count:    count,
					Done:     done,
					Total:    files,
					Fraction: float64(done) / float64(files),
					Message:  fmt.Sprintf("Generated file %d: %d numbers", i+1, count),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed during generation: %w", err)
	}
	return paths, nil
}

// BulkJob is the handle of a bulk generation running in the background.
type BulkJob struct {
	done  chan struct{}
	paths []string
	err   error
}

func (j *BulkJob) Done() <-chan struct{} { return j.done }

func (j *BulkJob) Wait() ([]string, error) {
	<-j.done
	return j.paths, j.err
}

// Start validates synchronously and runs the generation on its own goroutine.
func (b *BulkGenerator) Start(ctx context.Context, files, perFile int, onProgress func(FileProgress)) (*BulkJob, error) {
	if err := b.validate(files, perFile); err != nil {
		return nil, err
	}
	job := &BulkJob{done: make(chan struct{})}
	go func() {
		defer close(job.done)
		job.paths, job.err = b.Run(ctx, files, perFile, onProgress)
	}()
	return job, nil
}
