// Package config holds the settings the command-line front end starts with.
// A Config is built once, filled from flags, validated and then passed down
// explicitly; nothing reads it from a global.
package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/kabu1204/go-sortbench/numbers"
	"github.com/kabu1204/go-sortbench/sorts"
)

type Config struct {
	// Workers bounds concurrent benchmark runs and concurrent file writes.
	Workers   int
	Verbosity int
	Preview   int

	MinCount int
	MinValue int
	MaxValue int
	Seed     int64

	OutputDir string
	FileStep  int

	// Algorithms is the default selection, by name.
	Algorithms []string
}

func Default() *Config {
	return &Config{
		Workers:    runtime.GOMAXPROCS(0),
		Verbosity:  0,
		Preview:    numbers.DefaultPreview,
		MinCount:   numbers.DefaultMinCount,
		MinValue:   numbers.DefaultMin,
		MaxValue:   numbers.DefaultMax,
		OutputDir:  "generated_files",
		FileStep:   numbers.DefaultStep,
		Algorithms: sorts.Names(),
	}
}

// BindFlags registers persistent flags that write straight into c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Workers, "workers", "w", c.Workers, "maximum concurrent runs / file writers")
	fs.CountVarP(&c.Verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	fs.IntVar(&c.Preview, "preview", c.Preview, "how many leading numbers to show after load or generate")
	fs.IntVar(&c.MinCount, "min-count", c.MinCount, "smallest count accepted for generated sequences")
	fs.IntVar(&c.MinValue, "min-value", c.MinValue, "smallest generated value")
	fs.IntVar(&c.MaxValue, "max-value", c.MaxValue, "largest generated value")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed; 0 seeds from the clock")
	fs.StringVarP(&c.OutputDir, "output-dir", "o", c.OutputDir, "directory for bulk-generated files")
	fs.IntVar(&c.FileStep, "file-step", c.FileStep, "extra numbers per successive bulk file")
	fs.StringSliceVarP(&c.Algorithms, "algorithms", "a", c.Algorithms, "algorithms to run, by name (bubble, insertion, selection, merge, quick, radix)")
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.Preview < 0 {
		return fmt.Errorf("config: preview must not be negative, got %d", c.Preview)
	}
	if c.MinCount < 1 {
		return fmt.Errorf("config: min-count must be at least 1, got %d", c.MinCount)
	}
	if err := numbers.ValidRange(c.MinValue, c.MaxValue); err != nil {
		return fmt.Errorf("config: value range: %w", err)
	}
	if c.FileStep < 0 {
		return fmt.Errorf("config: file-step must not be negative, got %d", c.FileStep)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output-dir is empty")
	}
	for _, name := range c.Algorithms {
		if _, err := sorts.ParseAlgorithm(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Generator builds a numbers.Generator from the value settings.
func (c *Config) Generator() (*numbers.Generator, error) {
	return numbers.NewGenerator(c.MinValue, c.MaxValue, c.MinCount, c.Seed)
}

// BulkGenerator builds a numbers.BulkGenerator writing into OutputDir.
func (c *Config) BulkGenerator() *numbers.BulkGenerator {
	return &numbers.BulkGenerator{
		Dir:      c.OutputDir,
		Step:     c.FileStep,
		Min:      c.MinValue,
		Max:      c.MaxValue,
		MinCount: c.MinCount,
		Seed:     c.Seed,
		Workers:  c.Workers,
	}
}
