package main

import (
	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sortbench/bench"
	"github.com/kabu1204/go-sortbench/numbers"
	"github.com/kabu1204/go-sortbench/types"
)

type runOptions struct {
	generate   int
	saveInput  string
	saveSorted string
	notes      bool
}

func (a *app) newRunCommand() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [numbers-file]",
		Short: "Sort a loaded or generated sequence with every selected algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.loadInput(args, opts.generate)
			if err != nil {
				return a.fail(err)
			}
			if opts.saveInput != "" {
				if err := numbers.WriteFile(opts.saveInput, input); err != nil {
					return a.fail(err)
				}
				a.log.Printf("Input saved to %s", opts.saveInput)
			}
			res, err := a.benchmark(input)
			if res != nil {
				if werr := bench.WriteTimings(a.log.Writer(), res); werr != nil {
					return a.fail(werr)
				}
				if opts.notes {
					if werr := bench.WriteNotes(a.log.Writer(), res); werr != nil {
						return a.fail(werr)
					}
				}
			}
			if err != nil {
				return a.fail(err)
			}
			if opts.saveSorted != "" {
				if err := numbers.WriteFile(opts.saveSorted, res.Sorted); err != nil {
					return a.fail(err)
				}
				a.log.Printf("Sorted output saved to %s", opts.saveSorted)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.generate, "generate", "g", 0, "generate this many random numbers instead of reading a file")
	cmd.Flags().StringVar(&opts.saveInput, "save-input", "", "write the input sequence to this file")
	cmd.Flags().StringVar(&opts.saveSorted, "save-sorted", "", "write the last sorted output to this file")
	cmd.Flags().BoolVar(&opts.notes, "notes", true, "print advantages and disadvantages of each algorithm")
	return cmd
}

func (a *app) loadInput(args []string, generate int) (types.Sequence, error) {
	switch {
	case generate != 0 && len(args) > 0:
		return nil, types.NewKind(types.ErrInput, "give either a numbers file or --generate, not both")
	case generate != 0:
		g, err := a.cfg.Generator()
		if err != nil {
			return nil, err
		}
		seq, err := g.Generate(generate)
		if err != nil {
			return nil, err
		}
		a.log.Printf("Generated %d numbers", len(seq))
		a.log.Verbose(1, "Preview: %s", numbers.FormatPreview(seq, a.cfg.Preview))
		return seq, nil
	case len(args) == 1:
		seq, err := numbers.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		a.log.Printf("Loaded %d numbers", len(seq))
		a.log.Verbose(1, "Preview: %s", numbers.FormatPreview(seq, a.cfg.Preview))
		return seq, nil
	}
	return nil, bench.ErrNoData
}

// benchmark runs the configured selection in the background and logs every
// progress event as it arrives.
func (a *app) benchmark(input types.Sequence) (*bench.Result, error) {
	selection, err := bench.ParseSelection(a.cfg.Algorithms)
	if err != nil {
		return nil, err
	}
	runner, err := bench.NewRunner(bench.WithWorkers(a.cfg.Workers))
	if err != nil {
		return nil, err
	}
	defer runner.Release()

	task, err := runner.Start(input, selection, nil)
	if err != nil {
		return nil, err
	}
	a.log.Printf("Sorting started")
	for p := range task.Progress() {
		a.log.Printf("%s", p.Message)
		a.log.Verbose(1, "Progress: %.0f%%", p.Fraction*100)
	}
	res, err := task.Wait()
	if err == nil {
		a.log.Printf("Sorting complete")
	}
	return res, err
}
