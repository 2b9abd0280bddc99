package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sortbench/numbers"
)

func (a *app) newBulkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk FILES NUMBERS_PER_FILE",
		Short: "Write FILES numbers files of growing size into the output directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err1 := strconv.Atoi(args[0])
			perFile, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				return a.fail(fmt.Errorf("%w: %q %q", numbers.ErrNotInteger, args[0], args[1]))
			}
			gen := a.cfg.BulkGenerator()
			job, err := gen.Start(cmd.Context(), files, perFile, func(p numbers.FileProgress) {
				a.log.Printf("%s", p.Message)
				a.log.Verbose(1, "Progress: %d/%d", p.Done, p.Total)
			})
			if err != nil {
				return a.fail(err)
			}
			paths, err := job.Wait()
			if err != nil {
				return a.fail(err)
			}
			a.log.Printf("All %d files created in %s", len(paths), gen.Dir)
			return nil
		},
	}
}
