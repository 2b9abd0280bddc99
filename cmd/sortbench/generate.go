package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sortbench/numbers"
)

func (a *app) newGenerateCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate COUNT",
		Short: "Generate COUNT random numbers and save them as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return a.fail(fmt.Errorf("%w: count %q", numbers.ErrNotInteger, args[0]))
			}
			g, err := a.cfg.Generator()
			if err != nil {
				return a.fail(err)
			}
			seq, err := g.Generate(count)
			if err != nil {
				return a.fail(err)
			}
			a.log.Printf("Generated %d numbers", len(seq))
			a.log.Printf("Preview: %s", numbers.FormatPreview(seq, a.cfg.Preview))
			if out == "" {
				return nil
			}
			if err := numbers.WriteFile(out, seq); err != nil {
				return a.fail(err)
			}
			a.log.Printf("Input saved to %s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file to write the numbers to")
	return cmd
}
