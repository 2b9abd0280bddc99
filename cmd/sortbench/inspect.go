package main

import (
	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sortbench/numbers"
)

func (a *app) newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NUMBERS_FILE",
		Short: "Summarize a numbers file and preview its first values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := numbers.ReadFile(args[0])
			if err != nil {
				return a.fail(err)
			}
			s := numbers.Summarize(seq)
			a.log.Printf("Count:    %d", s.Count)
			a.log.Printf("Distinct: %d", s.Distinct)
			if !s.Min.IsNone() {
				a.log.Printf("Range:    %d .. %d", s.Min.Get(), s.Max.Get())
			}
			a.log.Printf("Sorted:   %t", s.Sorted)
			a.log.Printf("Radix:    %t", s.RadixEligible)
			a.log.Printf("Preview:  %s", numbers.FormatPreview(seq, a.cfg.Preview))
			return nil
		},
	}
}
