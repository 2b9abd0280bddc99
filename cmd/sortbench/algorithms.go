package main

import (
	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sortbench/sorts"
)

func (a *app) newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms and their trade-offs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, alg := range sorts.All() {
				a.log.Printf("%s (%s) stable=%t in-place=%t", alg, alg.Short(), alg.Stable(), alg.InPlace())
				a.log.Printf(" - Advantages: %s", alg.Info().Advantages)
				a.log.Printf(" - Disadvantages: %s", alg.Info().Disadvantages)
			}
			return nil
		},
	}
}
