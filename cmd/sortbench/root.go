package main

import (
	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sortbench/config"
	"github.com/kabu1204/go-sortbench/logging"
)

// app carries the state every subcommand shares once flags are parsed.
type app struct {
	cfg *config.Config
	log *logging.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: config.Default()}
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Time classic sorting algorithms on integer sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.log = logging.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.cfg.Verbosity)
			if err := a.cfg.Validate(); err != nil {
				return a.fail(err)
			}
			return nil
		},
	}
	a.cfg.BindFlags(root.PersistentFlags())
	root.AddCommand(
		a.newRunCommand(),
		a.newGenerateCommand(),
		a.newBulkCommand(),
		a.newInspectCommand(),
		a.newAlgorithmsCommand(),
	)
	return root
}

// fail logs err on the error sink and hands it back for cobra to return.
func (a *app) fail(err error) error {
	a.log.Error("Error: %v", err)
	return err
}
