package cmd

import (
	"fmt"

	"tradein_valuation/internal/adapter/persistence/repository"

	"github.com/spf13/cobra"
)

func newCounterCmd(a *app) *cobra.Command {
	counter := &cobra.Command{
		Use:   "counter",
		Short: "Inspect the order sequence counter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	counter.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the last issued sequence number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ddb, err := a.dynamo(cmd.Context())
			if err != nil {
				return err
			}
			repo := repository.NewSequenceCounterDynamoRepository(ddb, a.cfg.Tables.Counters, a.cfg.Sequence.CounterID)
			n, err := repo.Current(cmd.Context())
			if err != nil {
				return fmt.Errorf("read counter: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	})
	return counter
}
