package cmd

import (
	"errors"
	"fmt"

	"tradein_valuation/internal/adapter/persistence/repository"
	"tradein_valuation/internal/domain/geo"
	"tradein_valuation/internal/usecase"

	"github.com/spf13/cobra"
)

type orderIDOptions struct {
	req      usecase.OrderIDRequest
	seq      int64
	allocate bool
}

func newOrderIDCmd(a *app) *cobra.Command {
	o := &orderIDOptions{}
	cmd := &cobra.Command{
		Use:   "order-id",
		Short: "Preview or allocate an order identifier",
		Long: `Render the order identifier for a device and location.

With --seq the identifier is only formatted. With --allocate the next number
is claimed from the DynamoDB counter exactly as a submission would, which
consumes it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := a.regions()
			if err != nil {
				return err
			}

			switch {
			case o.allocate:
				ddb, err := a.dynamo(cmd.Context())
				if err != nil {
					return err
				}
				counter := repository.NewSequenceCounterDynamoRepository(ddb, a.cfg.Tables.Counters, a.cfg.Sequence.CounterID)
				alloc := usecase.NewSequenceAllocator(counter, usecase.SequenceAllocatorConfig{
					MaxAttempts: a.cfg.Sequence.MaxAttempts,
					BaseBackoff: a.cfg.Sequence.BaseBackoff,
					MaxBackoff:  a.cfg.Sequence.MaxBackoff,
				}, a.logger)
				id, err := usecase.NewOrderIDGenerator(table, alloc, a.logger).Generate(cmd.Context(), o.req)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			case o.seq > 0:
				gen := usecase.NewOrderIDGenerator(table, nil, a.logger)
				region := gen.ResolveRegion(o.req.PostalCode, o.req.State)
				category := geo.ResolveCategoryCode(o.req.Category, o.req.Brand)
				fmt.Fprintln(cmd.OutOrStdout(), usecase.FormatOrderID(region, category, o.seq))
			default:
				return errors.New("either --seq or --allocate is required")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&o.req.PostalCode, "postal", "", "postal code")
	cmd.Flags().StringVar(&o.req.Category, "category", "", "device category")
	cmd.Flags().StringVar(&o.req.Brand, "brand", "", "device brand")
	cmd.Flags().StringVar(&o.req.State, "state", "", "state override")
	cmd.Flags().Int64Var(&o.seq, "seq", 0, "sequence number to format")
	cmd.Flags().BoolVar(&o.allocate, "allocate", false, "claim the next sequence number from DynamoDB")
	cmd.MarkFlagsMutuallyExclusive("seq", "allocate")
	return cmd
}
