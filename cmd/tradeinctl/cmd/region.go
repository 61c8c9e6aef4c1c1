package cmd

import (
	"fmt"

	"tradein_valuation/internal/domain/geo"
	"tradein_valuation/internal/usecase"

	"github.com/spf13/cobra"
)

func newRegionCmd(a *app) *cobra.Command {
	var state string
	cmd := &cobra.Command{
		Use:   "region <postal-code>",
		Short: "Resolve the region and sub-region for a postal code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.regions()
			if err != nil {
				return err
			}
			region := usecase.NewOrderIDGenerator(table, nil, a.logger).ResolveRegion(args[0], state)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", region.Code, region.SubRegion)
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "state name or code overriding the postal lookup")
	return cmd
}

func newCategoryCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category <category> [brand]",
		Short: "Show the category code used in order identifiers",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			brand := ""
			if len(args) == 2 {
				brand = args[1]
			}
			fmt.Fprintln(cmd.OutOrStdout(), geo.ResolveCategoryCode(args[0], brand))
			return nil
		},
	}
}
