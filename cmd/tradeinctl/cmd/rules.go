package cmd

import (
	"encoding/json"
	"fmt"

	"tradein_valuation/internal/adapter/persistence/repository"
	"tradein_valuation/internal/usecase"

	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	rules := &cobra.Command{
		Use:   "rules",
		Short: "Manage pricing rule tiers in DynamoDB",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var (
		tier string
		id   string
		file string
	)
	put := &cobra.Command{
		Use:   "put",
		Short: "Store a rule file as a variant, product or global tier",
		Long: `Store a rule file as one tier.

Examples:
  tradeinctl rules put --tier global --file global.yaml
  tradeinctl rules put --tier product --id galaxy-s23 --file s23.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := rulesKey(tier, id)
			if err != nil {
				return err
			}
			doc, err := loadRulesFile(file)
			if err != nil {
				return err
			}
			ddb, err := a.dynamo(cmd.Context())
			if err != nil {
				return err
			}
			repo := repository.NewPricingRulesDynamoRepository(ddb, a.cfg.Tables.PricingRules)
			if err := repo.Put(cmd.Context(), key, doc); err != nil {
				return fmt.Errorf("store rules %s: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", key)
			return nil
		},
	}
	put.Flags().StringVar(&tier, "tier", "", "variant, product or global")
	put.Flags().StringVar(&id, "id", "", "variant or product id")
	put.Flags().StringVar(&file, "file", "", "rules file (YAML or JSON)")
	_ = put.MarkFlagRequired("tier")
	_ = put.MarkFlagRequired("file")

	var productID, variantID string
	resolve := &cobra.Command{
		Use:   "resolve",
		Short: "Show which tier a product/variant prices against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ddb, err := a.dynamo(cmd.Context())
			if err != nil {
				return err
			}
			repo := repository.NewPricingRulesDynamoRepository(ddb, a.cfg.Tables.PricingRules)
			doc, resolvedTier, err := usecase.NewRuleSetResolver(repo, a.logger).Resolve(cmd.Context(), productID, variantID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tier: %s\n", resolvedTier)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
	resolve.Flags().StringVar(&productID, "product", "", "product id")
	resolve.Flags().StringVar(&variantID, "variant", "", "variant id")

	rules.AddCommand(put, resolve)
	return rules
}

func rulesKey(tier, id string) (string, error) {
	switch tier {
	case string(usecase.RuleTierVariant):
		if id == "" {
			return "", fmt.Errorf("--id is required for the variant tier")
		}
		return repository.VariantRulesKey(id), nil
	case string(usecase.RuleTierProduct):
		if id == "" {
			return "", fmt.Errorf("--id is required for the product tier")
		}
		return repository.ProductRulesKey(id), nil
	case string(usecase.RuleTierGlobal):
		return repository.GlobalRulesKey, nil
	default:
		return "", fmt.Errorf("unknown tier %q", tier)
	}
}
