package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrRulesUnavailable = errors.New("pricing rules unavailable")

// RuleTier names the tier a rule set was resolved from.
type RuleTier string

const (
	RuleTierVariant  RuleTier = "variant"
	RuleTierProduct  RuleTier = "product"
	RuleTierGlobal   RuleTier = "global"
	RuleTierBaseline RuleTier = "baseline"
)

// ruleSource is one step of the fallback chain. ok=false moves on to the next step.
type ruleSource struct {
	tier  RuleTier
	fetch func(ctx context.Context) (entities.PricingRules, bool, error)
}

// RuleSetResolver walks variant -> product -> global and ends on the all-zero
// baseline. The first tier that exists and decodes is returned whole; tiers
// are never merged.
type RuleSetResolver struct {
	repo   interfaces.IPricingRulesRepository
	logger *zap.Logger
}

func NewRuleSetResolver(repo interfaces.IPricingRulesRepository, logger *zap.Logger) *RuleSetResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleSetResolver{repo: repo, logger: logger}
}

// Resolve returns the rules for a product and optional variant. A store
// failure is returned as ErrRulesUnavailable; a missing or malformed tier is not.
func (r *RuleSetResolver) Resolve(ctx context.Context, productID, variantID string) (entities.PricingRules, RuleTier, error) {
	productID = strings.TrimSpace(productID)
	variantID = strings.TrimSpace(variantID)

	for _, src := range r.chain(productID, variantID) {
		rules, ok, err := src.fetch(ctx)
		if errors.Is(err, interfaces.ErrMalformedRules) {
			r.logger.Warn("skipping malformed pricing rules",
				zap.String("tier", string(src.tier)),
				zap.String("product_id", productID),
				zap.String("variant_id", variantID),
				zap.Error(err))
			continue
		}
		if err != nil {
			return entities.PricingRules{}, "", fmt.Errorf("%w: %s tier: %v", ErrRulesUnavailable, src.tier, err)
		}
		if ok {
			return rules, src.tier, nil
		}
	}

	// Unreachable: the baseline source always answers.
	return entities.ZeroPricingRules(), RuleTierBaseline, nil
}

func (r *RuleSetResolver) chain(productID, variantID string) []ruleSource {
	var sources []ruleSource
	if variantID != "" {
		sources = append(sources, ruleSource{tier: RuleTierVariant, fetch: func(ctx context.Context) (entities.PricingRules, bool, error) {
			return r.repo.GetVariantRules(ctx, variantID)
		}})
	}
	if productID != "" {
		sources = append(sources, ruleSource{tier: RuleTierProduct, fetch: func(ctx context.Context) (entities.PricingRules, bool, error) {
			return r.repo.GetProductRules(ctx, productID)
		}})
	}
	return append(sources,
		ruleSource{tier: RuleTierGlobal, fetch: r.repo.GetGlobalRules},
		ruleSource{tier: RuleTierBaseline, fetch: func(context.Context) (entities.PricingRules, bool, error) {
			return entities.ZeroPricingRules(), true, nil
		}},
	)
}
